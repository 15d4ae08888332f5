package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

var defaultTimeout = 5 * time.Second

const mongoLogPrefix = "mongo"

// MongoStore combines all mongodb operations served by this package.
type MongoStore interface {
	Ping() error
	Close()

	Profile
	Activity
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoStore returns a MongoStore backed by the given mongo client.
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func (m *mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.client.Ping(ctx, nil)
}

func (m *mongoDB) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := m.client.Disconnect(ctx); err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("fail to close mongo client")
	}
}
