package schema

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBIndexer ensures the indexes this service relies on.
type MongoDBIndexer struct {
	connURI  string
	database string
}

func NewMongoDBIndexer(connURI, database string) *MongoDBIndexer {
	return &MongoDBIndexer{
		connURI:  connURI,
		database: database,
	}
}

// IndexAll creates all indexes for the profile and activity collections.
// Index creation in mongodb is idempotent so this is safe on every boot.
func (m *MongoDBIndexer) IndexAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.NewClient(options.Client().ApplyURI(m.connURI))
	if err != nil {
		return err
	}

	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.WithField("prefix", "mongo").WithError(err).Error("fail to disconnect indexer client")
		}
	}()

	db := client.Database(m.database)

	if _, err := db.Collection(ProfileCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.M{"account_number": 1},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.M{"id": 1},
		},
	}); err != nil {
		return err
	}

	if _, err := db.Collection(ActivityCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.M{"location": "2dsphere"},
		},
		{
			Keys: bson.M{"title": "text"},
		},
	}); err != nil {
		return err
	}

	return nil
}
