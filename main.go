package main

import (
	"context"
	"flag"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JN-EPHEC/discovery-api/api"
	"github.com/JN-EPHEC/discovery-api/geo"
	"github.com/JN-EPHEC/discovery-api/schema"
	"github.com/JN-EPHEC/discovery-api/store"
	"github.com/JN-EPHEC/discovery-api/utils"
)

func initConfig(file string) {
	viper.SetConfigFile(file)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("discovery")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		log.WithField("prefix", "main").WithError(err).Warn("fail to read config file, use environment variables")
	}
}

func initLog() {
	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func initGeocoder() {
	switch viper.GetString("geocoder.provider") {
	case "google":
		geocoder, err := geo.NewGoogleGeocoder(viper.GetString("geocoder.api_key"))
		if err != nil {
			log.WithField("prefix", "main").WithError(err).Fatal("fail to create google geocoder")
		}
		geo.SetGeocoder(geocoder)
	default:
		geo.SetGeocoder(geo.NewNominatimGeocoder(viper.GetString("geocoder.endpoint")))
	}
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "./config.yaml", "configuration file")
	flag.Parse()

	initConfig(configFile)
	initLog()
	initGeocoder()

	utils.InitI18NBundle()
	if err := store.LoadDefaultPartyGames("en"); err != nil {
		log.WithField("prefix", "main").WithError(err).Fatal("fail to load party game catalog")
	}

	connURI := viper.GetString("mongo.conn")
	database := viper.GetString("mongo.database")

	if err := schema.NewMongoDBIndexer(connURI, database).IndexAll(); err != nil {
		log.WithField("prefix", "main").WithError(err).Fatal("fail to create mongodb indexes")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.NewClient(options.Client().ApplyURI(connURI))
	if err != nil {
		log.WithField("prefix", "main").WithError(err).Fatal("fail to create mongo client")
	}

	if err := client.Connect(ctx); err != nil {
		log.WithField("prefix", "main").WithError(err).Fatal("fail to connect mongodb")
	}

	mongoStore := store.NewMongoStore(client, database)
	defer mongoStore.Close()

	server := api.NewServer(mongoStore, viper.GetBool("server.trace"))

	log.WithField("prefix", "main").Info("server is ready to serve")
	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
