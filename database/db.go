package database

import (
	"context"
	"time"

	"beautyspa/config"
	"beautyspa/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// DatabaseName is the mongo database all repositories read from.
const DatabaseName = "beautyspa"

// InitDB connects to MongoDB and verifies the connection. The process cannot
// serve anything without the catalog, so failure is fatal.
func InitDB() {
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.DatabaseURL))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}

	MongoClient = client
	logger.Info("connected to MongoDB", zap.String("database", DatabaseName))
}
