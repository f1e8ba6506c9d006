package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"weatherchat/config"
	"weatherchat/utils"
)

// MongoClient is the global MongoDB client instance. It stays nil when the
// conversation archive is disabled or Mongo is unreachable.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection when DATABASE_URL is set. The
// archive is an optional feature, so connection failures degrade rather
// than abort startup.
func InitDB() {
	logger := utils.GetLogger()
	if config.AppConfig.DatabaseURL == "" {
		logger.Info("DATABASE_URL not set, conversation archive disabled")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Warn("failed to connect to MongoDB, conversation archive disabled", zap.Error(err))
		return
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Warn("failed to ping MongoDB, conversation archive disabled", zap.Error(err))
		return
	}
	MongoClient = client
	logger.Info("Connected to MongoDB")
}
