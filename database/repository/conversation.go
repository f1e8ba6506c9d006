package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"weatherchat/database"
	"weatherchat/models"
)

const (
	databaseName   = "weatherchat"
	collectionName = "conversation_turns"
)

// ConversationRepository archives chat turns. The archive feeds later
// curation of training examples and is always best-effort.
type ConversationRepository interface {
	SaveTurn(ctx context.Context, turn models.ConversationTurn) error
	RecentTurns(ctx context.Context, sessionID string, limit int64) ([]models.ConversationTurn, error)
}

// MongoConversationRepo is the Mongo-backed implementation.
type MongoConversationRepo struct {
	coll *mongo.Collection
}

// NewMongoConversationRepo requires a connected database.MongoClient.
func NewMongoConversationRepo() *MongoConversationRepo {
	return &MongoConversationRepo{
		coll: database.MongoClient.Database(databaseName).Collection(collectionName),
	}
}

func (r *MongoConversationRepo) SaveTurn(ctx context.Context, turn models.ConversationTurn) error {
	if _, err := r.coll.InsertOne(ctx, turn); err != nil {
		return fmt.Errorf("insert conversation turn: %w", err)
	}
	return nil
}

func (r *MongoConversationRepo) RecentTurns(ctx context.Context, sessionID string, limit int64) ([]models.ConversationTurn, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find conversation turns: %w", err)
	}
	defer cursor.Close(ctx)

	var turns []models.ConversationTurn
	if err := cursor.All(ctx, &turns); err != nil {
		return nil, fmt.Errorf("decode conversation turns: %w", err)
	}
	return turns, nil
}
