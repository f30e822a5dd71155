package repository

import (
	"context"
	"fmt"

	"github.com/Dias221467/Mongo_Exercises/internal/models"
	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ConfessionRepository struct {
	collection *mongo.Collection
}

func NewConfessionRepository(db *mongo.Database) *ConfessionRepository {
	return &ConfessionRepository{collection: db.Collection(ConfessionsCollection)}
}

func (r *ConfessionRepository) CreateConfession(ctx context.Context, confession *models.Confession) (*models.Confession, error) {
	result, err := r.collection.InsertOne(ctx, confession)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert confession")
		return nil, fmt.Errorf("failed to create confession: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		confession.ID = id
	}

	logger.Log.WithField("confession_id", confession.ID.Hex()).Info("Confession created successfully")
	return confession, nil
}

func (r *ConfessionRepository) CountConfessions(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count confessions: %w", err)
	}
	return n, nil
}
