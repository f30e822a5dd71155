package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dias221467/Mongo_Exercises/internal/models"
	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BucketListRepository handles the bucketListItems collection.
type BucketListRepository struct {
	collection *mongo.Collection
}

// NewBucketListRepository creates a new instance of BucketListRepository
func NewBucketListRepository(db *mongo.Database) *BucketListRepository {
	return &BucketListRepository{
		collection: db.Collection(BucketListItemsCollection),
	}
}

// AddBucketListItem inserts the item as received
func (r *BucketListRepository) AddBucketListItem(ctx context.Context, item *models.BucketListItem) (*models.BucketListItem, error) {
	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert bucket list item")
		return nil, fmt.Errorf("failed to add bucket list item: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		item.ID = id
	}

	logger.Log.WithField("title", item.Title).Info("Bucket list item added successfully")
	return item, nil
}

// FindOneBucketListItem fetches the first item with the given title
func (r *BucketListRepository) FindOneBucketListItem(ctx context.Context, title string) (*models.BucketListItem, error) {
	var item models.BucketListItem

	err := r.collection.FindOne(ctx, bson.M{"title": title}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		logger.Log.WithField("title", title).Info("Bucket list item not found")
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("title", title).Error("Failed to find bucket list item")
		return nil, fmt.Errorf("failed to find bucket list item: %w", err)
	}

	logger.Log.WithField("title", title).Info("Bucket list item fetched successfully")
	return &item, nil
}

// CountBucketListItems counts every stored item
func (r *BucketListRepository) CountBucketListItems(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count bucket list items: %w", err)
	}
	return n, nil
}
