package bolt

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dias221467/Mongo_Exercises/internal/models"
	"github.com/Dias221467/Mongo_Exercises/internal/repository"
	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
	"github.com/timshannon/bolthold"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type bucketListRepository struct {
	store *bolthold.Store
}

func NewBucketListRepository(store *bolthold.Store) repository.BucketListStore {
	return &bucketListRepository{store: store}
}

func (r *bucketListRepository) AddBucketListItem(ctx context.Context, item *models.BucketListItem) (*models.BucketListItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	item.ID = primitive.NewObjectID()
	if err := r.store.Insert(item.ID.Hex(), item); err != nil {
		return nil, fmt.Errorf("inserting bucket list item: %w", err)
	}

	logger.Log.WithField("title", item.Title).Info("Bucket list item added successfully")
	return item, nil
}

func (r *bucketListRepository) FindOneBucketListItem(ctx context.Context, title string) (*models.BucketListItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var item models.BucketListItem
	err := r.store.FindOne(&item, bolthold.Where("Title").Eq(title))
	if errors.Is(err, bolthold.ErrNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding bucket list item: %w", err)
	}
	return &item, nil
}

func (r *bucketListRepository) CountBucketListItems(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	n, err := r.store.Count(&models.BucketListItem{}, nil)
	if err != nil {
		return 0, fmt.Errorf("counting bucket list items: %w", err)
	}
	return int64(n), nil
}
