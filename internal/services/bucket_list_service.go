package services

import (
	"context"
	"fmt"

	"github.com/Dias221467/Mongo_Exercises/internal/models"
	"github.com/Dias221467/Mongo_Exercises/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BucketListService encapsulates the bucket-list use cases.
type BucketListService struct {
	repo repository.BucketListStore
}

// NewBucketListService creates a new instance of BucketListService.
func NewBucketListService(repo repository.BucketListStore) *BucketListService {
	return &BucketListService{repo: repo}
}

// AddItem stores the item as received; the store assigns the ID.
func (s *BucketListService) AddItem(ctx context.Context, item *models.BucketListItem) (*models.BucketListItem, error) {
	item.ID = primitive.NilObjectID

	created, err := s.repo.AddBucketListItem(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to add bucket list item: %w", err)
	}
	return created, nil
}

// GetItemByTitle returns repository.ErrNotFound (wrapped) when nothing matches.
func (s *BucketListService) GetItemByTitle(ctx context.Context, title string) (*models.BucketListItem, error) {
	item, err := s.repo.FindOneBucketListItem(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket list item %q: %w", title, err)
	}
	return item, nil
}

// CountItems counts stored items.
func (s *BucketListService) CountItems(ctx context.Context) (int64, error) {
	return s.repo.CountBucketListItems(ctx)
}
