package services

import (
	"context"
	"fmt"

	"github.com/Dias221467/Mongo_Exercises/internal/models"
	"github.com/Dias221467/Mongo_Exercises/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ConfessionService struct {
	repo repository.ConfessionStore
}

func NewConfessionService(repo repository.ConfessionStore) *ConfessionService {
	return &ConfessionService{repo: repo}
}

// CreateConfession stores the confession as received; the store assigns the ID.
func (s *ConfessionService) CreateConfession(ctx context.Context, confession *models.Confession) (*models.Confession, error) {
	confession.ID = primitive.NilObjectID

	created, err := s.repo.CreateConfession(ctx, confession)
	if err != nil {
		return nil, fmt.Errorf("failed to create confession: %w", err)
	}
	return created, nil
}

func (s *ConfessionService) CountConfessions(ctx context.Context) (int64, error) {
	return s.repo.CountConfessions(ctx)
}
