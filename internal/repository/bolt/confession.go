package bolt

import (
	"context"
	"fmt"

	"github.com/Dias221467/Mongo_Exercises/internal/models"
	"github.com/Dias221467/Mongo_Exercises/internal/repository"
	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
	"github.com/timshannon/bolthold"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type confessionRepository struct {
	store *bolthold.Store
}

func NewConfessionRepository(store *bolthold.Store) repository.ConfessionStore {
	return &confessionRepository{store: store}
}

func (r *confessionRepository) CreateConfession(ctx context.Context, confession *models.Confession) (*models.Confession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	confession.ID = primitive.NewObjectID()
	if err := r.store.Insert(confession.ID.Hex(), confession); err != nil {
		return nil, fmt.Errorf("inserting confession: %w", err)
	}

	logger.Log.WithField("confession_id", confession.ID.Hex()).Info("Confession created successfully")
	return confession, nil
}

func (r *confessionRepository) CountConfessions(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	n, err := r.store.Count(&models.Confession{}, nil)
	if err != nil {
		return 0, fmt.Errorf("counting confessions: %w", err)
	}
	return int64(n), nil
}
