package main

import (
	"context"
	"fmt"

	"github.com/Dias221467/Mongo_Exercises/internal/config"
	"github.com/Dias221467/Mongo_Exercises/internal/database"
	"github.com/Dias221467/Mongo_Exercises/internal/repository"
	boltrepo "github.com/Dias221467/Mongo_Exercises/internal/repository/bolt"
	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
)

// stores is the repository set for the configured driver.
type stores struct {
	confessions repository.ConfessionStore
	bucketList  repository.BucketListStore
	expenses    repository.ExpenseStore
	ping        func(ctx context.Context) error
	close       func(ctx context.Context) error
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.StoreDriver {
	case config.DriverBolt:
		return openBoltStores(cfg)
	default:
		return openMongoStores(ctx, cfg)
	}
}

func openMongoStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	connector := database.NewConnector(cfg)

	connectCtx, cancel := context.WithTimeout(ctx, cfg.MongoTimeout)
	defer cancel()

	if err := connector.Connect(connectCtx); err != nil {
		return nil, err
	}
	if err := connector.Ping(connectCtx); err != nil {
		if derr := connector.Disconnect(context.Background()); derr != nil {
			logger.Log.WithError(derr).Error("Failed to disconnect after ping failure")
		}
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	confessionDB, err := connector.Database(cfg.ConfessionDB)
	if err != nil {
		return nil, err
	}
	bucketListDB, err := connector.Database(cfg.BucketListDB)
	if err != nil {
		return nil, err
	}
	expenseDB, err := connector.Database(cfg.ExpenseDB)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Connected to MongoDB")
	return &stores{
		confessions: repository.NewConfessionRepository(confessionDB),
		bucketList:  repository.NewBucketListRepository(bucketListDB),
		expenses:    repository.NewExpenseRepository(expenseDB),
		ping:        connector.Ping,
		close:       connector.Disconnect,
	}, nil
}

func openBoltStores(cfg *config.Config) (*stores, error) {
	store, err := database.OpenBolt(cfg.BoltPath)
	if err != nil {
		return nil, err
	}

	logger.Log.WithField("path", cfg.BoltPath).Info("Opened embedded store")
	return &stores{
		confessions: boltrepo.NewConfessionRepository(store),
		bucketList:  boltrepo.NewBucketListRepository(store),
		expenses:    boltrepo.NewExpenseRepository(store),
		ping:        database.PingBolt(store),
		close: func(context.Context) error {
			return store.Close()
		},
	}, nil
}
