package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
	"github.com/timshannon/bolthold"
	bolt "go.etcd.io/bbolt"
)

const boltFileMode = 0o600

// OpenBolt opens (creating if needed) the embedded store used when STORE_DRIVER=bolt.
func OpenBolt(path string) (*bolthold.Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create bolt directory: %w", err)
		}
	}

	store, err := bolthold.Open(path, boltFileMode, &bolthold.Options{
		Options: &bolt.Options{Timeout: 5 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("open bolt store %s: %w", path, err)
	}

	logger.Log.WithField("path", path).Info("Embedded store opened")
	return store, nil
}

// PingBolt runs an empty read transaction to prove the file is usable.
func PingBolt(store *bolthold.Store) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return store.Bolt().View(func(*bolt.Tx) error { return nil })
	}
}
