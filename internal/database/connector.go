package database

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Dias221467/Mongo_Exercises/internal/config"
	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrNotConnected is returned by Database and Ping before Connect succeeded.
var ErrNotConnected = errors.New("database: not connected")

// Connector owns the single MongoDB client shared by every repository.
// It is created once in main and passed to whoever needs a database handle.
type Connector struct {
	uri  string
	opts *options.ClientOptions

	mu     sync.RWMutex
	client *mongo.Client
}

// NewConnector prepares a connector from configuration without dialing.
func NewConnector(cfg *config.Config) *Connector {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetAppName(cfg.ServiceName)
	if cfg.MongoTimeout > 0 {
		opts.SetServerSelectionTimeout(cfg.MongoTimeout)
		opts.SetConnectTimeout(cfg.MongoTimeout)
	}
	if cfg.MongoMaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MongoMaxPoolSize)
	}

	return &Connector{uri: cfg.MongoURI, opts: opts}
}

// Connect creates the client. Calling it again after success is a no-op.
func (c *Connector) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return nil
	}

	client, err := mongo.Connect(ctx, c.opts)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to create MongoDB client")
		return fmt.Errorf("connect to %s: %w", c.uri, err)
	}
	c.client = client

	logger.Log.WithField("uri", c.uri).Info("MongoDB client created")
	return nil
}

// Database returns a handle on the named database of the shared client.
func (c *Connector) Database(name string) (*mongo.Database, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.client == nil {
		return nil, ErrNotConnected
	}
	return c.client.Database(name), nil
}

// Ping verifies the primary is reachable.
func (c *Connector) Ping(ctx context.Context) error {
	c.mu.RLock()
	client := c.client
	c.mu.RUnlock()

	if client == nil {
		return ErrNotConnected
	}
	return client.Ping(ctx, readpref.Primary())
}

// Disconnect closes the client; the connector can be connected again afterwards.
func (c *Connector) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}
	err := c.client.Disconnect(ctx)
	c.client = nil
	if err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}

	logger.Log.Info("MongoDB client disconnected")
	return nil
}
