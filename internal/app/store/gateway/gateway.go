// internal/app/store/gateway/gateway.go
package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"go.uber.org/zap"
)

// ErrNotInitialized is returned by Database and Client before Connect has
// completed (or after Close).
var ErrNotInitialized = apperr.New(apperr.NotInitialized, "Database not initialized")

// DefaultDatabase is used when neither the URI nor the config names one.
const DefaultDatabase = "employee_tasks_db"

// Config describes how to reach MongoDB.
type Config struct {
	URI            string
	Database       string // used only when the URI has no database path
	MaxPoolSize    uint64
	MinPoolSize    uint64
	ConnectTimeout time.Duration
}

// Gateway owns the single MongoDB client for the process. It is created by
// the process root and handed to every store; there is no package-level
// connection state.
type Gateway struct {
	cfg Config
	log *zap.Logger

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

// New returns an unconnected Gateway.
func New(cfg Config, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{cfg: cfg, log: logger}
}

// DatabaseName resolves the database to use: the path component of the URI
// wins, then cfg.Database, then DefaultDatabase.
func DatabaseName(cfg Config) string {
	if cs, err := connstring.ParseAndValidate(cfg.URI); err == nil && cs.Database != "" {
		return cs.Database
	}
	if cfg.Database != "" {
		return cfg.Database
	}
	return DefaultDatabase
}

// Connect establishes the client and verifies it with a ping. Calling it
// again while connected returns the existing handle without reconnecting.
func (g *Gateway) Connect(ctx context.Context) (*mongo.Database, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.db != nil {
		return g.db, nil
	}
	if g.cfg.URI == "" {
		return nil, apperr.New(apperr.NotInitialized, "MongoDB URI not set")
	}

	opts := options.Client().ApplyURI(g.cfg.URI)
	if g.cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(g.cfg.MaxPoolSize)
	}
	if g.cfg.MinPoolSize > 0 {
		opts.SetMinPoolSize(g.cfg.MinPoolSize)
	}
	if g.cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(g.cfg.ConnectTimeout)
		opts.SetServerSelectionTimeout(g.cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	name := DatabaseName(g.cfg)
	db := client.Database(name)
	if err := db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	g.client = client
	g.db = db
	g.log.Info("connected to MongoDB", zap.String("database", name))
	return db, nil
}

// Database returns the active database handle.
func (g *Gateway) Database() (*mongo.Database, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.db == nil {
		return nil, ErrNotInitialized
	}
	return g.db, nil
}

// Close disconnects and resets the gateway. Closing an unconnected gateway
// is a no-op.
func (g *Gateway) Close(ctx context.Context) error {
	g.mu.Lock()
	client := g.client
	g.client = nil
	g.db = nil
	g.mu.Unlock()

	if client == nil {
		return nil
	}
	g.log.Info("disconnecting MongoDB client")
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongo disconnect: %w", err)
	}
	return nil
}

// Ping issues a trivial round-trip against the database.
func (g *Gateway) Ping(ctx context.Context) error {
	db, err := g.Database()
	if err != nil {
		return err
	}
	return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
