// Package database owns the MongoDB client lifecycle and first-run seeding.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/config"
)

const connectTimeout = 10 * time.Second

// Connect dials MongoDB, verifies the connection with a ping and returns the
// configured database. The caller owns the client and must Disconnect it.
func Connect(ctx context.Context, cfg config.MongoConfig, log *zap.Logger) (*mongo.Client, *mongo.Database, error) {
	if cfg.URI == "" {
		return nil, nil, fmt.Errorf("database.Connect: MONGO_URI is not set")
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("database.Connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("database.Connect ping: %w", err)
	}

	log.Info("connected to MongoDB", zap.String("db", cfg.DBName))
	return client, client.Database(cfg.DBName), nil
}
