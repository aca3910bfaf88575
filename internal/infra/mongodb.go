package infra

import (
	"context"
	"fmt"

	"github.com/umalmyha/fleetcases/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongodb connects to mongo and waits for primary to answer ping
func Mongodb(ctx context.Context, cfg config.MongoCfg) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to establish connection to mongodb - %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("didn't get response from mongodb after sending ping request - %w", err)
	}
	return client, nil
}
