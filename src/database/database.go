package database

import (
	"context"
	"fmt"
	"time"

	"admission-backend/src/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 15 * time.Second

// ConnectMongoDB connects and pings the primary.
func ConnectMongoDB(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	logger.Info().Msg("✅ MongoDB connected successfully")
	listDatabases(ctx, client)
	return client, nil
}

// DisconnectMongoDB closes the client.
func DisconnectMongoDB(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}
	logger.Info().Msg("MongoDB disconnected")
	return nil
}

func listDatabases(ctx context.Context, client *mongo.Client) {
	dbs, err := client.ListDatabaseNames(ctx, bson.M{})
	if err != nil {
		logger.Warn().Err(err).Msg("⚠️ could not list databases")
		return
	}
	logger.Debug().Strs("databases", dbs).Msg("📌 databases in MongoDB")
}
