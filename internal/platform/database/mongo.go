package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/kakineha/coffee-backend/internal/platform/logger"
)

const (
	connectTimeout     = 10 * time.Second
	maxCollectionNames = 10
)

// Mongo wraps the client and the application database. It is constructed
// once in main and injected into every repository.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to open mongo connection: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Info("Successfully connected to the database %q", dbName)
	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

func (m *Mongo) Name() string {
	return m.db.Name()
}

// Health pings the server and returns up to maxCollectionNames collection
// names as a connectivity probe.
func (m *Mongo) Health(ctx context.Context) ([]string, error) {
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	names, err := m.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if len(names) > maxCollectionNames {
		names = names[:maxCollectionNames]
	}
	return names, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
