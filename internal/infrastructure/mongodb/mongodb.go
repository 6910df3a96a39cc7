package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Collection names.
const (
	DirectorsCollection = "directors"
	MoviesCollection    = "movies"
	GenresCollection    = "genres"
)

// CaseInsensitive is the collation used for genre names.
var CaseInsensitive = &options.Collation{Locale: "en", Strength: 2}

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type MongoDB struct {
	Client *mongo.Client
	DB     *mongo.Database
	Config *Config
}

func NewMongoDB(config *Config) *MongoDB {
	return &MongoDB{Config: config}
}

func (m *MongoDB) Connect(ctx context.Context) error {
	opts := options.Client().
		ApplyURI(m.Config.URI).
		SetConnectTimeout(m.Config.Timeout).
		SetServerSelectionTimeout(m.Config.Timeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, m.Config.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("mongo ping: %w", err)
	}

	m.Client = client
	m.DB = client.Database(m.Config.Database)
	log.Info().Str("database", m.Config.Database).Msg("mongodb connected")
	return nil
}

// EnsureIndexes creates the indexes the repositories sort and filter on.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		DirectorsCollection: {
			{Keys: bson.D{{Key: "family_name", Value: 1}}},
		},
		MoviesCollection: {
			{Keys: bson.D{{Key: "title", Value: 1}}},
			{Keys: bson.D{{Key: "director_id", Value: 1}}},
			{Keys: bson.D{{Key: "genre_ids", Value: 1}}},
		},
		GenresCollection: {
			{
				Keys:    bson.D{{Key: "name", Value: 1}},
				Options: options.Index().SetUnique(true).SetCollation(CaseInsensitive),
			},
		},
	}

	for name, models := range indexes {
		if _, err := m.DB.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}

func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.DB.Collection(name)
}

func (m *MongoDB) HealthCheck(ctx context.Context) error {
	if m.Client == nil {
		return fmt.Errorf("mongo client is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := m.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	if m.Client == nil {
		return nil
	}
	if err := m.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongo disconnect: %w", err)
	}
	m.Client = nil
	return nil
}
