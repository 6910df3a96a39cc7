package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"movie-catalog/internal/domains/genre/model"
	"movie-catalog/internal/infrastructure/mongodb"
)

type genreDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Version   int       `bson:"version"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func toDocument(g *model.Genre) genreDocument {
	return genreDocument{
		ID:        g.ID.String(),
		Name:      g.Name,
		Version:   g.Version,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func (doc genreDocument) toModel() (*model.Genre, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("genre document has invalid id %q: %w", doc.ID, err)
	}
	return &model.Genre{
		ID:        id,
		Name:      doc.Name,
		Version:   doc.Version,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) RepositoryInterface {
	return &mongoRepository{coll: coll}
}

func byID(id uuid.UUID) bson.D {
	return bson.D{{Key: "_id", Value: id.String()}}
}

func (r *mongoRepository) Create(ctx context.Context, g *model.Genre) (*model.Genre, error) {
	created := *g
	created.ID = uuid.New()
	created.Version = 1
	created.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	created.UpdatedAt = created.CreatedAt

	if _, err := r.coll.InsertOne(ctx, toDocument(&created)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, model.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}
	return &created, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	return r.findOne(ctx, byID(id))
}

func (r *mongoRepository) FindByName(ctx context.Context, name string) (*model.Genre, error) {
	return r.findOne(ctx, bson.D{{Key: "name", Value: name}}, options.FindOne().SetCollation(mongodb.CaseInsensitive))
}

func (r *mongoRepository) findOne(ctx context.Context, filter bson.D, opts ...options.Lister[options.FindOneOptions]) (*model.Genre, error) {
	var doc genreDocument
	if err := r.coll.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}
	return doc.toModel()
}

func (r *mongoRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Genre, error) {
	if len(ids) == 0 {
		return []model.Genre{}, nil
	}
	keys := make(bson.A, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}
	return r.find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: keys}}}})
}

func (r *mongoRepository) FindAll(ctx context.Context) ([]model.Genre, error) {
	return r.find(ctx, bson.D{})
}

func (r *mongoRepository) find(ctx context.Context, filter bson.D) ([]model.Genre, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}

	var docs []genreDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode genres: %w", err)
	}

	genres := make([]model.Genre, 0, len(docs))
	for _, doc := range docs {
		g, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		genres = append(genres, *g)
	}
	return genres, nil
}

func (r *mongoRepository) Update(ctx context.Context, g *model.Genre, currentVersion int) (*model.Genre, error) {
	stored, err := r.FindByID(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	if currentVersion > 0 && stored.Version != currentVersion {
		return nil, model.ErrVersionConflict
	}

	filter := append(byID(g.ID), bson.E{Key: "version", Value: stored.Version})

	updated := *g
	updated.Version = stored.Version + 1
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)

	res, err := r.coll.ReplaceOne(ctx, filter, toDocument(&updated))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, model.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to update genre: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, model.ErrVersionConflict
	}
	return &updated, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return fmt.Errorf("failed to delete genre: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrGenreNotFound
	}
	return nil
}

func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count genres: %w", err)
	}
	return n, nil
}
