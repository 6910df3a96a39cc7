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

	"movie-catalog/internal/domains/movie/model"
)

type movieDocument struct {
	ID         string    `bson:"_id"`
	Title      string    `bson:"title"`
	Summary    string    `bson:"summary"`
	DirectorID string    `bson:"director_id"`
	GenreIDs   []string  `bson:"genre_ids"`
	Version    int       `bson:"version"`
	CreatedAt  time.Time `bson:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at"`
}

func toDocument(m *model.Movie) movieDocument {
	genres := make([]string, len(m.GenreIDs))
	for i, g := range m.GenreIDs {
		genres[i] = g.String()
	}
	return movieDocument{
		ID:         m.ID.String(),
		Title:      m.Title,
		Summary:    m.Summary,
		DirectorID: m.DirectorID.String(),
		GenreIDs:   genres,
		Version:    m.Version,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (doc movieDocument) toModel() (*model.Movie, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("movie document has invalid id %q: %w", doc.ID, err)
	}
	directorID, err := uuid.Parse(doc.DirectorID)
	if err != nil {
		return nil, fmt.Errorf("movie %s has invalid director id %q: %w", doc.ID, doc.DirectorID, err)
	}

	m := &model.Movie{
		ID:         id,
		Title:      doc.Title,
		Summary:    doc.Summary,
		DirectorID: directorID,
		GenreIDs:   make([]uuid.UUID, 0, len(doc.GenreIDs)),
		Version:    doc.Version,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
	for _, g := range doc.GenreIDs {
		genreID, err := uuid.Parse(g)
		if err != nil {
			return nil, fmt.Errorf("movie %s has invalid genre id %q: %w", doc.ID, g, err)
		}
		m.GenreIDs = append(m.GenreIDs, genreID)
	}
	return m, nil
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

func (r *mongoRepository) Create(ctx context.Context, m *model.Movie) (*model.Movie, error) {
	created := *m
	created.ID = uuid.New()
	created.Version = 1
	created.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	created.UpdatedAt = created.CreatedAt
	if created.GenreIDs == nil {
		created.GenreIDs = []uuid.UUID{}
	}

	if _, err := r.coll.InsertOne(ctx, toDocument(&created)); err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}
	return &created, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	var doc movieDocument
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie by id: %w", err)
	}
	return doc.toModel()
}

func (r *mongoRepository) FindAll(ctx context.Context) ([]model.Movie, error) {
	return r.find(ctx, bson.D{})
}

func (r *mongoRepository) FindByDirector(ctx context.Context, directorID uuid.UUID) ([]model.Movie, error) {
	return r.find(ctx, bson.D{{Key: "director_id", Value: directorID.String()}})
}

// FindByGenre matches array membership: {genre_ids: id}.
func (r *mongoRepository) FindByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Movie, error) {
	return r.find(ctx, bson.D{{Key: "genre_ids", Value: genreID.String()}})
}

func (r *mongoRepository) find(ctx context.Context, filter bson.D) ([]model.Movie, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	var docs []movieDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode movies: %w", err)
	}

	movies := make([]model.Movie, 0, len(docs))
	for _, doc := range docs {
		m, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		movies = append(movies, *m)
	}
	return movies, nil
}

func (r *mongoRepository) CountByDirector(ctx context.Context, directorID uuid.UUID) (int64, error) {
	return r.count(ctx, bson.D{{Key: "director_id", Value: directorID.String()}})
}

func (r *mongoRepository) CountByGenre(ctx context.Context, genreID uuid.UUID) (int64, error) {
	return r.count(ctx, bson.D{{Key: "genre_ids", Value: genreID.String()}})
}

func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, bson.D{})
}

func (r *mongoRepository) count(ctx context.Context, filter bson.D) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return n, nil
}

func (r *mongoRepository) Update(ctx context.Context, m *model.Movie, currentVersion int) (*model.Movie, error) {
	stored, err := r.FindByID(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	if currentVersion > 0 && stored.Version != currentVersion {
		return nil, model.ErrVersionConflict
	}

	filter := append(byID(m.ID), bson.E{Key: "version", Value: stored.Version})

	updated := *m
	updated.Version = stored.Version + 1
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)
	if updated.GenreIDs == nil {
		updated.GenreIDs = []uuid.UUID{}
	}

	res, err := r.coll.ReplaceOne(ctx, filter, toDocument(&updated))
	if err != nil {
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, model.ErrVersionConflict
	}
	return &updated, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrMovieNotFound
	}
	return nil
}
