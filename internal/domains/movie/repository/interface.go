package repository

import (
	"context"

	"github.com/google/uuid"

	"movie-catalog/internal/domains/movie/model"
)

// RepositoryInterface persists movies. Absence is reported as
// model.ErrMovieNotFound.
type RepositoryInterface interface {
	// Create inserts m. The store assigns ID, Version (1) and timestamps.
	Create(ctx context.Context, m *model.Movie) (*model.Movie, error)

	FindByID(ctx context.Context, id uuid.UUID) (*model.Movie, error)

	// FindAll returns every movie ordered by title.
	FindAll(ctx context.Context) ([]model.Movie, error)

	// FindByDirector returns the director's movies ordered by title.
	FindByDirector(ctx context.Context, directorID uuid.UUID) ([]model.Movie, error)

	// FindByGenre returns the movies listing the genre, ordered by title.
	FindByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Movie, error)

	CountByDirector(ctx context.Context, directorID uuid.UUID) (int64, error)

	CountByGenre(ctx context.Context, genreID uuid.UUID) (int64, error)

	// Update replaces the whole stored document with m. A positive
	// currentVersion makes the write conditional on the stored version.
	Update(ctx context.Context, m *model.Movie, currentVersion int) (*model.Movie, error)

	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int64, error)
}
