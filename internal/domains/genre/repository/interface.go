package repository

import (
	"context"

	"github.com/google/uuid"

	"movie-catalog/internal/domains/genre/model"
)

// RepositoryInterface persists genres. Absence is reported as
// model.ErrGenreNotFound; names are unique case-insensitively.
type RepositoryInterface interface {
	Create(ctx context.Context, g *model.Genre) (*model.Genre, error)

	FindByID(ctx context.Context, id uuid.UUID) (*model.Genre, error)

	// FindByIDs returns the genres that exist among ids, ordered by name.
	// Unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Genre, error)

	// FindByName matches the name case-insensitively.
	FindByName(ctx context.Context, name string) (*model.Genre, error)

	// FindAll returns every genre ordered by name.
	FindAll(ctx context.Context) ([]model.Genre, error)

	Update(ctx context.Context, g *model.Genre, currentVersion int) (*model.Genre, error)

	// Delete removes the genre. Stores that can check references
	// atomically refuse with model.ErrGenreHasMovies.
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int64, error)
}
