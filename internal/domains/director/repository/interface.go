package repository

import (
	"context"

	"github.com/google/uuid"

	"movie-catalog/internal/domains/director/model"
)

// RepositoryInterface persists directors. Absence is reported as
// model.ErrDirectorNotFound.
type RepositoryInterface interface {
	// Create inserts d. The store assigns ID, Version (1) and timestamps.
	Create(ctx context.Context, d *model.Director) (*model.Director, error)

	FindByID(ctx context.Context, id uuid.UUID) (*model.Director, error)

	// FindAll returns every director ordered by family name.
	FindAll(ctx context.Context) ([]model.Director, error)

	// Update replaces the whole stored document with d. When currentVersion
	// is positive the write only happens if the stored version matches,
	// otherwise model.ErrVersionConflict.
	Update(ctx context.Context, d *model.Director, currentVersion int) (*model.Director, error)

	// Delete removes the director. Stores that can check references
	// atomically refuse with model.ErrDirectorHasMovies.
	Delete(ctx context.Context, id uuid.UUID) error

	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	Count(ctx context.Context) (int64, error)
}
