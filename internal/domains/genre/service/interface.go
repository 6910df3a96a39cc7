package service

import (
	"context"

	"github.com/google/uuid"

	"movie-catalog/internal/domains/genre/model"
	moviemodel "movie-catalog/internal/domains/movie/model"
	"movie-catalog/internal/shared/form"
)

type ServiceInterface interface {
	List(ctx context.Context) ([]model.Genre, error)

	// MovieCounts maps each genre id to the number of movies referencing it.
	MovieCounts(ctx context.Context, genres []model.Genre) (map[uuid.UUID]int64, error)

	Get(ctx context.Context, id uuid.UUID) (*model.Genre, error)

	// Detail loads the genre and the movies listing it.
	Detail(ctx context.Context, id uuid.UUID) (*GenreDetail, error)

	// Create validates in and inserts the genre. When a genre with the same
	// name (ignoring case) exists, that genre is returned instead.
	Create(ctx context.Context, in *model.GenreInput) (*model.Genre, form.Errors, error)

	Update(ctx context.Context, id uuid.UUID, in *model.GenreInput) (*model.Genre, form.Errors, error)

	DeleteInfo(ctx context.Context, id uuid.UUID) (*DeleteResult, error)

	Delete(ctx context.Context, id uuid.UUID) (*DeleteResult, error)

	Count(ctx context.Context) (int64, error)
}

type GenreDetail struct {
	Genre  *model.Genre
	Movies []moviemodel.Movie
}

// DeleteResult mirrors the director delete guard outcome.
type DeleteResult struct {
	Genre  *model.Genre
	Movies []moviemodel.Movie

	Missing bool
	Blocked bool
	Deleted bool
}
