package service

import (
	"context"

	"github.com/google/uuid"

	directormodel "movie-catalog/internal/domains/director/model"
	genremodel "movie-catalog/internal/domains/genre/model"
	"movie-catalog/internal/domains/movie/model"
	"movie-catalog/internal/shared/form"
)

type ServiceInterface interface {
	// List returns every movie by title with its director resolved.
	List(ctx context.Context) ([]MovieListItem, error)

	Get(ctx context.Context, id uuid.UUID) (*model.Movie, error)

	// Detail loads the movie with its director and genres.
	Detail(ctx context.Context, id uuid.UUID) (*MovieDetail, error)

	// FormOptions loads the directors and genres a movie form offers.
	FormOptions(ctx context.Context) (*FormOptions, error)

	Create(ctx context.Context, in *model.MovieInput) (*model.Movie, form.Errors, error)

	Update(ctx context.Context, id uuid.UUID, in *model.MovieInput) (*model.Movie, form.Errors, error)

	// Delete removes the movie. Nothing references movies, so it is never
	// blocked; a missing movie is a no-op.
	Delete(ctx context.Context, id uuid.UUID) (*DeleteResult, error)

	Count(ctx context.Context) (int64, error)
}

type MovieListItem struct {
	Movie    model.Movie
	Director *directormodel.Director
}

type MovieDetail struct {
	Movie    *model.Movie
	Director *directormodel.Director
	Genres   []genremodel.Genre
}

type FormOptions struct {
	Directors []directormodel.Director
	Genres    []genremodel.Genre
}

type DeleteResult struct {
	Movie   *model.Movie
	Missing bool
	Deleted bool
}
