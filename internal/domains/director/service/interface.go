package service

import (
	"context"

	"github.com/google/uuid"

	"movie-catalog/internal/domains/director/model"
	moviemodel "movie-catalog/internal/domains/movie/model"
	"movie-catalog/internal/shared/form"
)

// ServiceInterface holds the director workflows shared by the HTML pages and
// the JSON API.
type ServiceInterface interface {
	List(ctx context.Context) ([]model.Director, error)

	// MovieCounts maps each director id to the number of movies referencing it.
	MovieCounts(ctx context.Context, directors []model.Director) (map[uuid.UUID]int64, error)

	Get(ctx context.Context, id uuid.UUID) (*model.Director, error)

	// Detail loads the director and the movies referencing it.
	Detail(ctx context.Context, id uuid.UUID) (*DirectorDetail, error)

	// Create validates in and inserts the director. Validation failures are
	// returned as form.Errors together with the director built from the
	// normalized input; nothing is stored in that case.
	Create(ctx context.Context, in *model.DirectorInput) (*model.Director, form.Errors, error)

	// Update validates in and replaces the director identified by id. A
	// missing director is model.ErrDirectorNotFound, independent of the
	// input's validity.
	Update(ctx context.Context, id uuid.UUID, in *model.DirectorInput) (*model.Director, form.Errors, error)

	// DeleteInfo reports what Delete would do without deleting.
	DeleteInfo(ctx context.Context, id uuid.UUID) (*DeleteResult, error)

	Delete(ctx context.Context, id uuid.UUID) (*DeleteResult, error)

	Count(ctx context.Context) (int64, error)
}

type DirectorDetail struct {
	Director *model.Director
	Movies   []moviemodel.Movie
}

// DeleteResult is the outcome of a guarded delete. At most one of Missing,
// Blocked and Deleted is set; none set means the delete is allowed but has
// not happened yet.
type DeleteResult struct {
	Director *model.Director
	Movies   []moviemodel.Movie

	Missing bool
	Blocked bool
	Deleted bool
}
