package repository

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"movie-catalog/internal/domains/movie/model"
)

type memoryRepository struct {
	mu     sync.RWMutex
	movies map[uuid.UUID]model.Movie
	now    func() time.Time
}

func NewMemoryRepository() RepositoryInterface {
	return &memoryRepository{
		movies: make(map[uuid.UUID]model.Movie),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// clone copies m so callers never share the GenreIDs backing array with the store.
func clone(m model.Movie) model.Movie {
	m.GenreIDs = append([]uuid.UUID{}, m.GenreIDs...)
	return m
}

func (r *memoryRepository) Create(_ context.Context, m *model.Movie) (*model.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := clone(*m)
	created.ID = uuid.New()
	created.Version = 1
	created.CreatedAt = r.now()
	created.UpdatedAt = created.CreatedAt

	r.movies[created.ID] = created
	out := clone(created)
	return &out, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id uuid.UUID) (*model.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.movies[id]
	if !ok {
		return nil, model.ErrMovieNotFound
	}
	out := clone(m)
	return &out, nil
}

func (r *memoryRepository) FindAll(_ context.Context) ([]model.Movie, error) {
	return r.filter(func(model.Movie) bool { return true }), nil
}

func (r *memoryRepository) FindByDirector(_ context.Context, directorID uuid.UUID) ([]model.Movie, error) {
	return r.filter(func(m model.Movie) bool { return m.DirectorID == directorID }), nil
}

func (r *memoryRepository) FindByGenre(_ context.Context, genreID uuid.UUID) ([]model.Movie, error) {
	return r.filter(func(m model.Movie) bool { return m.HasGenre(genreID) }), nil
}

func (r *memoryRepository) CountByDirector(ctx context.Context, directorID uuid.UUID) (int64, error) {
	movies, _ := r.FindByDirector(ctx, directorID)
	return int64(len(movies)), nil
}

func (r *memoryRepository) CountByGenre(ctx context.Context, genreID uuid.UUID) (int64, error) {
	movies, _ := r.FindByGenre(ctx, genreID)
	return int64(len(movies)), nil
}

func (r *memoryRepository) filter(keep func(model.Movie) bool) []model.Movie {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := []model.Movie{}
	for _, m := range r.movies {
		if keep(m) {
			movies = append(movies, clone(m))
		}
	}
	slices.SortFunc(movies, func(a, b model.Movie) int {
		return strings.Compare(a.Title, b.Title)
	})
	return movies
}

func (r *memoryRepository) Update(_ context.Context, m *model.Movie, currentVersion int) (*model.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.movies[m.ID]
	if !ok {
		return nil, model.ErrMovieNotFound
	}
	if currentVersion > 0 && stored.Version != currentVersion {
		return nil, model.ErrVersionConflict
	}

	updated := clone(*m)
	updated.Version = stored.Version + 1
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = r.now()

	r.movies[m.ID] = updated
	out := clone(updated)
	return &out, nil
}

func (r *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[id]; !ok {
		return model.ErrMovieNotFound
	}
	delete(r.movies, id)
	return nil
}

func (r *memoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.movies)), nil
}
