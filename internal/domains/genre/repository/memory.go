package repository

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"movie-catalog/internal/domains/genre/model"
)

type memoryRepository struct {
	mu     sync.RWMutex
	genres map[uuid.UUID]model.Genre
	now    func() time.Time
}

func NewMemoryRepository() RepositoryInterface {
	return &memoryRepository{
		genres: make(map[uuid.UUID]model.Genre),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// nameTakenLocked reports whether another genre already uses name.
func (r *memoryRepository) nameTakenLocked(name string, except uuid.UUID) bool {
	for id, g := range r.genres {
		if id != except && strings.EqualFold(g.Name, name) {
			return true
		}
	}
	return false
}

func (r *memoryRepository) Create(_ context.Context, g *model.Genre) (*model.Genre, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTakenLocked(g.Name, uuid.Nil) {
		return nil, model.ErrDuplicateName
	}

	created := *g
	created.ID = uuid.New()
	created.Version = 1
	created.CreatedAt = r.now()
	created.UpdatedAt = created.CreatedAt

	r.genres[created.ID] = created
	return &created, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id uuid.UUID) (*model.Genre, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.genres[id]
	if !ok {
		return nil, model.ErrGenreNotFound
	}
	return &g, nil
}

func (r *memoryRepository) FindByName(_ context.Context, name string) (*model.Genre, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.genres {
		if strings.EqualFold(g.Name, name) {
			return &g, nil
		}
	}
	return nil, model.ErrGenreNotFound
}

func (r *memoryRepository) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Genre, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	genres := []model.Genre{}
	for _, id := range ids {
		if g, ok := r.genres[id]; ok && !slices.ContainsFunc(genres, func(x model.Genre) bool { return x.ID == id }) {
			genres = append(genres, g)
		}
	}
	sortByName(genres)
	return genres, nil
}

func (r *memoryRepository) FindAll(_ context.Context) ([]model.Genre, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	genres := make([]model.Genre, 0, len(r.genres))
	for _, g := range r.genres {
		genres = append(genres, g)
	}
	sortByName(genres)
	return genres, nil
}

func sortByName(genres []model.Genre) {
	slices.SortFunc(genres, func(a, b model.Genre) int {
		return strings.Compare(a.Name, b.Name)
	})
}

func (r *memoryRepository) Update(_ context.Context, g *model.Genre, currentVersion int) (*model.Genre, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.genres[g.ID]
	if !ok {
		return nil, model.ErrGenreNotFound
	}
	if currentVersion > 0 && stored.Version != currentVersion {
		return nil, model.ErrVersionConflict
	}
	if r.nameTakenLocked(g.Name, g.ID) {
		return nil, model.ErrDuplicateName
	}

	updated := *g
	updated.Version = stored.Version + 1
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = r.now()

	r.genres[g.ID] = updated
	return &updated, nil
}

func (r *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.genres[id]; !ok {
		return model.ErrGenreNotFound
	}
	delete(r.genres, id)
	return nil
}

func (r *memoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.genres)), nil
}
