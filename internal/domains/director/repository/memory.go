package repository

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"movie-catalog/internal/domains/director/model"
)

// memoryRepository keeps directors in a map. Used by the memory store
// driver and as a fake in tests.
type memoryRepository struct {
	mu        sync.RWMutex
	directors map[uuid.UUID]model.Director
	now       func() time.Time
}

func NewMemoryRepository() RepositoryInterface {
	return &memoryRepository{
		directors: make(map[uuid.UUID]model.Director),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *memoryRepository) Create(_ context.Context, d *model.Director) (*model.Director, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *d
	created.ID = uuid.New()
	created.Version = 1
	created.CreatedAt = r.now()
	created.UpdatedAt = created.CreatedAt

	r.directors[created.ID] = created
	return &created, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id uuid.UUID) (*model.Director, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.directors[id]
	if !ok {
		return nil, model.ErrDirectorNotFound
	}
	return &d, nil
}

func (r *memoryRepository) FindAll(_ context.Context) ([]model.Director, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	directors := make([]model.Director, 0, len(r.directors))
	for _, d := range r.directors {
		directors = append(directors, d)
	}
	slices.SortFunc(directors, func(a, b model.Director) int {
		return cmp.Or(
			cmp.Compare(a.FamilyName, b.FamilyName),
			cmp.Compare(a.FirstName, b.FirstName),
		)
	})
	return directors, nil
}

func (r *memoryRepository) Update(_ context.Context, d *model.Director, currentVersion int) (*model.Director, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.directors[d.ID]
	if !ok {
		return nil, model.ErrDirectorNotFound
	}
	if currentVersion > 0 && stored.Version != currentVersion {
		return nil, model.ErrVersionConflict
	}

	updated := *d
	updated.Version = stored.Version + 1
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = r.now()

	r.directors[d.ID] = updated
	return &updated, nil
}

func (r *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.directors[id]; !ok {
		return model.ErrDirectorNotFound
	}
	delete(r.directors, id)
	return nil
}

func (r *memoryRepository) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.directors[id]
	return ok, nil
}

func (r *memoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.directors)), nil
}
