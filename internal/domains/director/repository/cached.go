package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"movie-catalog/internal/domains/director/model"
	"movie-catalog/pkg/cache"
)

const (
	directorCacheKeyPrefix = "director:"
	directorListKey        = "directors:all"
)

// cachedRepository serves reads from cache.Cache and falls through to the
// wrapped store. Cache failures are logged and otherwise ignored.
type cachedRepository struct {
	next  RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRepository(next RepositoryInterface, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &cachedRepository{next: next, cache: c, ttl: ttl}
}

func directorKey(id uuid.UUID) string {
	return directorCacheKeyPrefix + id.String()
}

func (r *cachedRepository) Create(ctx context.Context, d *model.Director) (*model.Director, error) {
	created, err := r.next.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, directorListKey)
	return created, nil
}

func (r *cachedRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Director, error) {
	var d model.Director
	if hit, err := r.cache.Get(ctx, directorKey(id), &d); err == nil && hit {
		return &d, nil
	}

	found, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, directorKey(id), found)
	return found, nil
}

func (r *cachedRepository) FindAll(ctx context.Context) ([]model.Director, error) {
	var directors []model.Director
	if hit, err := r.cache.Get(ctx, directorListKey, &directors); err == nil && hit {
		return directors, nil
	}

	directors, err := r.next.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, directorListKey, directors)
	return directors, nil
}

func (r *cachedRepository) Update(ctx context.Context, d *model.Director, currentVersion int) (*model.Director, error) {
	updated, err := r.next.Update(ctx, d, currentVersion)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, directorKey(d.ID), directorListKey)
	return updated, nil
}

func (r *cachedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, directorKey(id), directorListKey)
	return nil
}

func (r *cachedRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.next.Exists(ctx, id)
}

func (r *cachedRepository) Count(ctx context.Context) (int64, error) {
	return r.next.Count(ctx)
}

func (r *cachedRepository) store(ctx context.Context, key string, value any) {
	if err := r.cache.Set(ctx, key, value, r.ttl); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (r *cachedRepository) invalidate(ctx context.Context, keys ...string) {
	if err := r.cache.Delete(ctx, keys...); err != nil {
		log.Ctx(ctx).Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
