package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"movie-catalog/internal/domains/movie/model"
	"movie-catalog/pkg/cache"
)

const (
	movieCacheKeyPrefix = "movie:"
	movieListKey        = "movies:all"

	// movieListPattern matches the full list and every per-director and
	// per-genre list.
	movieListPattern = "movies:*"
)

// cachedRepository caches single movies and movie lists. Counts always hit
// the store. Any movie write drops every cached list, since an update can
// move a movie between directors and genres.
type cachedRepository struct {
	next  RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRepository(next RepositoryInterface, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &cachedRepository{next: next, cache: c, ttl: ttl}
}

func movieKey(id uuid.UUID) string {
	return movieCacheKeyPrefix + id.String()
}

func directorMoviesKey(directorID uuid.UUID) string {
	return "movies:director:" + directorID.String()
}

func genreMoviesKey(genreID uuid.UUID) string {
	return "movies:genre:" + genreID.String()
}

func (r *cachedRepository) Create(ctx context.Context, m *model.Movie) (*model.Movie, error) {
	created, err := r.next.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	r.invalidateLists(ctx)
	return created, nil
}

func (r *cachedRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	var m model.Movie
	if hit, err := r.cache.Get(ctx, movieKey(id), &m); err == nil && hit {
		return &m, nil
	}

	found, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, movieKey(id), found)
	return found, nil
}

func (r *cachedRepository) FindAll(ctx context.Context) ([]model.Movie, error) {
	return r.list(ctx, movieListKey, r.next.FindAll)
}

func (r *cachedRepository) FindByDirector(ctx context.Context, directorID uuid.UUID) ([]model.Movie, error) {
	return r.list(ctx, directorMoviesKey(directorID), func(ctx context.Context) ([]model.Movie, error) {
		return r.next.FindByDirector(ctx, directorID)
	})
}

func (r *cachedRepository) FindByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Movie, error) {
	return r.list(ctx, genreMoviesKey(genreID), func(ctx context.Context) ([]model.Movie, error) {
		return r.next.FindByGenre(ctx, genreID)
	})
}

func (r *cachedRepository) list(ctx context.Context, key string, load func(context.Context) ([]model.Movie, error)) ([]model.Movie, error) {
	var movies []model.Movie
	if hit, err := r.cache.Get(ctx, key, &movies); err == nil && hit {
		return movies, nil
	}

	movies, err := load(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, movies)
	return movies, nil
}

func (r *cachedRepository) CountByDirector(ctx context.Context, directorID uuid.UUID) (int64, error) {
	return r.next.CountByDirector(ctx, directorID)
}

func (r *cachedRepository) CountByGenre(ctx context.Context, genreID uuid.UUID) (int64, error) {
	return r.next.CountByGenre(ctx, genreID)
}

func (r *cachedRepository) Count(ctx context.Context) (int64, error) {
	return r.next.Count(ctx)
}

func (r *cachedRepository) Update(ctx context.Context, m *model.Movie, currentVersion int) (*model.Movie, error) {
	updated, err := r.next.Update(ctx, m, currentVersion)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, movieKey(m.ID))
	r.invalidateLists(ctx)
	return updated, nil
}

func (r *cachedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, movieKey(id))
	r.invalidateLists(ctx)
	return nil
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

func (r *cachedRepository) invalidateLists(ctx context.Context) {
	if err := r.cache.DeletePattern(ctx, movieListPattern); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("pattern", movieListPattern).Msg("cache invalidation failed")
	}
}
