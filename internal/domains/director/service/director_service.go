package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"movie-catalog/internal/domains/director/model"
	"movie-catalog/internal/domains/director/repository"
	moviemodel "movie-catalog/internal/domains/movie/model"
	movierepo "movie-catalog/internal/domains/movie/repository"
	"movie-catalog/internal/shared/form"
)

const movieCountConcurrency = 8

type directorService struct {
	repo   repository.RepositoryInterface
	movies movierepo.RepositoryInterface
}

func NewDirectorService(repo repository.RepositoryInterface, movies movierepo.RepositoryInterface) ServiceInterface {
	return &directorService{
		repo:   repo,
		movies: movies,
	}
}

func (s *directorService) List(ctx context.Context) ([]model.Director, error) {
	return s.repo.FindAll(ctx)
}

// MovieCounts returns how many movies reference each of the given directors.
func (s *directorService) MovieCounts(ctx context.Context, directors []model.Director) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(directors))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(movieCountConcurrency)
	for _, item := range directors {
		g.Go(func() error {
			n, err := s.movies.CountByDirector(gctx, item.ID)
			if err != nil {
				return fmt.Errorf("count movies for director %s: %w", item.ID, err)
			}
			mu.Lock()
			counts[item.ID] = n
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

func (s *directorService) Get(ctx context.Context, id uuid.UUID) (*model.Director, error) {
	if id == uuid.Nil {
		return nil, model.ErrDirectorNotFound
	}
	return s.repo.FindByID(ctx, id)
}

func (s *directorService) Detail(ctx context.Context, id uuid.UUID) (*DirectorDetail, error) {
	var detail DirectorDetail

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := s.repo.FindByID(gctx, id)
		detail.Director = d
		return err
	})
	g.Go(func() error {
		movies, err := s.movies.FindByDirector(gctx, id)
		detail.Movies = movies
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *directorService) Create(ctx context.Context, in *model.DirectorInput) (*model.Director, form.Errors, error) {
	errs := in.Validate()
	d := in.ToEntity(uuid.Nil)
	if !errs.Empty() {
		return d, errs, nil
	}

	created, err := s.repo.Create(ctx, d)
	if err != nil {
		return d, nil, err
	}
	return created, nil, nil
}

func (s *directorService) Update(ctx context.Context, id uuid.UUID, in *model.DirectorInput) (*model.Director, form.Errors, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	errs := in.Validate()
	d := in.ToEntity(id)
	d.CreatedAt = existing.CreatedAt
	if !errs.Empty() {
		return d, errs, nil
	}

	updated, err := s.repo.Update(ctx, d, in.Version)
	if err != nil {
		return d, nil, err
	}
	return updated, nil, nil
}

func (s *directorService) DeleteInfo(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	var (
		director *model.Director
		movies   []moviemodel.Movie
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := s.repo.FindByID(gctx, id)
		if errors.Is(err, model.ErrDirectorNotFound) {
			return nil
		}
		director = d
		return err
	})
	g.Go(func() error {
		var err error
		movies, err = s.movies.FindByDirector(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load director for delete: %w", err)
	}

	if director == nil {
		return &DeleteResult{Missing: true}, nil
	}
	return &DeleteResult{
		Director: director,
		Movies:   movies,
		Blocked:  len(movies) > 0,
	}, nil
}

// Delete removes the director when no movie references it. A missing
// director is a successful no-op.
func (s *directorService) Delete(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	res, err := s.DeleteInfo(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Missing || res.Blocked {
		return res, nil
	}

	err = s.repo.Delete(ctx, id)
	switch {
	case err == nil:
		res.Deleted = true
		return res, nil
	case errors.Is(err, model.ErrDirectorNotFound):
		return &DeleteResult{Missing: true}, nil
	case errors.Is(err, model.ErrDirectorHasMovies):
		// A movie was added after the check above.
		movies, ferr := s.movies.FindByDirector(ctx, id)
		if ferr != nil {
			return nil, ferr
		}
		res.Movies = movies
		res.Blocked = true
		return res, nil
	default:
		return nil, err
	}
}

func (s *directorService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
