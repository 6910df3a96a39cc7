package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	directormodel "movie-catalog/internal/domains/director/model"
	directorrepo "movie-catalog/internal/domains/director/repository"
	genrerepo "movie-catalog/internal/domains/genre/repository"
	"movie-catalog/internal/domains/movie/model"
	"movie-catalog/internal/domains/movie/repository"
	"movie-catalog/internal/shared/form"
)

type movieService struct {
	repo      repository.RepositoryInterface
	directors directorrepo.RepositoryInterface
	genres    genrerepo.RepositoryInterface
}

func NewMovieService(
	repo repository.RepositoryInterface,
	directors directorrepo.RepositoryInterface,
	genres genrerepo.RepositoryInterface,
) ServiceInterface {
	return &movieService{
		repo:      repo,
		directors: directors,
		genres:    genres,
	}
}

func (s *movieService) List(ctx context.Context) ([]MovieListItem, error) {
	var (
		movies    []model.Movie
		directors []directormodel.Director
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		movies, err = s.repo.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		directors, err = s.directors.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*directormodel.Director, len(directors))
	for i := range directors {
		byID[directors[i].ID] = &directors[i]
	}

	items := make([]MovieListItem, 0, len(movies))
	for _, m := range movies {
		items = append(items, MovieListItem{Movie: m, Director: byID[m.DirectorID]})
	}
	return items, nil
}

func (s *movieService) Get(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	if id == uuid.Nil {
		return nil, model.ErrMovieNotFound
	}
	return s.repo.FindByID(ctx, id)
}

func (s *movieService) Detail(ctx context.Context, id uuid.UUID) (*MovieDetail, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &MovieDetail{Movie: m}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := s.directors.FindByID(gctx, m.DirectorID)
		if errors.Is(err, directormodel.ErrDirectorNotFound) {
			return nil
		}
		detail.Director = d
		return err
	})
	g.Go(func() (err error) {
		detail.Genres, err = s.genres.FindByIDs(gctx, m.GenreIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *movieService) FormOptions(ctx context.Context) (*FormOptions, error) {
	var opts FormOptions

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		opts.Directors, err = s.directors.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		opts.Genres, err = s.genres.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &opts, nil
}

func (s *movieService) Create(ctx context.Context, in *model.MovieInput) (*model.Movie, form.Errors, error) {
	errs := in.Validate()
	m := in.ToEntity(uuid.Nil)
	if !errs.Empty() {
		return m, errs, nil
	}

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return m, nil, err
	}
	return created, nil, nil
}

func (s *movieService) Update(ctx context.Context, id uuid.UUID, in *model.MovieInput) (*model.Movie, form.Errors, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	errs := in.Validate()
	m := in.ToEntity(id)
	m.CreatedAt = existing.CreatedAt
	if !errs.Empty() {
		return m, errs, nil
	}

	updated, err := s.repo.Update(ctx, m, in.Version)
	if err != nil {
		return m, nil, err
	}
	return updated, nil, nil
}

func (s *movieService) Delete(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	m, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, model.ErrMovieNotFound) {
		return &DeleteResult{Missing: true}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrMovieNotFound) {
			return &DeleteResult{Missing: true}, nil
		}
		return nil, err
	}
	return &DeleteResult{Movie: m, Deleted: true}, nil
}

func (s *movieService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
