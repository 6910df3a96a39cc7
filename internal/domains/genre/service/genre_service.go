package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"movie-catalog/internal/domains/genre/model"
	"movie-catalog/internal/domains/genre/repository"
	moviemodel "movie-catalog/internal/domains/movie/model"
	movierepo "movie-catalog/internal/domains/movie/repository"
	"movie-catalog/internal/shared/form"
)

const (
	duplicateNameMessage  = "A genre with this name already exists."
	movieCountConcurrency = 8
)

type genreService struct {
	repo   repository.RepositoryInterface
	movies movierepo.RepositoryInterface
}

func NewGenreService(repo repository.RepositoryInterface, movies movierepo.RepositoryInterface) ServiceInterface {
	return &genreService{
		repo:   repo,
		movies: movies,
	}
}

func (s *genreService) List(ctx context.Context) ([]model.Genre, error) {
	return s.repo.FindAll(ctx)
}

// MovieCounts returns how many movies reference each of the given genres.
func (s *genreService) MovieCounts(ctx context.Context, genres []model.Genre) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(genres))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(movieCountConcurrency)
	for _, item := range genres {
		g.Go(func() error {
			n, err := s.movies.CountByGenre(gctx, item.ID)
			if err != nil {
				return fmt.Errorf("count movies for genre %s: %w", item.ID, err)
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

func (s *genreService) Get(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	if id == uuid.Nil {
		return nil, model.ErrGenreNotFound
	}
	return s.repo.FindByID(ctx, id)
}

func (s *genreService) Detail(ctx context.Context, id uuid.UUID) (*GenreDetail, error) {
	var detail GenreDetail

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		detail.Genre, err = s.repo.FindByID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		detail.Movies, err = s.movies.FindByGenre(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *genreService) Create(ctx context.Context, in *model.GenreInput) (*model.Genre, form.Errors, error) {
	errs := in.Validate()
	genre := in.ToEntity(uuid.Nil)
	if !errs.Empty() {
		return genre, errs, nil
	}

	existing, err := s.repo.FindByName(ctx, genre.Name)
	switch {
	case err == nil:
		return existing, nil, nil
	case !errors.Is(err, model.ErrGenreNotFound):
		return genre, nil, err
	}

	created, err := s.repo.Create(ctx, genre)
	if errors.Is(err, model.ErrDuplicateName) {
		// Created concurrently between the lookup and the insert.
		existing, ferr := s.repo.FindByName(ctx, genre.Name)
		if ferr != nil {
			return genre, nil, ferr
		}
		return existing, nil, nil
	}
	if err != nil {
		return genre, nil, err
	}
	return created, nil, nil
}

func (s *genreService) Update(ctx context.Context, id uuid.UUID, in *model.GenreInput) (*model.Genre, form.Errors, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	errs := in.Validate()
	genre := in.ToEntity(id)
	genre.CreatedAt = existing.CreatedAt
	if !errs.Empty() {
		return genre, errs, nil
	}

	updated, err := s.repo.Update(ctx, genre, in.Version)
	if errors.Is(err, model.ErrDuplicateName) {
		errs.Add("name", duplicateNameMessage, genre.Name)
		return genre, errs, nil
	}
	if err != nil {
		return genre, nil, err
	}
	return updated, nil, nil
}

func (s *genreService) DeleteInfo(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	var (
		genre  *model.Genre
		movies []moviemodel.Movie
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.repo.FindByID(gctx, id)
		if errors.Is(err, model.ErrGenreNotFound) {
			return nil
		}
		genre = found
		return err
	})
	g.Go(func() (err error) {
		movies, err = s.movies.FindByGenre(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load genre for delete: %w", err)
	}

	if genre == nil {
		return &DeleteResult{Missing: true}, nil
	}
	return &DeleteResult{
		Genre:   genre,
		Movies:  movies,
		Blocked: len(movies) > 0,
	}, nil
}

func (s *genreService) Delete(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
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
	case errors.Is(err, model.ErrGenreNotFound):
		return &DeleteResult{Missing: true}, nil
	case errors.Is(err, model.ErrGenreHasMovies):
		movies, ferr := s.movies.FindByGenre(ctx, id)
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

func (s *genreService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
