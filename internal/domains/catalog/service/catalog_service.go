package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Counter is implemented by every domain service.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// Counts is the summary shown on the home page.
type Counts struct {
	Movies    int64 `json:"movies"`
	Directors int64 `json:"directors"`
	Genres    int64 `json:"genres"`
}

type ServiceInterface interface {
	Counts(ctx context.Context) (*Counts, error)
}

type catalogService struct {
	movies    Counter
	directors Counter
	genres    Counter
}

func NewCatalogService(movies, directors, genres Counter) ServiceInterface {
	return &catalogService{
		movies:    movies,
		directors: directors,
		genres:    genres,
	}
}

// Counts runs the three counts concurrently.
func (s *catalogService) Counts(ctx context.Context) (*Counts, error) {
	var out Counts

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Movies, err = s.movies.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Directors, err = s.directors.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Genres, err = s.genres.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("count catalog: %w", err)
	}
	return &out, nil
}
