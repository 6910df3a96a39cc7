// Package seed loads a sample catalog through the domain services.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	directormodel "movie-catalog/internal/domains/director/model"
	directorservice "movie-catalog/internal/domains/director/service"
	genremodel "movie-catalog/internal/domains/genre/model"
	genreservice "movie-catalog/internal/domains/genre/service"
	moviemodel "movie-catalog/internal/domains/movie/model"
	movieservice "movie-catalog/internal/domains/movie/service"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Catalog struct {
	Genres    []Genre    `yaml:"genres"`
	Directors []Director `yaml:"directors"`
	Movies    []Movie    `yaml:"movies"`
}

type Genre struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

// Director dates are optional; missing and empty are the same.
type Director struct {
	Key         string `yaml:"key"`
	FirstName   string `yaml:"first_name"`
	FamilyName  string `yaml:"family_name"`
	DateOfBirth string `yaml:"date_of_birth"`
	DateOfDeath string `yaml:"date_of_death"`
}

// Movie references its director and genres by key.
type Movie struct {
	Title    string   `yaml:"title"`
	Summary  string   `yaml:"summary"`
	Director string   `yaml:"director"`
	Genres   []string `yaml:"genres"`
}

// Default returns the embedded sample catalog.
func Default() (*Catalog, error) {
	return Decode(bytes.NewReader(defaultCatalog))
}

// Decode reads a YAML catalog, rejecting unknown keys.
func Decode(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &c, nil
}

// Result reports how many records were saved.
type Result struct {
	Genres    int
	Directors int
	Movies    int
}

// Keys maps a catalog key to the identifier the store assigned.
type Keys map[string]uuid.UUID

func (k Keys) resolve(kind, key string) (uuid.UUID, error) {
	id, ok := k[key]
	if !ok {
		return uuid.Nil, fmt.Errorf("unknown %s key %q", kind, key)
	}
	return id, nil
}

type Seeder struct {
	directors directorservice.ServiceInterface
	movies    movieservice.ServiceInterface
	genres    genreservice.ServiceInterface
}

func NewSeeder(
	directors directorservice.ServiceInterface,
	movies movieservice.ServiceInterface,
	genres genreservice.ServiceInterface,
) *Seeder {
	return &Seeder{directors: directors, movies: movies, genres: genres}
}

// Run saves genres, then directors, then movies. Records of one kind are
// saved concurrently; a kind starts once the previous one is complete so
// its keys can be resolved.
func (s *Seeder) Run(ctx context.Context, c *Catalog) (*Result, error) {
	genreKeys, err := s.saveGenres(ctx, c.Genres)
	if err != nil {
		return nil, err
	}

	directorKeys, err := s.saveDirectors(ctx, c.Directors)
	if err != nil {
		return nil, err
	}

	if err := s.saveMovies(ctx, c.Movies, directorKeys, genreKeys); err != nil {
		return nil, err
	}

	return &Result{
		Genres:    len(c.Genres),
		Directors: len(c.Directors),
		Movies:    len(c.Movies),
	}, nil
}

func (s *Seeder) saveGenres(ctx context.Context, genres []Genre) (Keys, error) {
	if err := uniqueKeys("genre", len(genres), func(i int) string { return genres[i].Key }); err != nil {
		return nil, err
	}

	keys := make(Keys, len(genres))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, item := range genres {
		g.Go(func() error {
			saved, errs, err := s.genres.Create(gctx, &genremodel.GenreInput{Name: item.Name})
			if err != nil {
				return fmt.Errorf("genre %q: %w", item.Key, err)
			}
			if !errs.Empty() {
				return fmt.Errorf("genre %q: %s", item.Key, errs)
			}

			mu.Lock()
			keys[item.Key] = saved.ID
			mu.Unlock()
			log.Ctx(ctx).Info().Str("name", item.Name).Msg("added genre")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *Seeder) saveDirectors(ctx context.Context, directors []Director) (Keys, error) {
	if err := uniqueKeys("director", len(directors), func(i int) string { return directors[i].Key }); err != nil {
		return nil, err
	}

	keys := make(Keys, len(directors))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, item := range directors {
		g.Go(func() error {
			saved, errs, err := s.directors.Create(gctx, &directormodel.DirectorInput{
				FirstName:   item.FirstName,
				FamilyName:  item.FamilyName,
				DateOfBirth: item.DateOfBirth,
				DateOfDeath: item.DateOfDeath,
			})
			if err != nil {
				return fmt.Errorf("director %q: %w", item.Key, err)
			}
			if !errs.Empty() {
				return fmt.Errorf("director %q: %s", item.Key, errs)
			}

			mu.Lock()
			keys[item.Key] = saved.ID
			mu.Unlock()
			log.Ctx(ctx).Info().Str("name", saved.Name()).Msg("added director")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *Seeder) saveMovies(ctx context.Context, movies []Movie, directors, genres Keys) error {
	inputs := make([]*moviemodel.MovieInput, 0, len(movies))
	for _, item := range movies {
		directorID, err := directors.resolve("director", item.Director)
		if err != nil {
			return fmt.Errorf("movie %q: %w", item.Title, err)
		}

		in := &moviemodel.MovieInput{
			Title:    item.Title,
			Summary:  item.Summary,
			Director: directorID.String(),
		}
		for _, key := range item.Genres {
			genreID, err := genres.resolve("genre", key)
			if err != nil {
				return fmt.Errorf("movie %q: %w", item.Title, err)
			}
			in.Genre = append(in.Genre, genreID.String())
		}
		inputs = append(inputs, in)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, in := range inputs {
		g.Go(func() error {
			title := in.Title
			_, errs, err := s.movies.Create(gctx, in)
			if err != nil {
				return fmt.Errorf("movie %q: %w", title, err)
			}
			if !errs.Empty() {
				return fmt.Errorf("movie %q: %s", title, errs)
			}
			log.Ctx(ctx).Info().Str("title", title).Msg("added movie")
			return nil
		})
	}
	return g.Wait()
}

func uniqueKeys(kind string, n int, key func(int) string) error {
	seen := make(map[string]struct{}, n)
	for i := range n {
		k := key(i)
		if k == "" {
			return fmt.Errorf("%s #%d has no key", kind, i+1)
		}
		if _, dup := seen[k]; dup {
			return fmt.Errorf("duplicate %s key %q", kind, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}
