package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-catalog/internal/domains/genre/model"
	"movie-catalog/internal/domains/genre/repository"
	moviemodel "movie-catalog/internal/domains/movie/model"
	movierepo "movie-catalog/internal/domains/movie/repository"
)

func newService() (ServiceInterface, repository.RepositoryInterface, movierepo.RepositoryInterface) {
	genres := repository.NewMemoryRepository()
	movies := movierepo.NewMemoryRepository()
	return NewGenreService(genres, movies), genres, movies
}

func TestCreate_Genre(t *testing.T) {
	svc, _, _ := newService()

	g, errs, err := svc.Create(context.Background(), &model.GenreInput{Name: "  Film Noir "})
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, "Film Noir", g.Name)
	assert.Equal(t, "/catalog/genre/"+g.ID.String(), g.URL())
}

func TestCreate_DuplicateReturnsExisting(t *testing.T) {
	svc, genres, _ := newService()
	ctx := context.Background()

	first, _, err := svc.Create(ctx, &model.GenreInput{Name: "Western"})
	require.NoError(t, err)

	second, errs, err := svc.Create(ctx, &model.GenreInput{Name: "western"})
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, first.ID, second.ID)

	n, err := genres.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCreate_NameLength(t *testing.T) {
	svc, genres, _ := newService()

	for _, name := range []string{"", "ab"} {
		_, errs, err := svc.Create(context.Background(), &model.GenreInput{Name: name})
		require.NoError(t, err)
		assert.Len(t, errs.For("name"), 1, name)
	}

	n, err := genres.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUpdate_DuplicateNameIsFormError(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	drama, _, err := svc.Create(ctx, &model.GenreInput{Name: "Drama"})
	require.NoError(t, err)
	_, _, err = svc.Create(ctx, &model.GenreInput{Name: "Comedy"})
	require.NoError(t, err)

	g, errs, err := svc.Update(ctx, drama.ID, &model.GenreInput{Name: "comedy"})
	require.NoError(t, err)
	assert.Equal(t, []string{duplicateNameMessage}, errs.For("name"))
	assert.Equal(t, drama.ID, g.ID)

	_, _, err = svc.Update(ctx, uuid.New(), &model.GenreInput{Name: "Horror"})
	assert.ErrorIs(t, err, model.ErrGenreNotFound)
}

func TestDelete_GenreGuard(t *testing.T) {
	svc, genres, movies := newService()
	ctx := context.Background()

	used, _, err := svc.Create(ctx, &model.GenreInput{Name: "Drama"})
	require.NoError(t, err)
	unused, _, err := svc.Create(ctx, &model.GenreInput{Name: "Musical"})
	require.NoError(t, err)

	_, err = movies.Create(ctx, &moviemodel.Movie{Title: "Heat", Summary: "Heist.", DirectorID: uuid.New(), GenreIDs: []uuid.UUID{used.ID}})
	require.NoError(t, err)

	res, err := svc.Delete(ctx, used.ID)
	require.NoError(t, err)
	assert.True(t, res.Blocked)
	assert.Len(t, res.Movies, 1)

	res, err = svc.Delete(ctx, unused.ID)
	require.NoError(t, err)
	assert.True(t, res.Deleted)

	res, err = svc.Delete(ctx, unused.ID)
	require.NoError(t, err)
	assert.True(t, res.Missing)

	n, err := genres.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestDetail_GenreMovies(t *testing.T) {
	svc, _, movies := newService()
	ctx := context.Background()

	g, _, err := svc.Create(ctx, &model.GenreInput{Name: "Crime"})
	require.NoError(t, err)
	_, err = movies.Create(ctx, &moviemodel.Movie{Title: "Heat", Summary: "Heist.", DirectorID: uuid.New(), GenreIDs: []uuid.UUID{g.ID}})
	require.NoError(t, err)

	detail, err := svc.Detail(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Crime", detail.Genre.Name)
	assert.Len(t, detail.Movies, 1)
}

func TestMovieCounts(t *testing.T) {
	svc, genres, movies := newService()
	ctx := context.Background()
	drama, err := genres.Create(ctx, &model.Genre{Name: "Drama"})
	require.NoError(t, err)
	western, err := genres.Create(ctx, &model.Genre{Name: "Western"})
	require.NoError(t, err)
	_, err = movies.Create(ctx, &moviemodel.Movie{Title: "Unforgiven", Summary: "s", DirectorID: uuid.New(), GenreIDs: []uuid.UUID{drama.ID, western.ID}})
	require.NoError(t, err)
	_, err = movies.Create(ctx, &moviemodel.Movie{Title: "Amadeus", Summary: "s", DirectorID: uuid.New(), GenreIDs: []uuid.UUID{drama.ID}})
	require.NoError(t, err)

	counts, err := svc.MovieCounts(ctx, []model.Genre{*drama, *western})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[drama.ID])
	assert.Equal(t, int64(1), counts[western.ID])
}
