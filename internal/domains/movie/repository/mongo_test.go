package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-catalog/internal/domains/movie/model"
	"movie-catalog/internal/infrastructure/mongodb"
	"movie-catalog/internal/infrastructure/mongodb/mongodbtest"
)

func newMongoRepository(t *testing.T) RepositoryInterface {
	db := mongodbtest.Database(t)
	return NewMongoRepository(db.Collection(mongodb.MoviesCollection))
}

func TestMongoRepository_ReferenceQueries(t *testing.T) {
	repo := newMongoRepository(t)
	ctx := context.Background()

	kubrick, lynch := uuid.New(), uuid.New()
	drama, horror := uuid.New(), uuid.New()
	for _, m := range []model.Movie{
		{Title: "The Shining", Summary: "s", DirectorID: kubrick, GenreIDs: []uuid.UUID{horror, drama}},
		{Title: "Barry Lyndon", Summary: "s", DirectorID: kubrick, GenreIDs: []uuid.UUID{drama}},
		{Title: "Eraserhead", Summary: "s", DirectorID: lynch, GenreIDs: []uuid.UUID{horror}},
		{Title: "Dune", Summary: "s", DirectorID: lynch},
	} {
		_, err := repo.Create(ctx, &m)
		require.NoError(t, err)
	}

	byKubrick, err := repo.FindByDirector(ctx, kubrick)
	require.NoError(t, err)
	assert.Equal(t, []string{"Barry Lyndon", "The Shining"}, titles(byKubrick))

	byHorror, err := repo.FindByGenre(ctx, horror)
	require.NoError(t, err)
	assert.Equal(t, []string{"Eraserhead", "The Shining"}, titles(byHorror))

	n, err := repo.CountByDirector(ctx, lynch)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.CountByGenre(ctx, drama)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.CountByGenre(ctx, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, n)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Barry Lyndon", "Dune", "Eraserhead", "The Shining"}, titles(all))
	for _, m := range all {
		assert.NotNil(t, m.GenreIDs, m.Title)
	}
}

func TestMongoRepository_UpdateReplacesDocument(t *testing.T) {
	repo := newMongoRepository(t)
	ctx := context.Background()

	thriller := uuid.New()
	created, err := repo.Create(ctx, &model.Movie{Title: "Jaws", Summary: "Shark.", DirectorID: uuid.New(), GenreIDs: []uuid.UUID{thriller}})
	require.NoError(t, err)

	replacement := model.Movie{ID: created.ID, Title: "Jaws", Summary: "A great white.", DirectorID: created.DirectorID}
	updated, err := repo.Update(ctx, &replacement, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A great white.", found.Summary)
	assert.Empty(t, found.GenreIDs)

	_, err = repo.Update(ctx, &replacement, 1)
	assert.ErrorIs(t, err, model.ErrVersionConflict)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrMovieNotFound)
}
