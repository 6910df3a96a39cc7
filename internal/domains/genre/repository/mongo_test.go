package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-catalog/internal/domains/genre/model"
	"movie-catalog/internal/infrastructure/mongodb"
	"movie-catalog/internal/infrastructure/mongodb/mongodbtest"
)

func newMongoRepository(t *testing.T) RepositoryInterface {
	db := mongodbtest.Database(t)
	return NewMongoRepository(db.Collection(mongodb.GenresCollection))
}

func TestMongoRepository_NameIsUniqueIgnoringCase(t *testing.T) {
	repo := newMongoRepository(t)
	ctx := context.Background()

	western, err := repo.Create(ctx, &model.Genre{Name: "Western"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &model.Genre{Name: "WESTERN"})
	assert.ErrorIs(t, err, model.ErrDuplicateName)

	found, err := repo.FindByName(ctx, "western")
	require.NoError(t, err)
	assert.Equal(t, western.ID, found.ID)

	_, err = repo.FindByName(ctx, "Musical")
	assert.ErrorIs(t, err, model.ErrGenreNotFound)
}

func TestMongoRepository_FindByIDs(t *testing.T) {
	repo := newMongoRepository(t)
	ctx := context.Background()

	var ids []uuid.UUID
	for _, name := range []string{"Thriller", "Horror", "Comedy"} {
		g, err := repo.Create(ctx, &model.Genre{Name: name})
		require.NoError(t, err)
		ids = append(ids, g.ID)
	}

	genres, err := repo.FindByIDs(ctx, []uuid.UUID{ids[0], ids[1], uuid.New()})
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Horror", genres[0].Name)
	assert.Equal(t, "Thriller", genres[1].Name)

	genres, err = repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, genres)
}

func TestMongoRepository_UpdateChecksVersion(t *testing.T) {
	repo := newMongoRepository(t)
	ctx := context.Background()

	drama, err := repo.Create(ctx, &model.Genre{Name: "Drama"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.Genre{Name: "Comedy"})
	require.NoError(t, err)

	renamed := *drama
	renamed.Name = "Melodrama"
	updated, err := repo.Update(ctx, &renamed, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)

	_, err = repo.Update(ctx, &renamed, 1)
	assert.ErrorIs(t, err, model.ErrVersionConflict)

	clash := *drama
	clash.Name = "comedy"
	_, err = repo.Update(ctx, &clash, 0)
	assert.ErrorIs(t, err, model.ErrDuplicateName)

	require.NoError(t, repo.Delete(ctx, drama.ID))
	assert.ErrorIs(t, repo.Delete(ctx, drama.ID), model.ErrGenreNotFound)
}
