package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-catalog/internal/domains/genre/model"
)

func seedGenres(t *testing.T, repo RepositoryInterface, names ...string) []*model.Genre {
	t.Helper()
	var out []*model.Genre
	for _, name := range names {
		g, err := repo.Create(context.Background(), &model.Genre{Name: name})
		require.NoError(t, err)
		out = append(out, g)
	}
	return out
}

func TestMemoryRepository_NamesAreUniqueIgnoringCase(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	seedGenres(t, repo, "Drama")

	_, err := repo.Create(ctx, &model.Genre{Name: "drama"})
	assert.ErrorIs(t, err, model.ErrDuplicateName)

	found, err := repo.FindByName(ctx, "DRAMA")
	require.NoError(t, err)
	assert.Equal(t, "Drama", found.Name)

	_, err = repo.FindByName(ctx, "Western")
	assert.ErrorIs(t, err, model.ErrGenreNotFound)
}

func TestMemoryRepository_FindByIDsSkipsUnknown(t *testing.T) {
	repo := NewMemoryRepository()
	genres := seedGenres(t, repo, "Thriller", "Comedy", "Action")

	found, err := repo.FindByIDs(context.Background(), []uuid.UUID{genres[0].ID, uuid.New(), genres[2].ID, genres[0].ID})
	require.NoError(t, err)

	require.Len(t, found, 2)
	assert.Equal(t, "Action", found[0].Name)
	assert.Equal(t, "Thriller", found[1].Name)

	none, err := repo.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemoryRepository_UpdateRenames(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	genres := seedGenres(t, repo, "Scifi", "Horror")

	updated, err := repo.Update(ctx, &model.Genre{ID: genres[0].ID, Name: "Science Fiction"}, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)

	_, err = repo.Update(ctx, &model.Genre{ID: genres[0].ID, Name: "horror"}, 0)
	assert.ErrorIs(t, err, model.ErrDuplicateName)

	_, err = repo.Update(ctx, &model.Genre{ID: genres[0].ID, Name: "Sci-Fi"}, 1)
	assert.ErrorIs(t, err, model.ErrVersionConflict)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Horror", all[0].Name)
	assert.Equal(t, "Science Fiction", all[1].Name)
}

func TestMemoryRepository_DeleteGenre(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	genres := seedGenres(t, repo, "Musical")

	require.NoError(t, repo.Delete(ctx, genres[0].ID))
	assert.ErrorIs(t, repo.Delete(ctx, genres[0].ID), model.ErrGenreNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
