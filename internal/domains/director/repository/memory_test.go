package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-catalog/internal/domains/director/model"
)

func date(s string) *time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return &t
}

func TestMemoryRepository_CreateAssignsIdentity(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Director{FirstName: "Steven", FamilyName: "Spielberg", DateOfBirth: date("1946-12-18")})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, 1, created.Version)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestMemoryRepository_FindByIDMissing(t *testing.T) {
	_, err := NewMemoryRepository().FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrDirectorNotFound)
}

func TestMemoryRepository_FindAllSortedByFamilyName(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for _, d := range []model.Director{
		{FirstName: "Quentin", FamilyName: "Tarantino"},
		{FirstName: "Sofia", FamilyName: "Coppola"},
		{FirstName: "Francis", FamilyName: "Coppola"},
		{FirstName: "Steven", FamilyName: "Spielberg"},
	} {
		_, err := repo.Create(ctx, &d)
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)

	var names []string
	for _, d := range all {
		names = append(names, d.Name())
	}
	assert.Equal(t, []string{"Coppola, Francis", "Coppola, Sofia", "Spielberg, Steven", "Tarantino, Quentin"}, names)
}

func TestMemoryRepository_UpdateReplacesWholeDocument(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Director{FirstName: "Stanley", FamilyName: "Kubrick", DateOfBirth: date("1928-07-26"), DateOfDeath: date("1999-03-07")})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, &model.Director{ID: created.ID, FirstName: "Stan", FamilyName: "Kubrick"}, 0)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Stan", updated.FirstName)
	assert.Nil(t, updated.DateOfBirth)
	assert.Nil(t, updated.DateOfDeath)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestMemoryRepository_UpdateVersionCheck(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Director{FirstName: "Greta", FamilyName: "Gerwig"})
	require.NoError(t, err)

	_, err = repo.Update(ctx, &model.Director{ID: created.ID, FirstName: "Greta", FamilyName: "Gerwig"}, 1)
	require.NoError(t, err)

	_, err = repo.Update(ctx, &model.Director{ID: created.ID, FirstName: "G", FamilyName: "Gerwig"}, 1)
	assert.ErrorIs(t, err, model.ErrVersionConflict)

	_, err = repo.Update(ctx, &model.Director{ID: uuid.New(), FirstName: "G", FamilyName: "Gerwig"}, 0)
	assert.ErrorIs(t, err, model.ErrDirectorNotFound)
}

func TestMemoryRepository_DeleteAndCount(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Director{FirstName: "Agnes", FamilyName: "Varda"})
	require.NoError(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), model.ErrDirectorNotFound)

	exists, err := repo.Exists(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
