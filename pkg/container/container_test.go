package container

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-catalog/internal/config"
	directormodel "movie-catalog/internal/domains/director/model"
)

func memoryConfig() *config.Config {
	return &config.Config{
		App:      config.AppConfig{Environment: "test"},
		Database: config.DatabaseConfig{Driver: config.DriverMemory},
		Security: config.SecurityConfig{CSRFSecret: "test-secret", CSRFTokenTTL: time.Hour},
	}
}

func TestNew_MemoryStore(t *testing.T) {
	c, err := New(context.Background(), memoryConfig())
	require.NoError(t, err)
	defer c.Cleanup()

	assert.Nil(t, c.DB)
	assert.Nil(t, c.Mongo)
	assert.Nil(t, c.Cache)
	assert.NotNil(t, c.CSRFTokens)

	ctx := context.Background()
	_, errs, err := c.DirectorService.Create(ctx, &directormodel.DirectorInput{FirstName: "Steven", FamilyName: "Spielberg"})
	require.NoError(t, err)
	require.Empty(t, errs)

	counts, err := c.CatalogService.Counts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts.Directors)
	assert.Zero(t, counts.Movies)
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.Database.Driver = "sqlite"

	c, err := New(context.Background(), cfg)
	assert.Error(t, err)
	assert.Nil(t, c)
}
