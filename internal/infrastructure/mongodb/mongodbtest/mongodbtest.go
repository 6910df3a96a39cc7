// Package mongodbtest runs repository tests against a disposable MongoDB
// container.
package mongodbtest

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"

	"movie-catalog/internal/infrastructure/mongodb"
)

const image = "mongo:7"

var (
	startOnce sync.Once
	uri       string
	startErr  error
)

// Database connects to a fresh database on a container shared by the test
// binary, with the catalog indexes in place. The database is dropped when
// the test ends. Tests are skipped with -short or without a container
// runtime.
func Database(t *testing.T) *mongodb.MongoDB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MongoDB container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	startOnce.Do(func() {
		ctx := context.Background()
		container, err := tcmongo.Run(ctx, image)
		if err != nil {
			startErr = err
			return
		}
		uri, startErr = container.ConnectionString(ctx)
	})
	require.NoError(t, startErr)

	ctx := context.Background()
	db := mongodb.NewMongoDB(&mongodb.Config{
		URI:      uri,
		Database: "catalog_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Timeout:  10 * time.Second,
	})
	require.NoError(t, db.Connect(ctx))
	require.NoError(t, db.EnsureIndexes(ctx))

	t.Cleanup(func() {
		ctx := context.Background()
		_ = db.DB.Drop(ctx)
		_ = db.Close(ctx)
	})
	return db
}
