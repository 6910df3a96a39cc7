// Command seed loads a sample catalog of genres, directors and movies into
// the configured store.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"movie-catalog/internal/config"
	"movie-catalog/internal/seed"
	"movie-catalog/pkg/container"
	"movie-catalog/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	file := flag.String("file", "", "YAML catalog to load instead of the built-in sample")
	timeout := flag.Duration("timeout", time.Minute, "overall time limit")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		return 1
	}
	logger.Init(cfg.Log.Options())

	catalog, err := loadCatalog(*file)
	if err != nil {
		log.Error().Err(err).Msg("failed to read catalog")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c, err := container.New(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize container")
		return 1
	}
	defer c.Cleanup()

	seeder := seed.NewSeeder(c.DirectorService, c.MovieService, c.GenreService)
	res, err := seeder.Run(ctx, catalog)
	if err != nil {
		log.Error().Err(err).Msg("seeding failed")
		return 1
	}

	log.Info().
		Int("genres", res.Genres).
		Int("directors", res.Directors).
		Int("movies", res.Movies).
		Str("driver", cfg.Database.Driver).
		Msg("catalog seeded")
	return 0
}

func loadCatalog(path string) (*seed.Catalog, error) {
	if path == "" {
		return seed.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return seed.Decode(f)
}
