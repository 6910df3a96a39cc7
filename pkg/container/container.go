package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"movie-catalog/internal/config"
	infraCache "movie-catalog/internal/infrastructure/cache"
	"movie-catalog/internal/infrastructure/database"
	"movie-catalog/internal/infrastructure/mongodb"
	"movie-catalog/pkg/cache"
	"movie-catalog/pkg/jwt"

	catalogHandler "movie-catalog/internal/domains/catalog/handler"
	catalogService "movie-catalog/internal/domains/catalog/service"
	directorHandler "movie-catalog/internal/domains/director/handler"
	directorRepo "movie-catalog/internal/domains/director/repository"
	directorService "movie-catalog/internal/domains/director/service"
	genreHandler "movie-catalog/internal/domains/genre/handler"
	genreRepo "movie-catalog/internal/domains/genre/repository"
	genreService "movie-catalog/internal/domains/genre/service"
	movieHandler "movie-catalog/internal/domains/movie/handler"
	movieRepo "movie-catalog/internal/domains/movie/repository"
	movieService "movie-catalog/internal/domains/movie/service"
)

// Container is the root of the dependency graph. Build order is config,
// infrastructure, repositories, services, handlers.
type Container struct {
	// Infrastructure. Only the store selected by Config.Database.Driver is
	// set; Redis is set when enabled and reachable.
	Config     *config.Config
	DB         *database.PostgresDB
	Mongo      *mongodb.MongoDB
	Redis      *infraCache.RedisClient
	Cache      cache.Cache
	CSRFTokens *jwt.Manager

	// Repositories
	DirectorRepo directorRepo.RepositoryInterface
	MovieRepo    movieRepo.RepositoryInterface
	GenreRepo    genreRepo.RepositoryInterface

	// Services
	DirectorService directorService.ServiceInterface
	MovieService    movieService.ServiceInterface
	GenreService    genreService.ServiceInterface
	CatalogService  catalogService.ServiceInterface

	// Handlers
	DirectorHandler *directorHandler.DirectorHandler
	MovieHandler    *movieHandler.MovieHandler
	GenreHandler    *genreHandler.GenreHandler
	CatalogHandler  *catalogHandler.CatalogHandler
}

// New builds the container for cfg. On error, everything opened so far is
// closed again.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	log.Info().Str("driver", cfg.Database.Driver).Str("env", cfg.App.Environment).Msg("initializing container")

	if err := c.initStore(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}
	c.initCache(ctx)
	c.CSRFTokens = jwt.NewManager(cfg.Security.CSRFSecret, cfg.Security.CSRFTokenTTL)

	c.initServices()
	c.initHandlers()

	log.Info().Msg("container initialized")
	return c, nil
}

// initStore connects the configured store and builds the repositories on it.
func (c *Container) initStore(ctx context.Context) error {
	switch c.Config.Database.Driver {
	case config.DriverPostgres:
		dbConfig, err := config.LoadDatabaseConfig()
		if err != nil {
			return fmt.Errorf("failed to load database config: %w", err)
		}

		db := database.NewPostgresDB(dbConfig)
		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db

		if c.Config.Database.Migrate {
			if err := database.MigrateTx(ctx, db.Pool); err != nil {
				return err
			}
		}

		c.DirectorRepo = directorRepo.NewPostgresRepository(db.Pool)
		c.MovieRepo = movieRepo.NewPostgresRepository(db.Pool)
		c.GenreRepo = genreRepo.NewPostgresRepository(db.Pool)

	case config.DriverMongo:
		m := mongodb.NewMongoDB(&mongodb.Config{
			URI:      c.Config.Mongo.URI,
			Database: c.Config.Mongo.Database,
			Timeout:  c.Config.Mongo.Timeout,
		})
		if err := m.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to mongodb: %w", err)
		}
		c.Mongo = m

		if c.Config.Database.Migrate {
			if err := m.EnsureIndexes(ctx); err != nil {
				return err
			}
		}

		c.DirectorRepo = directorRepo.NewMongoRepository(m.Collection(mongodb.DirectorsCollection))
		c.MovieRepo = movieRepo.NewMongoRepository(m.Collection(mongodb.MoviesCollection))
		c.GenreRepo = genreRepo.NewMongoRepository(m.Collection(mongodb.GenresCollection))

	case config.DriverMemory:
		c.DirectorRepo = directorRepo.NewMemoryRepository()
		c.MovieRepo = movieRepo.NewMemoryRepository()
		c.GenreRepo = genreRepo.NewMemoryRepository()

	default:
		return fmt.Errorf("unknown store driver %q", c.Config.Database.Driver)
	}

	log.Info().Str("driver", c.Config.Database.Driver).Msg("store ready")
	return nil
}

// initCache wraps the director and movie repositories with the Redis cache.
// Redis being down is not fatal; the repositories are used uncached.
func (c *Container) initCache(ctx context.Context) {
	if !c.Config.Redis.Enabled {
		return
	}

	rc := infraCache.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, continuing without cache")
		_ = rc.Close()
		return
	}

	c.Redis = rc
	c.Cache = infraCache.NewRedisCache(rc.Client)
	c.DirectorRepo = directorRepo.NewCachedRepository(c.DirectorRepo, c.Cache, c.Config.Redis.TTL)
	c.MovieRepo = movieRepo.NewCachedRepository(c.MovieRepo, c.Cache, c.Config.Redis.TTL)
}

func (c *Container) initServices() {
	c.DirectorService = directorService.NewDirectorService(c.DirectorRepo, c.MovieRepo)
	c.GenreService = genreService.NewGenreService(c.GenreRepo, c.MovieRepo)
	c.MovieService = movieService.NewMovieService(c.MovieRepo, c.DirectorRepo, c.GenreRepo)
	c.CatalogService = catalogService.NewCatalogService(c.MovieService, c.DirectorService, c.GenreService)
}

func (c *Container) initHandlers() {
	c.DirectorHandler = directorHandler.NewDirectorHandler(c.DirectorService)
	c.MovieHandler = movieHandler.NewMovieHandler(c.MovieService)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.CatalogHandler = catalogHandler.NewCatalogHandler(c.CatalogService)
}

// Cleanup closes every connection the container opened.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close postgres")
		}
	}

	if c.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Mongo.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to close mongodb")
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis")
		}
	}

	log.Info().Msg("container cleanup completed")
}
