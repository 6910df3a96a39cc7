package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

const defaultCSRFSecret = "change-me-csrf-secret"

// Config holds the application configuration, populated from environment
// variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Log      LogConfig
	Security SecurityConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// DatabaseConfig selects the store. Postgres pool settings are loaded
// separately by LoadDatabaseConfig.
type DatabaseConfig struct {
	Driver  string
	Migrate bool
}

type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Password string
	DB       int
	TTL      time.Duration
}

type LogConfig struct {
	Level       string
	File        string
	MaxSizeMB   int
	MaxBackups  int
	MaxAgeDays  int
	Development bool
}

type SecurityConfig struct {
	CSRFEnabled  bool
	CSRFSecret   string
	CSRFTokenTTL time.Duration
	SecureCookie bool
}

func Load() (*Config, error) {
	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Movie Catalog"),
			Environment: env,
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Driver:  strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Migrate: getEnvBool("DB_MIGRATE", true),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DATABASE", "movie_catalog"),
			Timeout:  getEnvDuration("MONGO_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("REDIS_TTL", 5*time.Minute),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			File:        getEnv("LOG_FILE", ""),
			MaxSizeMB:   getEnvInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups:  getEnvInt("LOG_MAX_BACKUPS", 3),
			MaxAgeDays:  getEnvInt("LOG_MAX_AGE_DAYS", 28),
			Development: env == "development",
		},
		Security: SecurityConfig{
			CSRFEnabled:  getEnvBool("CSRF_ENABLED", true),
			CSRFSecret:   getEnv("CSRF_SECRET", defaultCSRFSecret),
			CSRFTokenTTL: getEnvDuration("CSRF_TOKEN_TTL", 2*time.Hour),
			SecureCookie: env == "production",
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q (want postgres, mongo or memory)", c.Database.Driver)
	}

	if c.Security.CSRFEnabled && c.Security.CSRFTokenTTL <= 0 {
		return fmt.Errorf("CSRF_TOKEN_TTL must be positive")
	}

	if c.App.Environment == "production" {
		if c.Security.CSRFSecret == defaultCSRFSecret {
			return fmt.Errorf("CSRF_SECRET must be set in production")
		}
		if c.Database.Driver == DriverMemory {
			return fmt.Errorf("the memory store is not allowed in production")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
