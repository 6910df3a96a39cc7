package config

import (
	"fmt"
	"strconv"
	"time"

	"movie-catalog/internal/infrastructure/database"
)

// strictEnv parses environment values and remembers the first malformed one.
type strictEnv struct {
	err error
}

func (p *strictEnv) integer(key, fallback string) int {
	v, err := strconv.Atoi(getEnv(key, fallback))
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
	}
	return v
}

func (p *strictEnv) duration(key, fallback string) time.Duration {
	v, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
	}
	return v
}

// LoadDatabaseConfig reads the Postgres pool settings. Unlike Load it fails
// on malformed values instead of falling back to defaults.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	var env strictEnv

	cfg := &database.DBConfig{
		Host:              getEnv("DB_HOST", "localhost"),
		Port:              env.integer("DB_PORT", "5432"),
		Username:          getEnv("DB_USER", "catalog"),
		Password:          getEnv("DB_PASSWORD", "secret"),
		DBName:            getEnv("DB_NAME", "movie_catalog"),
		SSLMode:           getEnv("DB_SSLMODE", "disable"),
		MaxConns:          int32(env.integer("DB_MAX_CONNECTIONS", "25")),
		MinConns:          int32(env.integer("DB_MIN_CONNECTIONS", "2")),
		MaxConnLifetime:   env.duration("DB_MAX_CONN_LIFETIME", "5m"),
		MaxConnIdleTime:   env.duration("DB_MAX_CONN_IDLE_TIME", "1m"),
		HealthCheckPeriod: env.duration("DB_HEALTH_CHECK_PERIOD", "1m"),
		MaxRetries:        env.integer("DB_MAX_RETRIES", "5"),
		RetryDelay:        env.duration("DB_RETRY_DELAY", "1s"),
		ConnectTimeout:    env.duration("DB_CONNECT_TIMEOUT", "10s"),
	}
	if env.err != nil {
		return nil, env.err
	}
	if cfg.MinConns > cfg.MaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNECTIONS (%d) exceeds DB_MAX_CONNECTIONS (%d)", cfg.MinConns, cfg.MaxConns)
	}
	return cfg, nil
}
