package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"movie-catalog/internal/config"
	"movie-catalog/pkg/logger"
)

func main() {
	// .env is optional; real deployments use the process environment.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Init(cfg.Log.Options())
	if envErr != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	if err := Serve(cfg); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
