package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"movie-catalog/internal/shared/middleware"
	"movie-catalog/internal/shared/response"
	"movie-catalog/internal/web"
	"movie-catalog/pkg/container"
)

func SetupRouter(c *container.Container) (*gin.Engine, error) {
	router := gin.New()

	if err := web.Load(router); err != nil {
		return nil, err
	}

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/catalog")
	})

	catalog := router.Group("/catalog")
	if c.Config.Security.CSRFEnabled {
		catalog.Use(middleware.CSRF(c.CSRFTokens, c.Config.Security.SecureCookie))
	}
	{
		catalog.GET("", c.CatalogHandler.Index)

		setupDirectorPages(catalog, c)
		setupMoviePages(catalog, c)
		setupGenrePages(catalog, c)
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))
		v1.GET("/catalog", c.CatalogHandler.APICounts)

		setupDirectorRoutes(v1, c)
		setupMovieRoutes(v1, c)
		setupGenreRoutes(v1, c)
	}

	router.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			response.NotFound(ctx, "Route not found")
			return
		}
		web.NotFound(ctx, "Page")
	})

	return router, nil
}

// ========================================
// HTML PAGES
// ========================================
func setupDirectorPages(catalog *gin.RouterGroup, c *container.Container) {
	h := c.DirectorHandler
	catalog.GET("/directors", h.List)
	catalog.GET("/director/create", h.CreateForm)
	catalog.POST("/director/create", h.Create)
	catalog.GET("/director/:id", h.Detail)
	catalog.GET("/director/:id/update", h.UpdateForm)
	catalog.POST("/director/:id/update", h.Update)
	catalog.GET("/director/:id/delete", h.DeleteForm)
	catalog.POST("/director/:id/delete", h.Delete)
}

func setupMoviePages(catalog *gin.RouterGroup, c *container.Container) {
	h := c.MovieHandler
	catalog.GET("/movies", h.List)
	catalog.GET("/movie/create", h.CreateForm)
	catalog.POST("/movie/create", h.Create)
	catalog.GET("/movie/:id", h.Detail)
	catalog.GET("/movie/:id/update", h.UpdateForm)
	catalog.POST("/movie/:id/update", h.Update)
	catalog.GET("/movie/:id/delete", h.DeleteForm)
	catalog.POST("/movie/:id/delete", h.Delete)
}

func setupGenrePages(catalog *gin.RouterGroup, c *container.Container) {
	h := c.GenreHandler
	catalog.GET("/genres", h.List)
	catalog.GET("/genre/create", h.CreateForm)
	catalog.POST("/genre/create", h.Create)
	catalog.GET("/genre/:id", h.Detail)
	catalog.GET("/genre/:id/update", h.UpdateForm)
	catalog.POST("/genre/:id/update", h.Update)
	catalog.GET("/genre/:id/delete", h.DeleteForm)
	catalog.POST("/genre/:id/delete", h.Delete)
}

// ========================================
// JSON API
// ========================================
func setupDirectorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	directors := v1.Group("/directors")
	{
		directors.GET("", c.DirectorHandler.APIList)
		directors.POST("", c.DirectorHandler.APICreate)
		directors.GET("/:id", c.DirectorHandler.APIGet)
		directors.PUT("/:id", c.DirectorHandler.APIUpdate)
		directors.DELETE("/:id", c.DirectorHandler.APIDelete)
	}
}

func setupMovieRoutes(v1 *gin.RouterGroup, c *container.Container) {
	movies := v1.Group("/movies")
	{
		movies.GET("", c.MovieHandler.APIList)
		movies.POST("", c.MovieHandler.APICreate)
		movies.GET("/:id", c.MovieHandler.APIGet)
		movies.PUT("/:id", c.MovieHandler.APIUpdate)
		movies.DELETE("/:id", c.MovieHandler.APIDelete)
	}
}

func setupGenreRoutes(v1 *gin.RouterGroup, c *container.Container) {
	genres := v1.Group("/genres")
	{
		genres.GET("", c.GenreHandler.APIList)
		genres.POST("", c.GenreHandler.APICreate)
		genres.GET("/:id", c.GenreHandler.APIGet)
		genres.PUT("/:id", c.GenreHandler.APIUpdate)
		genres.DELETE("/:id", c.GenreHandler.APIDelete)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		storeStatus := "ok"
		store := gin.H{"driver": appCtx.Config.Database.Driver}
		switch {
		case appCtx.DB != nil:
			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				storeStatus = "error: " + err.Error()
			}
			if stats, err := appCtx.DB.Stats(); err == nil {
				store["pool"] = stats
			}
		case appCtx.Mongo != nil:
			if err := appCtx.Mongo.HealthCheck(ctx); err != nil {
				storeStatus = "error: " + err.Error()
			}
		}
		store["status"] = storeStatus

		cacheStatus := "disabled"
		if appCtx.Redis != nil {
			cacheStatus = "ok"
			if err := appCtx.Redis.HealthCheck(ctx); err != nil {
				cacheStatus = "error: " + err.Error()
				health["status"] = "degraded"
			}
		}

		health["services"] = gin.H{
			"store": store,
			"cache": cacheStatus,
		}

		statusCode := http.StatusOK
		if storeStatus != "ok" {
			health["status"] = "unavailable"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
