package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"movie-catalog/internal/domains/catalog/service"
	"movie-catalog/internal/shared/response"
	"movie-catalog/internal/web"
)

type CatalogHandler struct {
	service service.ServiceInterface
}

func NewCatalogHandler(svc service.ServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// Index renders the home page with the record counts.
func (h *CatalogHandler) Index(c *gin.Context) {
	counts, err := h.service.Counts(c.Request.Context())
	if err != nil {
		web.ServerError(c, err)
		return
	}

	web.Render(c, http.StatusOK, "index", gin.H{
		"title":  "Movie Catalog Home",
		"counts": counts,
	})
}

// GET /api/v1/catalog
func (h *CatalogHandler) APICounts(c *gin.Context) {
	counts, err := h.service.Counts(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.InternalServerError(c, "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, counts)
}
