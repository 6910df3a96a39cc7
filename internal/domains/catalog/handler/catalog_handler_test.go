package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-catalog/internal/domains/catalog/service"
	"movie-catalog/internal/web"
)

type stubCounts struct {
	counts *service.Counts
}

func (s stubCounts) Counts(context.Context) (*service.Counts, error) { return s.counts, nil }

func TestIndex_RendersCounts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewCatalogHandler(stubCounts{counts: &service.Counts{Movies: 12, Directors: 7, Genres: 4}})
	r := gin.New()
	require.NoError(t, web.Load(r))
	r.GET("/catalog", h.Index)
	r.GET("/api/v1/catalog", h.APICounts)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<strong>Movies:</strong> 12")
	assert.Contains(t, w.Body.String(), "<strong>Genres:</strong> 4")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"movies":12,"directors":7,"genres":4}}`, w.Body.String())
}
