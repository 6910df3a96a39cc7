package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-catalog/internal/domains/genre/model"
	"movie-catalog/internal/domains/genre/repository"
	"movie-catalog/internal/domains/genre/service"
	moviemodel "movie-catalog/internal/domains/movie/model"
	movierepo "movie-catalog/internal/domains/movie/repository"
	"movie-catalog/internal/web"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router *gin.Engine
	genres repository.RepositoryInterface
	movies movierepo.RepositoryInterface
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()

	genres := repository.NewMemoryRepository()
	movies := movierepo.NewMemoryRepository()
	h := NewGenreHandler(service.NewGenreService(genres, movies))

	r := gin.New()
	require.NoError(t, web.Load(r))

	catalog := r.Group("/catalog")
	catalog.GET("/genres", h.List)
	catalog.POST("/genre/create", h.Create)
	catalog.GET("/genre/:id", h.Detail)
	catalog.POST("/genre/:id/update", h.Update)
	catalog.POST("/genre/:id/delete", h.Delete)

	api := r.Group("/api/v1/genres")
	api.POST("", h.APICreate)
	api.DELETE("/:id", h.APIDelete)

	return &testEnv{router: r, genres: genres, movies: movies}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postForm(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(req)
}

func TestCreate_DuplicateNameRedirectsToExisting(t *testing.T) {
	env := setupRouter(t)
	existing, err := env.genres.Create(context.Background(), &model.Genre{Name: "Fantasy"})
	require.NoError(t, err)

	w := env.postForm("/catalog/genre/create", url.Values{"name": {"fantasy"}})

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, existing.URL(), w.Header().Get("Location"))

	n, err := env.genres.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestCreate_ShortNameRedisplays(t *testing.T) {
	env := setupRouter(t)

	w := env.postForm("/catalog/genre/create", url.Values{"name": {"ab"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Genre name must be between 3 and 100 characters.")
}

func TestUpdate_DuplicateNameIsFormError(t *testing.T) {
	env := setupRouter(t)
	ctx := context.Background()
	_, err := env.genres.Create(ctx, &model.Genre{Name: "Fantasy"})
	require.NoError(t, err)
	horror, err := env.genres.Create(ctx, &model.Genre{Name: "Horror"})
	require.NoError(t, err)

	w := env.postForm(horror.URL()+"/update", url.Values{"name": {"FANTASY"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "A genre with this name already exists.")
}

func TestUpdate_MissingGenreIsNotFound(t *testing.T) {
	env := setupRouter(t)

	w := env.postForm("/catalog/genre/"+uuid.NewString()+"/update", url.Values{"name": {"Fantasy"}})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDelete_BlockedByMovie(t *testing.T) {
	env := setupRouter(t)
	ctx := context.Background()
	g, err := env.genres.Create(ctx, &model.Genre{Name: "Thriller"})
	require.NoError(t, err)
	_, err = env.movies.Create(ctx, &moviemodel.Movie{
		Title: "Jaws", Summary: "A shark.", DirectorID: uuid.New(), GenreIDs: []uuid.UUID{g.ID},
	})
	require.NoError(t, err)

	w := env.postForm(g.URL()+"/delete", url.Values{})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jaws")

	w = env.do(httptest.NewRequest(http.MethodDelete, "/api/v1/genres/"+g.ID.String(), nil))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "GENRE_HAS_MOVIES")
}

func TestDelete_Unreferenced(t *testing.T) {
	env := setupRouter(t)
	g, err := env.genres.Create(context.Background(), &model.Genre{Name: "Thriller"})
	require.NoError(t, err)

	w := env.postForm(g.URL()+"/delete", url.Values{})

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/catalog/genres", w.Header().Get("Location"))
	_, err = env.genres.FindByID(context.Background(), g.ID)
	assert.ErrorIs(t, err, model.ErrGenreNotFound)
}

func TestAPICreate(t *testing.T) {
	env := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/genres", strings.NewReader(`{"name":"Science Fiction"}`))
	req.Header.Set("Content-Type", "application/json")
	w := env.do(req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Science Fiction"`)
}

func TestList_ShowsMovieCounts(t *testing.T) {
	env := setupRouter(t)
	ctx := context.Background()
	noir, err := env.genres.Create(ctx, &model.Genre{Name: "Film Noir"})
	require.NoError(t, err)
	_, err = env.movies.Create(ctx, &moviemodel.Movie{Title: "Laura", Summary: "s", DirectorID: uuid.New(), GenreIDs: []uuid.UUID{noir.ID}})
	require.NoError(t, err)

	w := env.do(httptest.NewRequest(http.MethodGet, "/catalog/genres", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Film Noir</a> [movies: 1]")
}
