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

	directormodel "movie-catalog/internal/domains/director/model"
	directorrepo "movie-catalog/internal/domains/director/repository"
	genremodel "movie-catalog/internal/domains/genre/model"
	genrerepo "movie-catalog/internal/domains/genre/repository"
	"movie-catalog/internal/domains/movie/model"
	"movie-catalog/internal/domains/movie/repository"
	"movie-catalog/internal/domains/movie/service"
	"movie-catalog/internal/web"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router    *gin.Engine
	movies    repository.RepositoryInterface
	directors directorrepo.RepositoryInterface
	genres    genrerepo.RepositoryInterface
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		movies:    repository.NewMemoryRepository(),
		directors: directorrepo.NewMemoryRepository(),
		genres:    genrerepo.NewMemoryRepository(),
	}
	h := NewMovieHandler(service.NewMovieService(env.movies, env.directors, env.genres))

	r := gin.New()
	require.NoError(t, web.Load(r))

	catalog := r.Group("/catalog")
	catalog.GET("/movies", h.List)
	catalog.GET("/movie/create", h.CreateForm)
	catalog.POST("/movie/create", h.Create)
	catalog.GET("/movie/:id", h.Detail)
	catalog.GET("/movie/:id/update", h.UpdateForm)
	catalog.POST("/movie/:id/update", h.Update)
	catalog.GET("/movie/:id/delete", h.DeleteForm)
	catalog.POST("/movie/:id/delete", h.Delete)

	api := r.Group("/api/v1/movies")
	api.GET("", h.APIList)
	api.POST("", h.APICreate)
	api.GET("/:id", h.APIGet)
	api.PUT("/:id", h.APIUpdate)
	api.DELETE("/:id", h.APIDelete)

	env.router = r
	return env
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

func (e *testEnv) seed(t *testing.T) (*directormodel.Director, *genremodel.Genre) {
	t.Helper()
	ctx := context.Background()
	d, err := e.directors.Create(ctx, &directormodel.Director{FirstName: "Steven", FamilyName: "Spielberg"})
	require.NoError(t, err)
	g, err := e.genres.Create(ctx, &genremodel.Genre{Name: "Thriller"})
	require.NoError(t, err)
	return d, g
}

func TestCreateForm_OffersDirectorsAndGenres(t *testing.T) {
	env := setupRouter(t)
	d, g := env.seed(t)

	w := env.do(httptest.NewRequest(http.MethodGet, "/catalog/movie/create", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), d.ID.String())
	assert.Contains(t, w.Body.String(), g.ID.String())
}

func TestCreate_StoresMovieWithGenres(t *testing.T) {
	env := setupRouter(t)
	d, g := env.seed(t)

	w := env.postForm("/catalog/movie/create", url.Values{
		"title":    {"Jaws"},
		"summary":  {"A shark."},
		"director": {d.ID.String()},
		"genre":    {g.ID.String()},
	})

	require.Equal(t, http.StatusFound, w.Code)

	all, err := env.movies.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, all[0].URL(), w.Header().Get("Location"))
	assert.Equal(t, []uuid.UUID{g.ID}, all[0].GenreIDs)
	assert.Equal(t, d.ID, all[0].DirectorID)
}

func TestCreate_InvalidKeepsSelections(t *testing.T) {
	env := setupRouter(t)
	d, g := env.seed(t)

	w := env.postForm("/catalog/movie/create", url.Values{
		"title":    {""},
		"summary":  {"A shark."},
		"director": {d.ID.String()},
		"genre":    {g.ID.String()},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Title must not be empty.")
	assert.Contains(t, body, " selected")
	assert.Contains(t, body, " checked")

	n, err := env.movies.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDetail_ShowsDirectorAndGenres(t *testing.T) {
	env := setupRouter(t)
	d, g := env.seed(t)
	m, err := env.movies.Create(context.Background(), &model.Movie{
		Title: "Jaws", Summary: "A shark.", DirectorID: d.ID, GenreIDs: []uuid.UUID{g.ID},
	})
	require.NoError(t, err)

	w := env.do(httptest.NewRequest(http.MethodGet, m.URL(), nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Spielberg, Steven")
	assert.Contains(t, w.Body.String(), "Thriller")
}

func TestUpdate_MissingMovieIsNotFound(t *testing.T) {
	env := setupRouter(t)
	d, _ := env.seed(t)

	w := env.postForm("/catalog/movie/"+uuid.NewString()+"/update", url.Values{
		"title":    {"Jaws"},
		"summary":  {"A shark."},
		"director": {d.ID.String()},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDelete_MissingMovieRedirects(t *testing.T) {
	env := setupRouter(t)

	w := env.postForm("/catalog/movie/"+uuid.NewString()+"/delete", url.Values{})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/catalog/movies", w.Header().Get("Location"))
}

func TestAPICreate_SingleGenreValue(t *testing.T) {
	env := setupRouter(t)
	d, g := env.seed(t)

	body := `{"title":"Jaws","summary":"A shark.","director":"` + d.ID.String() + `","genre":"` + g.ID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := env.do(req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), g.ID.String())
}

func TestAPICreate_InvalidGenre(t *testing.T) {
	env := setupRouter(t)
	d, _ := env.seed(t)

	body := `{"title":"Jaws","summary":"A shark.","director":"` + d.ID.String() + `","genre":["nope"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := env.do(req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid genre.")
}

func TestAPIList(t *testing.T) {
	env := setupRouter(t)
	d, _ := env.seed(t)
	_, err := env.movies.Create(context.Background(), &model.Movie{Title: "Jaws", Summary: "A shark.", DirectorID: d.ID})
	require.NoError(t, err)

	w := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"director_name":"Spielberg, Steven"`)
	assert.Contains(t, w.Body.String(), `"total":1`)
}
