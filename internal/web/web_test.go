package web

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	directormodel "movie-catalog/internal/domains/director/model"
	genremodel "movie-catalog/internal/domains/genre/model"
	moviemodel "movie-catalog/internal/domains/movie/model"
	"movie-catalog/internal/shared/form"
	"movie-catalog/internal/shared/middleware"
)

type listItem struct {
	Movie    moviemodel.Movie
	Director *directormodel.Director
}

func TestTemplates_EveryPageExecutes(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	director := &directormodel.Director{ID: uuid.New(), FirstName: "Steven", FamilyName: "Spielberg", Version: 2}
	genre := &genremodel.Genre{ID: uuid.New(), Name: "Thriller", Version: 1}
	movie := &moviemodel.Movie{ID: uuid.New(), Title: "Jaws", Summary: "A shark.", DirectorID: director.ID, GenreIDs: []uuid.UUID{genre.ID}}
	errs := form.Errors{{Field: "title", Message: "Title must not be empty."}}

	pages := map[string]map[string]any{
		"index":           {"counts": map[string]int{"Movies": 1, "Directors": 1, "Genres": 1}},
		"error":           {"message": "Director not found", "request_id": "abc"},
		"director_list":   {"directors": []directormodel.Director{*director}, "movieCounts": map[uuid.UUID]int64{director.ID: 3}},
		"director_detail": {"director": director, "movies": []moviemodel.Movie{*movie}},
		"director_form":   {"director": (*directormodel.Director)(nil), "errors": errs},
		"director_delete": {"director": director, "movies": []moviemodel.Movie{*movie}},
		"movie_list":      {"movies": []listItem{{Movie: *movie, Director: director}}},
		"movie_detail":    {"movie": movie, "director": director, "genres": []genremodel.Genre{*genre}},
		"movie_form":      {"movie": movie, "directors": []directormodel.Director{*director}, "genres": []genremodel.Genre{*genre}},
		"movie_delete":    {"movie": movie},
		"genre_list":      {"genres": []genremodel.Genre{*genre}, "movieCounts": map[uuid.UUID]int64{}},
		"genre_detail":    {"genre": genre, "movies": []moviemodel.Movie{}},
		"genre_form":      {"genre": genre, "errors": form.Errors(nil)},
		"genre_delete":    {"genre": genre},
	}

	for name, data := range pages {
		t.Run(name, func(t *testing.T) {
			data["title"] = name
			data["csrf"] = "token"
			var buf bytes.Buffer
			require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))
			assert.Contains(t, buf.String(), "</html>")
		})
	}
}

func TestTemplates_MovieFormMarksSelections(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	d1 := directormodel.Director{ID: uuid.New(), FirstName: "Steven", FamilyName: "Spielberg"}
	d2 := directormodel.Director{ID: uuid.New(), FirstName: "Stanley", FamilyName: "Kubrick"}
	g := genremodel.Genre{ID: uuid.New(), Name: "Thriller"}
	movie := &moviemodel.Movie{Title: "Jaws", DirectorID: d1.ID, GenreIDs: []uuid.UUID{g.ID}}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "movie_form", map[string]any{
		"movie":     movie,
		"directors": []directormodel.Director{d1, d2},
		"genres":    []genremodel.Genre{g},
	}))

	out := buf.String()
	assert.Contains(t, out, `<option value="`+d1.ID.String()+`" selected>`)
	assert.Contains(t, out, `<option value="`+d2.ID.String()+`">`)
	assert.Contains(t, out, `value="`+g.ID.String()+`" checked>`)
}

func TestTemplates_StoredTextIsNotEscapedTwice(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	genre := &genremodel.Genre{ID: uuid.New(), Name: form.Escape("Rock & Roll")}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "genre_detail", map[string]any{"genre": genre}))

	assert.Contains(t, buf.String(), "Rock &amp; Roll")
	assert.NotContains(t, buf.String(), "&amp;amp;")
}

func TestRender_AddsCSRFToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, Load(r))
	r.GET("/", func(c *gin.Context) {
		c.Set(middleware.CSRFTokenKey, "tok-123")
		Render(c, http.StatusOK, "genre_form", gin.H{"title": "Create Genre"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="_csrf" value="tok-123"`)
}

func TestNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, Load(r))
	r.GET("/", func(c *gin.Context) { NotFound(c, "Movie") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Movie not found")
}
