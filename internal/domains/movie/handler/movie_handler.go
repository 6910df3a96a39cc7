package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"movie-catalog/internal/domains/movie/model"
	"movie-catalog/internal/domains/movie/service"
	"movie-catalog/internal/shared/form"
	"movie-catalog/internal/web"
)

const listPath = "/catalog/movies"

type MovieHandler struct {
	service service.ServiceInterface
}

func NewMovieHandler(svc service.ServiceInterface) *MovieHandler {
	return &MovieHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// READ: GET /catalog/movies, GET /catalog/movie/:id
// ════════════════════════════════════════════════════════════════

func (h *MovieHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		web.ServerError(c, err)
		return
	}

	web.Render(c, http.StatusOK, "movie_list", gin.H{
		"title":  "Movie List",
		"movies": items,
	})
}

func (h *MovieHandler) Detail(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		web.NotFound(c, "Movie")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrMovieNotFound) {
			web.NotFound(c, "Movie")
			return
		}
		web.ServerError(c, err)
		return
	}

	web.Render(c, http.StatusOK, "movie_detail", gin.H{
		"title":    detail.Movie.Title,
		"movie":    detail.Movie,
		"director": detail.Director,
		"genres":   detail.Genres,
	})
}

// ════════════════════════════════════════════════════════════════
// CREATE: GET|POST /catalog/movie/create
// ════════════════════════════════════════════════════════════════

func (h *MovieHandler) CreateForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "Create Movie", nil, nil)
}

func (h *MovieHandler) Create(c *gin.Context) {
	var in model.MovieInput
	if err := c.ShouldBind(&in); err != nil {
		web.Error(c, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	m, errs, err := h.service.Create(c.Request.Context(), &in)
	if errors.Is(err, model.ErrDirectorUnknown) {
		errs.Add("director", "Director must be a valid selection.", in.Director)
		err = nil
	}
	if err != nil {
		web.ServerError(c, err)
		return
	}
	if !errs.Empty() {
		h.renderForm(c, http.StatusOK, "Create Movie", m, errs)
		return
	}

	c.Redirect(http.StatusFound, m.URL())
}

// ════════════════════════════════════════════════════════════════
// UPDATE: GET|POST /catalog/movie/:id/update
// ════════════════════════════════════════════════════════════════

func (h *MovieHandler) UpdateForm(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		web.NotFound(c, "Movie")
		return
	}

	m, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrMovieNotFound) {
			web.NotFound(c, "Movie")
			return
		}
		web.ServerError(c, err)
		return
	}

	h.renderForm(c, http.StatusOK, "Update Movie", m, nil)
}

func (h *MovieHandler) Update(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		web.NotFound(c, "Movie")
		return
	}

	var in model.MovieInput
	if err := c.ShouldBind(&in); err != nil {
		web.Error(c, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	m, errs, err := h.service.Update(c.Request.Context(), id, &in)
	status := http.StatusOK
	switch {
	case errors.Is(err, model.ErrMovieNotFound):
		web.NotFound(c, "Movie")
		return
	case errors.Is(err, model.ErrDirectorUnknown):
		errs.Add("director", "Director must be a valid selection.", in.Director)
	case errors.Is(err, model.ErrVersionConflict):
		errs.Add("version", err.Error(), "")
		status = http.StatusConflict
	case err != nil:
		web.ServerError(c, err)
		return
	}
	if !errs.Empty() {
		h.renderForm(c, status, "Update Movie", m, errs)
		return
	}

	c.Redirect(http.StatusFound, m.URL())
}

// ════════════════════════════════════════════════════════════════
// DELETE: GET|POST /catalog/movie/:id/delete
// ════════════════════════════════════════════════════════════════

func (h *MovieHandler) DeleteForm(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, listPath)
		return
	}

	m, err := h.service.Get(c.Request.Context(), id)
	if errors.Is(err, model.ErrMovieNotFound) {
		c.Redirect(http.StatusFound, listPath)
		return
	}
	if err != nil {
		web.ServerError(c, err)
		return
	}

	web.Render(c, http.StatusOK, "movie_delete", gin.H{
		"title": "Delete Movie",
		"movie": m,
	})
}

func (h *MovieHandler) Delete(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, listPath)
		return
	}

	if _, err := h.service.Delete(c.Request.Context(), id); err != nil {
		web.ServerError(c, err)
		return
	}

	c.Redirect(http.StatusFound, listPath)
}

// renderForm loads the director and genre choices and renders the movie form.
func (h *MovieHandler) renderForm(c *gin.Context, status int, title string, m *model.Movie, errs form.Errors) {
	opts, err := h.service.FormOptions(c.Request.Context())
	if err != nil {
		web.ServerError(c, err)
		return
	}

	web.Render(c, status, "movie_form", gin.H{
		"title":     title,
		"movie":     m,
		"directors": opts.Directors,
		"genres":    opts.Genres,
		"errors":    errs,
	})
}
