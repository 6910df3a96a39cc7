package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"movie-catalog/internal/domains/genre/model"
	"movie-catalog/internal/domains/genre/service"
	"movie-catalog/internal/shared/form"
	"movie-catalog/internal/web"
)

const listPath = "/catalog/genres"

type GenreHandler struct {
	service service.ServiceInterface
}

func NewGenreHandler(svc service.ServiceInterface) *GenreHandler {
	return &GenreHandler{
		service: svc,
	}
}

func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.service.List(c.Request.Context())
	if err != nil {
		web.ServerError(c, err)
		return
	}
	counts, err := h.service.MovieCounts(c.Request.Context(), genres)
	if err != nil {
		web.ServerError(c, err)
		return
	}

	web.Render(c, http.StatusOK, "genre_list", gin.H{
		"title":       "Genre List",
		"genres":      genres,
		"movieCounts": counts,
	})
}

func (h *GenreHandler) Detail(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		web.NotFound(c, "Genre")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrGenreNotFound) {
			web.NotFound(c, "Genre")
			return
		}
		web.ServerError(c, err)
		return
	}

	web.Render(c, http.StatusOK, "genre_detail", gin.H{
		"title":  "Genre Detail",
		"genre":  detail.Genre,
		"movies": detail.Movies,
	})
}

func (h *GenreHandler) CreateForm(c *gin.Context) {
	renderForm(c, http.StatusOK, "Create Genre", nil, nil)
}

// Create redirects to the existing genre when the name is already taken.
func (h *GenreHandler) Create(c *gin.Context) {
	var in model.GenreInput
	if err := c.ShouldBind(&in); err != nil {
		web.Error(c, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	g, errs, err := h.service.Create(c.Request.Context(), &in)
	if err != nil {
		web.ServerError(c, err)
		return
	}
	if !errs.Empty() {
		renderForm(c, http.StatusOK, "Create Genre", g, errs)
		return
	}

	c.Redirect(http.StatusFound, g.URL())
}

func (h *GenreHandler) UpdateForm(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		web.NotFound(c, "Genre")
		return
	}

	g, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrGenreNotFound) {
			web.NotFound(c, "Genre")
			return
		}
		web.ServerError(c, err)
		return
	}

	renderForm(c, http.StatusOK, "Update Genre", g, nil)
}

func (h *GenreHandler) Update(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		web.NotFound(c, "Genre")
		return
	}

	var in model.GenreInput
	if err := c.ShouldBind(&in); err != nil {
		web.Error(c, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	g, errs, err := h.service.Update(c.Request.Context(), id, &in)
	switch {
	case errors.Is(err, model.ErrGenreNotFound):
		web.NotFound(c, "Genre")
		return
	case errors.Is(err, model.ErrVersionConflict):
		errs.Add("version", err.Error(), "")
		renderForm(c, http.StatusConflict, "Update Genre", g, errs)
		return
	case err != nil:
		web.ServerError(c, err)
		return
	}
	if !errs.Empty() {
		renderForm(c, http.StatusOK, "Update Genre", g, errs)
		return
	}

	c.Redirect(http.StatusFound, g.URL())
}

func (h *GenreHandler) DeleteForm(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, listPath)
		return
	}

	res, err := h.service.DeleteInfo(c.Request.Context(), id)
	if err != nil {
		web.ServerError(c, err)
		return
	}
	if res.Missing {
		c.Redirect(http.StatusFound, listPath)
		return
	}

	renderDelete(c, res)
}

func (h *GenreHandler) Delete(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, listPath)
		return
	}

	res, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		web.ServerError(c, err)
		return
	}
	if res.Blocked {
		renderDelete(c, res)
		return
	}

	c.Redirect(http.StatusFound, listPath)
}

func renderForm(c *gin.Context, status int, title string, g *model.Genre, errs form.Errors) {
	web.Render(c, status, "genre_form", gin.H{
		"title":  title,
		"genre":  g,
		"errors": errs,
	})
}

func renderDelete(c *gin.Context, res *service.DeleteResult) {
	web.Render(c, http.StatusOK, "genre_delete", gin.H{
		"title":  "Delete Genre",
		"genre":  res.Genre,
		"movies": res.Movies,
	})
}
