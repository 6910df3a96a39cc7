package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"movie-catalog/internal/domains/director/model"
	"movie-catalog/internal/domains/director/service"
	"movie-catalog/internal/shared/form"
	"movie-catalog/internal/web"
)

const listPath = "/catalog/directors"

type DirectorHandler struct {
	service service.ServiceInterface
}

func NewDirectorHandler(svc service.ServiceInterface) *DirectorHandler {
	return &DirectorHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// READ: GET /catalog/directors, GET /catalog/director/:id
// ════════════════════════════════════════════════════════════════

func (h *DirectorHandler) List(c *gin.Context) {
	directors, err := h.service.List(c.Request.Context())
	if err != nil {
		web.ServerError(c, err)
		return
	}
	counts, err := h.service.MovieCounts(c.Request.Context(), directors)
	if err != nil {
		web.ServerError(c, err)
		return
	}

	web.Render(c, http.StatusOK, "director_list", gin.H{
		"title":       "Director List",
		"directors":   directors,
		"movieCounts": counts,
	})
}

func (h *DirectorHandler) Detail(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		web.NotFound(c, "Director")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrDirectorNotFound) {
			web.NotFound(c, "Director")
			return
		}
		web.ServerError(c, err)
		return
	}

	web.Render(c, http.StatusOK, "director_detail", gin.H{
		"title":    "Director Detail",
		"director": detail.Director,
		"movies":   detail.Movies,
	})
}

// ════════════════════════════════════════════════════════════════
// CREATE: GET|POST /catalog/director/create
// ════════════════════════════════════════════════════════════════

func (h *DirectorHandler) CreateForm(c *gin.Context) {
	renderForm(c, http.StatusOK, "Create Director", nil, nil)
}

func (h *DirectorHandler) Create(c *gin.Context) {
	var in model.DirectorInput
	if err := c.ShouldBind(&in); err != nil {
		web.Error(c, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	d, errs, err := h.service.Create(c.Request.Context(), &in)
	if err != nil {
		web.ServerError(c, err)
		return
	}
	if !errs.Empty() {
		renderForm(c, http.StatusOK, "Create Director", d, errs)
		return
	}

	c.Redirect(http.StatusFound, d.URL())
}

// ════════════════════════════════════════════════════════════════
// UPDATE: GET|POST /catalog/director/:id/update
// ════════════════════════════════════════════════════════════════

func (h *DirectorHandler) UpdateForm(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		web.NotFound(c, "Director")
		return
	}

	d, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrDirectorNotFound) {
			web.NotFound(c, "Director")
			return
		}
		web.ServerError(c, err)
		return
	}

	renderForm(c, http.StatusOK, "Update Director", d, nil)
}

func (h *DirectorHandler) Update(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		web.NotFound(c, "Director")
		return
	}

	var in model.DirectorInput
	if err := c.ShouldBind(&in); err != nil {
		web.Error(c, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	d, errs, err := h.service.Update(c.Request.Context(), id, &in)
	switch {
	case errors.Is(err, model.ErrDirectorNotFound):
		web.NotFound(c, "Director")
		return
	case errors.Is(err, model.ErrVersionConflict):
		errs.Add("version", err.Error(), "")
		renderForm(c, http.StatusConflict, "Update Director", d, errs)
		return
	case err != nil:
		web.ServerError(c, err)
		return
	}
	if !errs.Empty() {
		renderForm(c, http.StatusOK, "Update Director", d, errs)
		return
	}

	c.Redirect(http.StatusFound, d.URL())
}

// ════════════════════════════════════════════════════════════════
// DELETE: GET|POST /catalog/director/:id/delete
// ════════════════════════════════════════════════════════════════

func (h *DirectorHandler) DeleteForm(c *gin.Context) {
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

func (h *DirectorHandler) Delete(c *gin.Context) {
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

func renderForm(c *gin.Context, status int, title string, d *model.Director, errs form.Errors) {
	web.Render(c, status, "director_form", gin.H{
		"title":    title,
		"director": d,
		"errors":   errs,
	})
}

func renderDelete(c *gin.Context, res *service.DeleteResult) {
	web.Render(c, http.StatusOK, "director_delete", gin.H{
		"title":    "Delete Director",
		"director": res.Director,
		"movies":   res.Movies,
	})
}
