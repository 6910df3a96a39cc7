package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"movie-catalog/internal/domains/movie/model"
	"movie-catalog/internal/shared/response"
)

type movieListResponse struct {
	*model.MovieResponse
	DirectorName string `json:"director_name,omitempty"`
}

// GET /api/v1/movies
func (h *MovieHandler) APIList(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.apiError(c, err)
		return
	}

	out := make([]movieListResponse, 0, len(items))
	for _, item := range items {
		row := movieListResponse{MovieResponse: item.Movie.ToResponse()}
		if item.Director != nil {
			row.DirectorName = item.Director.Name()
		}
		out = append(out, row)
	}
	response.SuccessWithMeta(c, http.StatusOK, out, &response.Meta{Total: len(out)})
}

// GET /api/v1/movies/:id
func (h *MovieHandler) APIGet(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		h.apiError(c, err)
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		h.apiError(c, err)
		return
	}

	data := gin.H{"movie": detail.Movie.ToResponse()}
	if detail.Director != nil {
		data["director"] = detail.Director.ToResponse()
	}
	genres := make([]any, 0, len(detail.Genres))
	for _, g := range detail.Genres {
		genres = append(genres, g.ToResponse())
	}
	data["genres"] = genres

	response.Success(c, http.StatusOK, data)
}

// POST /api/v1/movies
func (h *MovieHandler) APICreate(c *gin.Context) {
	var in model.MovieInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "Invalid JSON body")
		return
	}

	m, errs, err := h.service.Create(c.Request.Context(), &in)
	if err != nil {
		h.apiError(c, err)
		return
	}
	if !errs.Empty() {
		response.ValidationFailed(c, errs)
		return
	}

	c.Header("Location", m.URL())
	response.Success(c, http.StatusCreated, m.ToResponse())
}

// PUT /api/v1/movies/:id
func (h *MovieHandler) APIUpdate(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		h.apiError(c, err)
		return
	}

	var in model.MovieInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "Invalid JSON body")
		return
	}

	m, errs, err := h.service.Update(c.Request.Context(), id, &in)
	if err != nil {
		h.apiError(c, err)
		return
	}
	if !errs.Empty() {
		response.ValidationFailed(c, errs)
		return
	}

	response.Success(c, http.StatusOK, m.ToResponse())
}

// DELETE /api/v1/movies/:id
func (h *MovieHandler) APIDelete(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		response.NoContent(c)
		return
	}

	if _, err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.apiError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *MovieHandler) apiError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("movie request failed")
		response.InternalServerError(c, "Internal server error")
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
