package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"movie-catalog/internal/domains/director/model"
	moviemodel "movie-catalog/internal/domains/movie/model"
	"movie-catalog/internal/shared/response"
)

// GET /api/v1/directors
func (h *DirectorHandler) APIList(c *gin.Context) {
	directors, err := h.service.List(c.Request.Context())
	if err != nil {
		h.apiError(c, err)
		return
	}

	out := make([]*model.DirectorResponse, 0, len(directors))
	for _, d := range directors {
		out = append(out, d.ToResponse())
	}
	response.SuccessWithMeta(c, http.StatusOK, out, &response.Meta{Total: len(out)})
}

// GET /api/v1/directors/:id
func (h *DirectorHandler) APIGet(c *gin.Context) {
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

	response.Success(c, http.StatusOK, gin.H{
		"director": detail.Director.ToResponse(),
		"movies":   movieResponses(detail.Movies),
	})
}

// POST /api/v1/directors
func (h *DirectorHandler) APICreate(c *gin.Context) {
	var in model.DirectorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "Invalid JSON body")
		return
	}

	d, errs, err := h.service.Create(c.Request.Context(), &in)
	if err != nil {
		h.apiError(c, err)
		return
	}
	if !errs.Empty() {
		response.ValidationFailed(c, errs)
		return
	}

	c.Header("Location", d.URL())
	response.Success(c, http.StatusCreated, d.ToResponse())
}

// PUT /api/v1/directors/:id
func (h *DirectorHandler) APIUpdate(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		h.apiError(c, err)
		return
	}

	var in model.DirectorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "Invalid JSON body")
		return
	}

	d, errs, err := h.service.Update(c.Request.Context(), id, &in)
	if err != nil {
		h.apiError(c, err)
		return
	}
	if !errs.Empty() {
		response.ValidationFailed(c, errs)
		return
	}

	response.Success(c, http.StatusOK, d.ToResponse())
}

// DELETE /api/v1/directors/:id
func (h *DirectorHandler) APIDelete(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		response.NoContent(c)
		return
	}

	res, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.apiError(c, err)
		return
	}
	if res.Blocked {
		response.ErrorWithDetails(c, http.StatusConflict,
			model.ToErrorCode(model.ErrDirectorHasMovies),
			model.ErrDirectorHasMovies.Error(),
			gin.H{"movies": movieResponses(res.Movies)},
		)
		return
	}

	response.NoContent(c)
}

func (h *DirectorHandler) apiError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("director request failed")
		response.InternalServerError(c, "Internal server error")
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}

func movieResponses(movies []moviemodel.Movie) []*moviemodel.MovieResponse {
	out := make([]*moviemodel.MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.ToResponse())
	}
	return out
}
