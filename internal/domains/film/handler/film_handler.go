package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filmorate-backend/internal/domains/film/model"
	"filmorate-backend/internal/domains/film/service"
	"filmorate-backend/internal/shared/response"
	"filmorate-backend/pkg/apperr"
	"filmorate-backend/pkg/logger"
)

// defaultPopularCount is used when GET /films/popular has no count query.
const defaultPopularCount = 10

type FilmHandler struct {
	service service.ServiceInterface
}

func NewFilmHandler(service service.ServiceInterface) *FilmHandler {
	return &FilmHandler{service: service}
}

// Create handles POST /films.
func (h *FilmHandler) Create(c *gin.Context) {
	film, ok := h.bindAndValidate(c)
	if !ok {
		return
	}

	created, err := h.service.Create(c.Request.Context(), *film)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, created)
}

// Update handles PUT /films. The target id is carried in the body.
func (h *FilmHandler) Update(c *gin.Context) {
	film, ok := h.bindAndValidate(c)
	if !ok {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), *film)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, updated)
}

// GetAll handles GET /films.
func (h *FilmHandler) GetAll(c *gin.Context) {
	films, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if films == nil {
		films = []model.Film{}
	}
	response.OK(c, films)
}

// GetByID handles GET /films/:id.
func (h *FilmHandler) GetByID(c *gin.Context) {
	id, ok := h.pathInt(c, "id")
	if !ok {
		return
	}

	film, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, film)
}

// Delete handles DELETE /films/:id.
func (h *FilmHandler) Delete(c *gin.Context) {
	id, ok := h.pathInt(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// AddLike handles PUT /films/:id/like/:userId.
func (h *FilmHandler) AddLike(c *gin.Context) {
	filmID, ok := h.pathInt(c, "id")
	if !ok {
		return
	}
	userID, ok := h.pathInt(c, "userId")
	if !ok {
		return
	}

	if err := h.service.AddLike(c.Request.Context(), filmID, userID); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// RemoveLike handles DELETE /films/:id/like/:userId.
func (h *FilmHandler) RemoveLike(c *gin.Context) {
	filmID, ok := h.pathInt(c, "id")
	if !ok {
		return
	}
	userID, ok := h.pathInt(c, "userId")
	if !ok {
		return
	}

	if err := h.service.RemoveLike(c.Request.Context(), filmID, userID); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// GetPopular handles GET /films/popular?count=N, defaulting to the top 10.
func (h *FilmHandler) GetPopular(c *gin.Context) {
	count := defaultPopularCount
	if raw, ok := c.GetQuery("count"); ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "count must be an integer")
			return
		}
		count = parsed
	}

	films, err := h.service.GetPopular(c.Request.Context(), count)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if films == nil {
		films = []model.Film{}
	}
	response.OK(c, films)
}

func (h *FilmHandler) bindAndValidate(c *gin.Context) (*model.Film, bool) {
	var film model.Film
	if err := c.ShouldBindJSON(&film); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return nil, false
	}
	if err := film.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return nil, false
	}
	return &film, true
}

func (h *FilmHandler) pathInt(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		response.BadRequest(c, name+" must be an integer")
		return 0, false
	}
	return value, true
}

func (h *FilmHandler) handleError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("film request failed", err)
	}
	response.Error(c, status, apperr.ClientMessage(err))
}
