package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filmorate-backend/internal/domains/catalog/model"
	"filmorate-backend/internal/domains/catalog/service"
	"filmorate-backend/internal/shared/response"
	"filmorate-backend/pkg/apperr"
	"filmorate-backend/pkg/logger"
)

type CatalogHandler struct {
	service service.ServiceInterface
}

func NewCatalogHandler(service service.ServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// GetAllGenres handles GET /genres.
func (h *CatalogHandler) GetAllGenres(c *gin.Context) {
	genres, err := h.service.GetAllGenres(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if genres == nil {
		genres = []model.Genre{}
	}
	response.OK(c, genres)
}

// GetGenreByID handles GET /genres/:id.
func (h *CatalogHandler) GetGenreByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	genre, err := h.service.GetGenreByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, genre)
}

// GetAllRatings handles GET /mpa.
func (h *CatalogHandler) GetAllRatings(c *gin.Context) {
	ratings, err := h.service.GetAllRatings(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if ratings == nil {
		ratings = []model.MpaRating{}
	}
	response.OK(c, ratings)
}

// GetRatingByID handles GET /mpa/:id.
func (h *CatalogHandler) GetRatingByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	rating, err := h.service.GetRatingByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, rating)
}

func (h *CatalogHandler) pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id must be an integer")
		return 0, false
	}
	return id, true
}

func (h *CatalogHandler) handleError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("catalog request failed", err)
	}
	response.Error(c, status, apperr.ClientMessage(err))
}
