package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filmorate-backend/internal/domains/user/model"
	"filmorate-backend/internal/domains/user/service"
	"filmorate-backend/internal/shared/response"
	"filmorate-backend/pkg/apperr"
	"filmorate-backend/pkg/logger"
)

// UserHandler translates HTTP requests into user service calls. It is
// stateless; all state lives behind the service.
type UserHandler struct {
	service service.ServiceInterface
}

func NewUserHandler(service service.ServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	user, ok := h.bindAndValidate(c)
	if !ok {
		return
	}

	created, err := h.service.Create(c.Request.Context(), *user)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, created)
}

// Update handles PUT /users. The target id is carried in the body.
func (h *UserHandler) Update(c *gin.Context) {
	user, ok := h.bindAndValidate(c)
	if !ok {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), *user)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, updated)
}

// GetAll handles GET /users.
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if users == nil {
		users = []model.User{}
	}
	response.OK(c, users)
}

// GetByID handles GET /users/:id.
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := h.pathInt(c, "id")
	if !ok {
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, user)
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
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

// AddFriend handles PUT /users/:id/friends/:friendId.
func (h *UserHandler) AddFriend(c *gin.Context) {
	userID, ok := h.pathInt(c, "id")
	if !ok {
		return
	}
	friendID, ok := h.pathInt(c, "friendId")
	if !ok {
		return
	}

	if err := h.service.AddFriend(c.Request.Context(), userID, friendID); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// RemoveFriend handles DELETE /users/:id/friends/:friendId.
func (h *UserHandler) RemoveFriend(c *gin.Context) {
	userID, ok := h.pathInt(c, "id")
	if !ok {
		return
	}
	friendID, ok := h.pathInt(c, "friendId")
	if !ok {
		return
	}

	if err := h.service.RemoveFriend(c.Request.Context(), userID, friendID); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// GetFriends handles GET /users/:id/friends.
func (h *UserHandler) GetFriends(c *gin.Context) {
	userID, ok := h.pathInt(c, "id")
	if !ok {
		return
	}

	friends, err := h.service.GetFriends(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if friends == nil {
		friends = []model.User{}
	}
	response.OK(c, friends)
}

// GetCommonFriends handles GET /users/:id/friends/common/:otherId.
func (h *UserHandler) GetCommonFriends(c *gin.Context) {
	userID, ok := h.pathInt(c, "id")
	if !ok {
		return
	}
	otherID, ok := h.pathInt(c, "otherId")
	if !ok {
		return
	}

	common, err := h.service.GetCommonFriends(c.Request.Context(), userID, otherID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if common == nil {
		common = []model.User{}
	}
	response.OK(c, common)
}

func (h *UserHandler) bindAndValidate(c *gin.Context) (*model.User, bool) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return nil, false
	}
	if err := user.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return nil, false
	}
	return &user, true
}

func (h *UserHandler) pathInt(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		response.BadRequest(c, name+" must be an integer")
		return 0, false
	}
	return value, true
}

func (h *UserHandler) handleError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("user request failed", err)
	}
	response.Error(c, status, apperr.ClientMessage(err))
}
