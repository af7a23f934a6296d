package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the uniform error payload: a single message field.
type ErrorBody struct {
	Message string `json:"message"`
}

// JSON writes a success payload as-is.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// OK writes data with a 200 status.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// NoContent writes an empty 200 response for mutations without a body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusOK)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalServerError deliberately carries a generic message; internal
// details stay in the logs.
func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "an unexpected error occurred")
}
