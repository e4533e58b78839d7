// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with: a message, and
// on success either a payload or a counted collection.
type Response struct {
	Message string      `json:"message"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Message: message, Data: data})
}

func CreatedResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{Message: message, Data: data})
}

func ListResponse(c *gin.Context, message string, count int, data interface{}) {
	c.JSON(http.StatusOK, Response{Message: message, Count: &count, Data: data})
}

func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Message: message})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{Message: message})
}

// ErrorResponseWithDetail carries the underlying error text alongside
// the message. Only used for 5xx responses outside production.
func ErrorResponseWithDetail(c *gin.Context, statusCode int, message, detail string) {
	c.JSON(statusCode, Response{Message: message, Error: detail})
}
