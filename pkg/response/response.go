package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 {"success":true}.
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, Resp{Success: true})
}

// Error sends status with {"error": message}.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Resp{Error: message})
}

// BadRequest sends 400 with message. Decoder errors are never echoed.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// InternalError sends 500 internal server error. The cause is never exposed.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, MessageInternalServerError)
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, MessageUnauthorized)
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, MessageForbidden)
}
