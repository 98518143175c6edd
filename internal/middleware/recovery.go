package middleware

import (
	"github.com/gin-gonic/gin"

	"time-vault-relay/pkg/response"
)

// Recovery converts a panic that escaped a handler into a 500.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				m.l.Errorf(c.Request.Context(), "middleware: recovered panic: %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
				if !c.Writer.Written() {
					response.InternalError(c)
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
