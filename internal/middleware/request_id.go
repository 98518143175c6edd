package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"time-vault-relay/pkg/log"
)

// HeaderRequestID is echoed back on every response.
const HeaderRequestID = "X-Request-ID"

// NewRequestID returns a short correlation id.
func NewRequestID() string {
	return uuid.New().String()[:8]
}

// RequestID stores a fresh correlation id in the request context so that
// every log line for the request carries it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := NewRequestID()
		ctx := log.SetRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, id)

		start := time.Now()
		c.Next()

		m.l.Debugf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
