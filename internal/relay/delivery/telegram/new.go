package telegram

import (
	"github.com/gin-gonic/gin"

	"time-vault-relay/internal/relay"
	pkgLog "time-vault-relay/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(
	l pkgLog.Logger,
	uc relay.UseCase,
	security SecurityConfig,
) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		security: newSecurityValidator(security),
	}
}
