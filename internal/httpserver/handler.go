package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"time-vault-relay/internal/metrics"
	"time-vault-relay/internal/model"
)

// Webhook routes. The second path is kept for deployments registered with it.
const (
	TelegramWebhookPath      = "/api/telegram/webhook"
	TelegramWebhookAliasPath = "/webhook/telegram"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/api/telegram/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(metrics.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	if srv.telegramHandler == nil {
		srv.l.Warnf(ctx, "Telegram handler not configured, skipping webhook route")
		return
	}

	srv.gin.POST(TelegramWebhookPath, srv.telegramHandler.HandleWebhook)
	srv.gin.POST(TelegramWebhookAliasPath, srv.telegramHandler.HandleWebhook)
	srv.l.Infof(ctx, "Telegram webhook route registered at POST %s (alias %s)", TelegramWebhookPath, TelegramWebhookAliasPath)
}
