package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"time-vault-relay/config"
	_ "time-vault-relay/docs" // Swagger docs
	"time-vault-relay/internal/httpserver"
	tgDelivery "time-vault-relay/internal/relay/delivery/telegram"
	"time-vault-relay/internal/relay/usecase"
	"time-vault-relay/pkg/i18n"
	"time-vault-relay/pkg/log"
	"time-vault-relay/pkg/telegram"
)

// @title       Time Vault Relay API
// @description Telegram webhook that forwards media from allowed senders into a vault channel.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Time Vault Relay...")
	logger.Infof(ctx, "Environment: %s, version: %s, region: %s", cfg.Environment.Name, cfg.Environment.Version, cfg.Environment.Region)

	// 3. Localization
	if err := i18n.Validate(); err != nil {
		logger.Error(ctx, "Invalid translation tables: ", err)
		return
	}
	translator := i18n.New(cfg.I18n.Language)
	if string(translator.Language()) != cfg.I18n.Language {
		logger.Warnf(ctx, "Language %q not supported, using %s", cfg.I18n.Language, translator.Language())
	}

	// 4. Relay domain
	if missing := cfg.Telegram.Missing(); len(missing) > 0 {
		logger.Warnf(ctx, "Missing required configuration %v: webhook will answer 500 until it is set", missing)
	}
	if len(cfg.Telegram.InvalidAllowedIDs) > 0 {
		logger.Warnf(ctx, "Ignoring non-numeric allowed ids: %v", cfg.Telegram.InvalidAllowedIDs)
	}
	if len(cfg.Telegram.AllowedIDs) == 0 {
		logger.Warn(ctx, "Allow-list is empty: every sender will be rejected")
	}

	var bot telegram.ITelegram
	if cfg.Telegram.BotToken != "" {
		bot = telegram.NewBotWithBaseURL(cfg.Telegram.BotToken, cfg.Telegram.APIURL)
	}

	relayUC := usecase.New(logger, bot, translator, cfg.Telegram)
	telegramHandler := tgDelivery.New(logger, relayUC, tgDelivery.SecurityConfig{
		Secret:     cfg.Telegram.Secret,
		AllowedIPs: cfg.Webhook.AllowedIPs,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Version:         cfg.Environment.Version,
		Region:          cfg.Environment.Region,
		TelegramConfig:  cfg.Telegram,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Webhook registration, off the startup path
	if bot != nil && cfg.Telegram.Secret != "" {
		startWebhookRegistration(ctx, logger, bot, cfg.Telegram)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
