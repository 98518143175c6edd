package main

import (
	"context"
	"strings"

	"time-vault-relay/config"
	"time-vault-relay/internal/httpserver"
	"time-vault-relay/pkg/log"
	"time-vault-relay/pkg/telegram"
)

// startWebhookRegistration runs registerWebhook in the background so the HTTP
// server can start listening while ngrok is still being polled. The returned
// channel is closed when registration has finished.
func startWebhookRegistration(ctx context.Context, l log.Logger, bot telegram.ITelegram, cfg config.TelegramConfig) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		registerWebhook(ctx, l, bot, cfg)
	}()
	return done
}

// registerWebhook points Telegram at this service. The URL comes from config,
// or from a local ngrok agent when none is set. Failures are logged only: a
// webhook registered earlier keeps working.
func registerWebhook(ctx context.Context, l log.Logger, bot telegram.ITelegram, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, ngrokAPIBase)
		if err != nil {
			l.Infof(ctx, "No webhook URL configured and ngrok not detected, skipping registration: %v", err)
			return
		}
		webhookURL = strings.TrimSuffix(ngrokURL, "/") + httpserver.TelegramWebhookPath
		l.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	err := bot.SetWebhook(ctx, telegram.SetWebhookRequest{
		URL:            webhookURL,
		SecretToken:    cfg.Secret,
		AllowedUpdates: []string{"message"},
	})
	if err != nil {
		l.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	l.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
