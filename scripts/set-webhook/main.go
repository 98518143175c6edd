// scripts/set-webhook/main.go
//
// Registers the relay's public URL with Telegram and prints the resulting
// webhook info. Reads the same config as the server (config.yaml or env).
//
// Usage:
//   go run scripts/set-webhook/main.go https://vault.example.com/api/telegram/webhook
//   go run scripts/set-webhook/main.go            # just print current webhook info

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"time-vault-relay/config"
	"time-vault-relay/pkg/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Telegram.BotToken == "" {
		log.Fatal("BOT_TOKEN is not set")
	}

	webhookURL := cfg.Telegram.WebhookURL
	if len(os.Args) > 1 {
		webhookURL = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	bot := telegram.NewBotWithBaseURL(cfg.Telegram.BotToken, cfg.Telegram.APIURL)

	if webhookURL != "" {
		if cfg.Telegram.Secret == "" {
			log.Fatal("TELEGRAM_SECRET is not set; refusing to register a webhook without a secret token")
		}
		err := bot.SetWebhook(ctx, telegram.SetWebhookRequest{
			URL:            webhookURL,
			SecretToken:    cfg.Telegram.Secret,
			AllowedUpdates: []string{"message"},
		})
		if err != nil {
			log.Fatalf("Failed to set webhook: %v", err)
		}
		fmt.Printf("Webhook registered at %s\n", webhookURL)
	}

	info, err := bot.GetWebhookInfo(ctx)
	if err != nil {
		log.Fatalf("Failed to get webhook info: %v", err)
	}

	out, _ := json.MarshalIndent(info, "", "  ")
	fmt.Println(string(out))
}
