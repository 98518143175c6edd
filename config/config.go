package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Relay
	Telegram TelegramConfig
	I18n     I18nConfig
	Webhook  WebhookConfig
}

type EnvironmentConfig struct {
	Name    string
	Version string
	Region  string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// TelegramConfig is the relay's bot configuration. It is immutable after Load.
type TelegramConfig struct {
	Secret           string
	AdminAlias       string
	ForwardChannelID string
	BotToken         string
	AllowedIDs       []int64
	APIURL           string
	WebhookURL       string

	// InvalidAllowedIDs lists allow-list entries that were not integers.
	InvalidAllowedIDs []string
}

type I18nConfig struct {
	Language string
}

// WebhookConfig holds optional transport-level restrictions for the webhook.
type WebhookConfig struct {
	AllowedIPs []string
}

// Presence reports, per field, whether a value is configured.
type Presence struct {
	HasSecret    bool `json:"hasSecret"`
	HasAdmin     bool `json:"hasAdmin"`
	HasChannel   bool `json:"hasChannel"`
	HasToken     bool `json:"hasToken"`
	HasWhitelist bool `json:"hasWhitelist"`
}

// Presence returns the configured/absent summary used by the health check.
func (c TelegramConfig) Presence() Presence {
	return Presence{
		HasSecret:    c.Secret != "",
		HasAdmin:     c.AdminAlias != "",
		HasChannel:   c.ForwardChannelID != "",
		HasToken:     c.BotToken != "",
		HasWhitelist: len(c.AllowedIDs) > 0,
	}
}

// Healthy reports whether every field in Presence is set.
func (p Presence) Healthy() bool {
	return p.HasSecret && p.HasAdmin && p.HasChannel && p.HasToken && p.HasWhitelist
}

// Missing returns the names of absent fields required to process updates.
// The allow-list is not required: an empty list rejects every sender.
func (c TelegramConfig) Missing() []string {
	var missing []string
	if c.Secret == "" {
		missing = append(missing, "secret")
	}
	if c.AdminAlias == "" {
		missing = append(missing, "admin_alias")
	}
	if c.ForwardChannelID == "" {
		missing = append(missing, "forward_channel_id")
	}
	if c.BotToken == "" {
		missing = append(missing, "bot_token")
	}
	return missing
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// Missing relay fields are not an error here; they are reported per request.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Environment.Version = firstNonEmpty(viper.GetString("vercel_git_commit_sha"), viper.GetString("app_version"), viper.GetString("environment.version"))
	cfg.Environment.Region = firstNonEmpty(viper.GetString("vercel_region"), viper.GetString("environment.region"))
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Telegram. Flat env names win over yaml keys.
	cfg.Telegram.Secret = firstNonEmpty(viper.GetString("telegram_secret"), viper.GetString("telegram.secret"))
	cfg.Telegram.AdminAlias = strings.TrimPrefix(firstNonEmpty(viper.GetString("admin_telegram_alias"), viper.GetString("telegram.admin_alias")), "@")
	cfg.Telegram.ForwardChannelID = firstNonEmpty(viper.GetString("forward_channel_id"), viper.GetString("telegram.forward_channel_id"))
	cfg.Telegram.BotToken = firstNonEmpty(viper.GetString("bot_token"), viper.GetString("telegram.bot_token"))
	cfg.Telegram.APIURL = viper.GetString("telegram.api_url")
	cfg.Telegram.WebhookURL = firstNonEmpty(viper.GetString("telegram_webhook_url"), viper.GetString("telegram.webhook_url"))
	cfg.Telegram.AllowedIDs, cfg.Telegram.InvalidAllowedIDs = parseAllowedIDs(
		firstNonEmpty(viper.GetString("allowed_telegram_ids"), viper.GetString("telegram.allowed_ids")),
	)

	// I18n
	cfg.I18n.Language = firstNonEmpty(viper.GetString("language"), viper.GetString("i18n.language"))

	// Webhook. Split allowed IPs since viper might not parse array seamlessly from env
	cfg.Webhook.AllowedIPs = splitList(viper.GetString("webhook.allowed_ips"))

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("environment.version", "unknown")
	viper.SetDefault("environment.region", "unknown")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("telegram.api_url", "https://api.telegram.org")
	viper.SetDefault("i18n.language", "en-US")
}

// parseAllowedIDs parses a comma-separated list of numeric sender ids.
// Entries that are not integers are returned separately and never match.
func parseAllowedIDs(raw string) ([]int64, []string) {
	var ids []int64
	var invalid []string
	for _, part := range splitList(raw) {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			invalid = append(invalid, part)
			continue
		}
		ids = append(ids, id)
	}
	return ids, invalid
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
