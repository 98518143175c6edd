package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultAPIURL is the public Bot API host.
const DefaultAPIURL = "https://api.telegram.org"

const maxResponseBytes = 1 << 20

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return NewBotWithBaseURL(token, DefaultAPIURL)
}

// NewBotWithBaseURL creates a client for a self-hosted Bot API server.
func NewBotWithBaseURL(token, baseURL string) *Bot {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("%s/bot%s", strings.TrimSuffix(baseURL, "/"), token),
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default Telegram API URL (local Bot API server or tests).
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = strings.TrimSuffix(url, "/")
}

// SetWebhook registers the webhook URL with Telegram.
func (b *Bot) SetWebhook(ctx context.Context, req SetWebhookRequest) error {
	var ok bool
	return call(ctx, b, "setWebhook", req, &ok)
}

// GetWebhookInfo returns the current webhook status.
func (b *Bot) GetWebhookInfo(ctx context.Context) (*WebhookInfo, error) {
	var info WebhookInfo
	if err := call(ctx, b, "getWebhookInfo", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	var sent Message
	return call(ctx, b, "sendMessage", SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	}, &sent)
}

// ForwardMessage copies a message into another chat and returns the new message.
func (b *Bot) ForwardMessage(ctx context.Context, req ForwardMessageRequest) (*Message, error) {
	var forwarded Message
	if err := call(ctx, b, "forwardMessage", req, &forwarded); err != nil {
		return nil, err
	}
	return &forwarded, nil
}

// SetMessageReaction replaces the bot's reactions on a message.
func (b *Bot) SetMessageReaction(ctx context.Context, req SetMessageReactionRequest) error {
	var ok bool
	return call(ctx, b, "setMessageReaction", req, &ok)
}

// call posts payload to a Bot API method and decodes the result into out.
// Error texts never include the request URL since it embeds the token.
func call[T any](ctx context.Context, b *Bot, method string, payload any, out *T) error {
	var body io.Reader = http.NoBody
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", method, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, body)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", method, stripURL(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", method, err)
	}

	var apiResp APIResponse[T]
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return fmt.Errorf("failed to decode %s response (status %d): %w", method, resp.StatusCode, err)
	}
	if !apiResp.OK {
		code := apiResp.ErrorCode
		if code == 0 {
			code = resp.StatusCode
		}
		return &APIError{Method: method, Code: code, Description: apiResp.Description}
	}

	*out = apiResp.Result
	return nil
}

// stripURL drops the *url.Error wrapper whose text contains the token.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
