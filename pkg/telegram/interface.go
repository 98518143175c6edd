package telegram

import "context"

// ITelegram is the subset of the Bot API the relay calls.
// Implementations are safe for concurrent use.
type ITelegram interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
	ForwardMessage(ctx context.Context, req ForwardMessageRequest) (*Message, error)
	SetMessageReaction(ctx context.Context, req SetMessageReactionRequest) error
	SetWebhook(ctx context.Context, req SetWebhookRequest) error
	GetWebhookInfo(ctx context.Context) (*WebhookInfo, error)
}

var _ ITelegram = (*Bot)(nil)
