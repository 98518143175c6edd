package usecase

import (
	"context"
	"sync"

	"time-vault-relay/config"
	"time-vault-relay/pkg/i18n"
	pkgTelegram "time-vault-relay/pkg/telegram"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type sentMessage struct {
	ChatID    int64
	Text      string
	ParseMode string
}

// mockBot records every Bot API call.
type mockBot struct {
	mu sync.Mutex

	sent      []sentMessage
	forwards  []pkgTelegram.ForwardMessageRequest
	reactions []pkgTelegram.SetMessageReactionRequest

	sendErr     error
	forwardErr  error
	reactionErr error
	panicOnSend bool
}

func (m *mockBot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return m.SendMessageWithMode(ctx, chatID, text, "")
}

func (m *mockBot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.panicOnSend {
		panic("transport exploded")
	}
	m.sent = append(m.sent, sentMessage{ChatID: chatID, Text: text, ParseMode: parseMode})
	return m.sendErr
}

func (m *mockBot) ForwardMessage(ctx context.Context, req pkgTelegram.ForwardMessageRequest) (*pkgTelegram.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forwards = append(m.forwards, req)
	if m.forwardErr != nil {
		return nil, m.forwardErr
	}
	return &pkgTelegram.Message{MessageID: 9001}, nil
}

func (m *mockBot) SetMessageReaction(ctx context.Context, req pkgTelegram.SetMessageReactionRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reactions = append(m.reactions, req)
	return m.reactionErr
}

func (m *mockBot) SetWebhook(ctx context.Context, req pkgTelegram.SetWebhookRequest) error {
	return nil
}

func (m *mockBot) GetWebhookInfo(ctx context.Context) (*pkgTelegram.WebhookInfo, error) {
	return &pkgTelegram.WebhookInfo{}, nil
}

const (
	testChannelID  = "-1009876543210"
	testAdmin      = "vault_admin"
	allowedSender  = int64(456)
	rejectedSender = int64(999)
)

func testConfig() config.TelegramConfig {
	return config.TelegramConfig{
		Secret:           "s3cret",
		AdminAlias:       testAdmin,
		ForwardChannelID: testChannelID,
		BotToken:         "123:abc",
		AllowedIDs:       []int64{allowedSender, 789},
	}
}

func newTestUseCase(bot *mockBot) *implUseCase {
	return New(&mockLogger{}, bot, i18n.New("en-US"), testConfig())
}

func newMessage(senderID int64, chatID int64) *pkgTelegram.Message {
	return &pkgTelegram.Message{
		MessageID: 42,
		From:      &pkgTelegram.User{ID: senderID},
		Chat:      &pkgTelegram.Chat{ID: chatID, Type: pkgTelegram.ChatTypePrivate},
	}
}
