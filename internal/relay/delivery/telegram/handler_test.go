package telegram_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"time-vault-relay/config"
	"time-vault-relay/internal/relay"
	"time-vault-relay/internal/relay/delivery/telegram"
	"time-vault-relay/internal/relay/usecase"
	"time-vault-relay/pkg/i18n"
	pkgTelegram "time-vault-relay/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

// mockUseCase counts pipeline calls so tests can assert nothing ran.
type mockUseCase struct {
	configErr    error
	processErr   error
	processOut   relay.ProcessOutput
	processPanic bool
	processCalls int
}

func (m *mockUseCase) ValidateConfig(ctx context.Context) error {
	return m.configErr
}
func (m *mockUseCase) IsAuthorized(senderID int64) bool {
	return true
}
func (m *mockUseCase) HandleCommand(ctx context.Context, data relay.MessageData) relay.CommandResult {
	return relay.CommandResult{}
}
func (m *mockUseCase) ForwardMessage(ctx context.Context, data relay.MessageData, messageType relay.MessageType) error {
	return nil
}
func (m *mockUseCase) NotifyUnauthorized(ctx context.Context, senderID int64) {}
func (m *mockUseCase) NotifyUnsupported(ctx context.Context, senderID int64, messageType relay.MessageType) {
}
func (m *mockUseCase) Process(ctx context.Context, data relay.MessageData) (relay.ProcessOutput, error) {
	m.processCalls++
	if m.processPanic {
		panic("unexpected nil")
	}
	return m.processOut, m.processErr
}

type mockBot struct {
	sent      []int64
	texts     []string
	forwards  []pkgTelegram.ForwardMessageRequest
	reactions []string

	forwardErr error
}

func (m *mockBot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return m.SendMessageWithMode(ctx, chatID, text, "")
}
func (m *mockBot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	m.sent = append(m.sent, chatID)
	m.texts = append(m.texts, text)
	return nil
}
func (m *mockBot) ForwardMessage(ctx context.Context, req pkgTelegram.ForwardMessageRequest) (*pkgTelegram.Message, error) {
	m.forwards = append(m.forwards, req)
	if m.forwardErr != nil {
		return nil, m.forwardErr
	}
	return &pkgTelegram.Message{MessageID: 1}, nil
}
func (m *mockBot) SetMessageReaction(ctx context.Context, req pkgTelegram.SetMessageReactionRequest) error {
	m.reactions = append(m.reactions, req.Reaction[0].Emoji)
	return nil
}
func (m *mockBot) SetWebhook(ctx context.Context, req pkgTelegram.SetWebhookRequest) error {
	return nil
}
func (m *mockBot) GetWebhookInfo(ctx context.Context) (*pkgTelegram.WebhookInfo, error) {
	return &pkgTelegram.WebhookInfo{}, nil
}

// ── Helpers ────────────────────────────────────────────────────────────────

const testSecret = "s3cret"

func init() {
	gin.SetMode(gin.TestMode)
}

func doRequest(h telegram.Handler, body string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/api/telegram/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	c.Request = req
	h.HandleWebhook(c)
	return w
}

func withSecret() map[string]string {
	return map[string]string{telegram.SecretHeader: testSecret}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
	}
	return body
}

func realHandler(bot *mockBot) telegram.Handler {
	cfg := config.TelegramConfig{
		Secret:           testSecret,
		AdminAlias:       "vault_admin",
		ForwardChannelID: "-1009876543210",
		BotToken:         "123:abc",
		AllowedIDs:       []int64{456},
	}
	uc := usecase.New(&mockLogger{}, bot, i18n.New("en-US"), cfg)
	return telegram.New(&mockLogger{}, uc, telegram.SecurityConfig{Secret: testSecret})
}

const photoUpdate = `{"update_id":1,"message":{"message_id":42,"from":{"id":456,"is_bot":false,"first_name":"Ana"},"chat":{"id":456,"type":"private"},"date":1700000000,"photo":[{"file_id":"p1","file_unique_id":"u1","width":90,"height":90}]}}`

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_SecretMismatch(t *testing.T) {
	cases := map[string]map[string]string{
		"absent":   nil,
		"mismatch": {telegram.SecretHeader: "wrong"},
	}
	for name, headers := range cases {
		t.Run(name, func(t *testing.T) {
			uc := &mockUseCase{}
			h := telegram.New(&mockLogger{}, uc, telegram.SecurityConfig{Secret: testSecret})

			w := doRequest(h, photoUpdate, headers)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
			if uc.processCalls != 0 {
				t.Errorf("expected no processing, got %d calls", uc.processCalls)
			}
		})
	}
}

func TestHandleWebhook_SecretMismatchNoBotCalls(t *testing.T) {
	bot := &mockBot{}
	w := doRequest(realHandler(bot), photoUpdate, map[string]string{telegram.SecretHeader: "nope"})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if len(bot.forwards)+len(bot.sent)+len(bot.reactions) != 0 {
		t.Errorf("expected no Bot API calls, got %+v", bot)
	}
}

func TestHandleWebhook_ConfigGate(t *testing.T) {
	uc := &mockUseCase{configErr: relay.ErrConfigInvalid}
	h := telegram.New(&mockLogger{}, uc, telegram.SecurityConfig{Secret: testSecret})

	w := doRequest(h, photoUpdate, withSecret())
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if uc.processCalls != 0 {
		t.Errorf("expected no processing")
	}
}

func TestHandleWebhook_IPAllowList(t *testing.T) {
	uc := &mockUseCase{processOut: relay.ProcessOutput{Outcome: relay.OutcomeForwarded}}
	h := telegram.New(&mockLogger{}, uc, telegram.SecurityConfig{
		Secret:     testSecret,
		AllowedIPs: []string{"149.154.160.0/20", "10.0.0.7"},
	})

	allowed := withSecret()
	allowed["X-Forwarded-For"] = "149.154.167.99, 10.1.1.1"
	if w := doRequest(h, photoUpdate, allowed); w.Code != http.StatusOK {
		t.Errorf("expected 200 for CIDR match, got %d", w.Code)
	}

	exact := withSecret()
	exact["X-Real-IP"] = "10.0.0.7"
	if w := doRequest(h, photoUpdate, exact); w.Code != http.StatusOK {
		t.Errorf("expected 200 for exact match, got %d", w.Code)
	}

	denied := withSecret()
	denied["X-Forwarded-For"] = "203.0.113.5"
	if w := doRequest(h, photoUpdate, denied); w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
	if uc.processCalls != 2 {
		t.Errorf("expected 2 processed updates, got %d", uc.processCalls)
	}
}

func TestHandleWebhook_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{"malformed json", `{"update_id":`, http.StatusBadRequest},
		{"no sender", `{"update_id":2,"message":{"message_id":1,"chat":{"id":1,"type":"private"},"date":1}}`, http.StatusBadRequest},
		{"non-message update", `{"update_id":3,"edited_message":{"message_id":1,"date":1}}`, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			h := telegram.New(&mockLogger{}, uc, telegram.SecurityConfig{Secret: testSecret})

			w := doRequest(h, tt.body, withSecret())
			if w.Code != tt.code {
				t.Fatalf("expected %d, got %d: %s", tt.code, w.Code, w.Body.String())
			}
			if uc.processCalls != 0 {
				t.Errorf("expected no processing")
			}
		})
	}
}

func TestHandleWebhook_MissingSenderBody(t *testing.T) {
	h := telegram.New(&mockLogger{}, &mockUseCase{}, telegram.SecurityConfig{Secret: testSecret})
	w := doRequest(h, `{"update_id":2,"message":{"message_id":1,"chat":{"id":1,"type":"private"},"date":1}}`, withSecret())

	if got := decode(t, w)["error"]; got != "Invalid message structure" {
		t.Errorf("unexpected error body %v", got)
	}
}

func TestHandleWebhook_PanicRecovered(t *testing.T) {
	h := telegram.New(&mockLogger{}, &mockUseCase{processPanic: true}, telegram.SecurityConfig{Secret: testSecret})

	w := doRequest(h, photoUpdate, withSecret())
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestHandleWebhook_AuthorizedPhoto(t *testing.T) {
	bot := &mockBot{}
	w := doRequest(realHandler(bot), photoUpdate, withSecret())

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if decode(t, w)["success"] != true {
		t.Errorf("expected success body, got %s", w.Body.String())
	}
	if len(bot.forwards) != 1 {
		t.Fatalf("expected one forward, got %d", len(bot.forwards))
	}
	fwd := bot.forwards[0]
	if fwd.ChatID != "-1009876543210" || fwd.FromChatID != 456 || fwd.MessageID != 42 {
		t.Errorf("unexpected forward %+v", fwd)
	}
	if len(bot.reactions) != 1 || bot.reactions[0] != relay.ReactionForwarded {
		t.Errorf("expected 👍 reaction, got %v", bot.reactions)
	}
}

func TestHandleWebhook_UnauthorizedSender(t *testing.T) {
	bot := &mockBot{}
	body := `{"update_id":4,"message":{"message_id":7,"from":{"id":999,"is_bot":false,"first_name":"Eve"},"chat":{"id":999,"type":"private"},"date":1,"video":{"file_id":"v","file_unique_id":"u","width":1,"height":1,"duration":3}}}`

	w := doRequest(realHandler(bot), body, withSecret())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(bot.forwards) != 0 {
		t.Errorf("expected no forward, got %d", len(bot.forwards))
	}
	if len(bot.sent) != 1 || bot.sent[0] != 999 {
		t.Errorf("expected exactly one notice to sender, got %v", bot.sent)
	}
}

func TestHandleWebhook_IDCommandInGroup(t *testing.T) {
	bot := &mockBot{}
	body := `{"update_id":5,"message":{"message_id":8,"from":{"id":999,"is_bot":false,"first_name":"Eve"},"chat":{"id":-100123,"type":"supergroup","title":"Vault"},"date":1,"text":"/id"}}`

	w := doRequest(realHandler(bot), body, withSecret())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(bot.forwards) != 0 {
		t.Errorf("expected no forward")
	}
	if len(bot.texts) != 1 || !strings.Contains(bot.texts[0], "-100123") || !strings.Contains(bot.texts[0], "999") {
		t.Errorf("expected reply with both ids, got %v", bot.texts)
	}
}

func TestHandleWebhook_ForwardFailure(t *testing.T) {
	bot := &mockBot{forwardErr: errors.New("Bad Request: chat not found")}

	w := doRequest(realHandler(bot), photoUpdate, withSecret())
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if got := decode(t, w)["error"]; got != "Failed to forward message" {
		t.Errorf("unexpected error body %v", got)
	}
	if len(bot.reactions) != 1 || bot.reactions[0] != relay.ReactionFailed {
		t.Errorf("expected 👎 reaction, got %v", bot.reactions)
	}
	if len(bot.sent) != 1 || bot.sent[0] != 456 {
		t.Errorf("expected failure notice to sender, got %v", bot.sent)
	}
}

func TestHandleWebhook_ErrorBodies(t *testing.T) {
	h := telegram.New(&mockLogger{}, &mockUseCase{}, telegram.SecurityConfig{
		Secret:     testSecret,
		AllowedIPs: []string{"10.0.0.1"},
	})

	fromAllowedIP := func(headers map[string]string) map[string]string {
		headers["X-Real-IP"] = "10.0.0.1"
		return headers
	}

	tests := []struct {
		name    string
		body    string
		headers map[string]string
		code    int
		message string
	}{
		{"empty body", "", fromAllowedIP(withSecret()), http.StatusBadRequest, "Invalid message structure"},
		{"malformed json", `{"update_id":`, fromAllowedIP(withSecret()), http.StatusBadRequest, "Invalid message structure"},
		{"wrong type", `{"update_id":"one"}`, fromAllowedIP(withSecret()), http.StatusBadRequest, "Invalid message structure"},
		{"no secret", photoUpdate, fromAllowedIP(map[string]string{}), http.StatusUnauthorized, "Unauthorized"},
		{"disallowed ip", photoUpdate, map[string]string{telegram.SecretHeader: testSecret, "X-Real-IP": "10.9.9.9"}, http.StatusForbidden, "Forbidden"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(h, tt.body, tt.headers)
			if w.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, w.Code)
			}
			if got := decode(t, w)["error"]; got != tt.message {
				t.Errorf("expected error %q, got %v", tt.message, got)
			}
		})
	}
}

func TestHandleWebhook_ConfigGateBody(t *testing.T) {
	h := telegram.New(&mockLogger{}, &mockUseCase{configErr: relay.ErrConfigInvalid}, telegram.SecurityConfig{Secret: testSecret})

	w := doRequest(h, photoUpdate, withSecret())
	if got := decode(t, w)["error"]; got != "Internal Server Error" {
		t.Errorf("configuration details must not leak, got %v", got)
	}
}
