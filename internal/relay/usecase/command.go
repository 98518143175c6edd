package usecase

import (
	"context"
	"strings"

	"time-vault-relay/internal/metrics"
	"time-vault-relay/internal/relay"
	"time-vault-relay/pkg/i18n"
	pkgTelegram "time-vault-relay/pkg/telegram"
)

// HandleCommand replies to recognized commands. Commands run before the
// allow-list check, so anyone can ask for their ids.
func (uc *implUseCase) HandleCommand(ctx context.Context, data relay.MessageData) relay.CommandResult {
	command := relay.ParseCommand(data.Message.Text)

	switch command {
	case relay.CommandID:
		err := uc.replyIDs(ctx, data)
		metrics.RecordCommand(command, err)
		if err != nil {
			uc.l.Errorf(ctx, "relay usecase: failed to reply to %s: sender_id=%d chat_id=%d: %v",
				command, data.SenderID, data.Message.Chat.ID, err)
			return relay.CommandResult{Handled: true, Err: err}
		}
		uc.l.Infof(ctx, "relay usecase: handled %s: sender_id=%d chat_id=%d", command, data.SenderID, data.Message.Chat.ID)
		return relay.CommandResult{Handled: true}
	default:
		uc.l.Debugf(ctx, "relay usecase: unrecognized command %q, falling through", command)
		return relay.CommandResult{Handled: false}
	}
}

func (uc *implUseCase) replyIDs(ctx context.Context, data relay.MessageData) error {
	chatID := data.Message.Chat.ID
	text := strings.Join([]string{
		uc.translator.Translate(i18n.KeyCommandIDGroupID, i18n.Replacements{"groupId": chatID}),
		uc.translator.Translate(i18n.KeyCommandIDYourID, i18n.Replacements{"senderId": data.SenderID}),
	}, "\n")

	return uc.bot.SendMessageWithMode(ctx, chatID, text, pkgTelegram.ParseModeMarkdown)
}
