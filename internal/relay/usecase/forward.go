package usecase

import (
	"context"
	"fmt"
	"time"

	"time-vault-relay/internal/metrics"
	"time-vault-relay/internal/relay"
	"time-vault-relay/pkg/i18n"
	pkgTelegram "time-vault-relay/pkg/telegram"
)

// ForwardMessage forwards the original message into the configured channel
// exactly once. The reaction and the failure notice are best-effort and never
// change the result of the forward itself.
func (uc *implUseCase) ForwardMessage(ctx context.Context, data relay.MessageData, messageType relay.MessageType) error {
	msg := data.Message
	uc.l.Infof(ctx, "relay usecase: forwarding message to channel: sender_id=%d message_type=%s channel_id=%s",
		data.SenderID, messageType, uc.cfg.ForwardChannelID)

	start := time.Now()
	forwarded, err := uc.bot.ForwardMessage(ctx, pkgTelegram.ForwardMessageRequest{
		ChatID:     uc.cfg.ForwardChannelID,
		FromChatID: msg.Chat.ID,
		MessageID:  msg.MessageID,
	})
	metrics.RecordForward(string(messageType), err, time.Since(start))

	if err != nil {
		uc.l.Errorf(ctx, "relay usecase: error forwarding message: sender_id=%d message_type=%s: %v",
			data.SenderID, messageType, err)

		uc.react(ctx, msg, relay.ReactionFailed)
		uc.notify(ctx, noticeForwardFailed, data.SenderID, uc.translator.Translate(i18n.KeyForwardFailed, nil))
		return fmt.Errorf("%w: %v", relay.ErrForwardFailed, err)
	}

	uc.react(ctx, msg, relay.ReactionForwarded)
	uc.l.Infof(ctx, "relay usecase: message forwarded successfully: sender_id=%d message_type=%s forwarded_message_id=%d",
		data.SenderID, messageType, forwarded.MessageID)
	return nil
}

func (uc *implUseCase) react(ctx context.Context, msg *pkgTelegram.Message, emoji string) {
	uc.bestEffort(ctx, "set "+emoji+" reaction",
		func(err error) { metrics.RecordReaction(emoji, err) },
		func() error {
			return uc.bot.SetMessageReaction(ctx, pkgTelegram.SetMessageReactionRequest{
				ChatID:    msg.Chat.ID,
				MessageID: msg.MessageID,
				Reaction:  []pkgTelegram.ReactionType{{Type: pkgTelegram.ReactionTypeEmoji, Emoji: emoji}},
			})
		},
	)
}
