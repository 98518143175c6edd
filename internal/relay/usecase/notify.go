package usecase

import (
	"context"

	"time-vault-relay/internal/metrics"
	"time-vault-relay/internal/relay"
	"time-vault-relay/pkg/i18n"
)

const (
	noticeUnauthorized  = "unauthorized"
	noticeUnsupported   = "unsupported"
	noticeForwardFailed = "forward_failed"
)

// NotifyUnauthorized sends the localized access notice to senderID.
func (uc *implUseCase) NotifyUnauthorized(ctx context.Context, senderID int64) {
	uc.l.Warnf(ctx, "relay usecase: unauthorized sender: sender_id=%d allowed_ids=%d", senderID, uc.allowList.Len())

	text := uc.translator.Translate(i18n.KeyUnauthorized, i18n.Replacements{
		"adminAlias": uc.cfg.AdminAlias,
		"senderId":   senderID,
	})
	uc.notify(ctx, noticeUnauthorized, senderID, text)
}

// NotifyUnsupported sends the localized supported-media notice to senderID.
func (uc *implUseCase) NotifyUnsupported(ctx context.Context, senderID int64, messageType relay.MessageType) {
	uc.l.Infof(ctx, "relay usecase: unsupported message type: sender_id=%d message_type=%s", senderID, messageType)

	uc.notify(ctx, noticeUnsupported, senderID, uc.translator.Translate(i18n.KeyUnsupportedMessageType, nil))
}

func (uc *implUseCase) notify(ctx context.Context, kind string, senderID int64, text string) {
	uc.bestEffort(ctx, "send "+kind+" notice",
		func(err error) { metrics.RecordNotification(kind, err) },
		func() error { return uc.bot.SendMessage(ctx, senderID, text) },
	)
}
