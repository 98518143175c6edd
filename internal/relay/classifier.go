package relay

import (
	"strings"

	pkgTelegram "time-vault-relay/pkg/telegram"
)

// KindOf reports which variant of update is populated. Only the message
// variant is processed.
func KindOf(update pkgTelegram.Update) UpdateKind {
	if update.Message != nil {
		return UpdateKindMessage
	}
	return UpdateKindOther
}

// ValidateMessage extracts the message and sender id from update.
// It returns ErrNonMessageUpdate for any non-message variant and
// ErrMissingSender when the message carries no usable sender id.
func ValidateMessage(update pkgTelegram.Update) (MessageData, error) {
	switch KindOf(update) {
	case UpdateKindMessage:
		msg := update.Message
		if msg.From == nil || msg.From.ID == 0 || msg.Chat == nil {
			return MessageData{}, ErrMissingSender
		}
		return MessageData{Message: msg, SenderID: msg.From.ID}, nil
	default:
		return MessageData{}, ErrNonMessageUpdate
	}
}

// GetMessageType returns the first attachment kind present, in the order
// video, audio, photo, video_note, voice. Anything else is unsupported.
func GetMessageType(msg *pkgTelegram.Message) MessageType {
	switch {
	case msg == nil:
		return MessageTypeUnsupported
	case msg.Video != nil:
		return MessageTypeVideo
	case msg.Audio != nil:
		return MessageTypeAudio
	case len(msg.Photo) > 0:
		return MessageTypePhoto
	case msg.VideoNote != nil:
		return MessageTypeVideoNote
	case msg.Voice != nil:
		return MessageTypeVoice
	default:
		return MessageTypeUnsupported
	}
}

// IsCommand reports whether the message text starts with the command marker.
func IsCommand(msg *pkgTelegram.Message) bool {
	return msg != nil && strings.HasPrefix(msg.Text, CommandMarker)
}

// ParseCommand returns the lower-cased first token of the text with any
// "@botname" suffix removed, e.g. "/ID@VaultBot now" -> "/id".
func ParseCommand(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	name := strings.ToLower(fields[0])
	if i := strings.IndexByte(name, '@'); i > 0 {
		name = name[:i]
	}
	return name
}
