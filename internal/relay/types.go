package relay

import pkgTelegram "time-vault-relay/pkg/telegram"

// MessageType is the media kind of a message, derived by GetMessageType.
type MessageType string

const (
	MessageTypeVideo       MessageType = "video"
	MessageTypeAudio       MessageType = "audio"
	MessageTypePhoto       MessageType = "photo"
	MessageTypeVideoNote   MessageType = "video_note"
	MessageTypeVoice       MessageType = "voice"
	MessageTypeUnsupported MessageType = "unsupported"
)

// UpdateKind tags which variant of an update is populated.
type UpdateKind string

const (
	UpdateKindMessage UpdateKind = "message"
	UpdateKindOther   UpdateKind = "other"
)

// MessageData is a message together with its resolved sender id.
type MessageData struct {
	Message  *pkgTelegram.Message
	SenderID int64
}

// CommandResult reports whether a command short-circuited the pipeline.
// Err is set when the reply could not be sent; the update still counts as handled.
type CommandResult struct {
	Handled bool
	Err     error
}

// Outcome is the terminal state of one processed update.
type Outcome string

const (
	OutcomeConfigInvalid   Outcome = "config_invalid"
	OutcomeUnauthenticated Outcome = "unauthenticated"
	OutcomeBadRequest      Outcome = "bad_request"
	OutcomeIgnored         Outcome = "ignored"
	OutcomeCommand         Outcome = "command"
	OutcomeUnauthorized    Outcome = "unauthorized"
	OutcomeUnsupported     Outcome = "unsupported"
	OutcomeForwarded       Outcome = "forwarded"
	OutcomeForwardFailed   Outcome = "forward_failed"
	OutcomeInternalError   Outcome = "internal_error"
)

// ProcessOutput is the result of UseCase.Process.
type ProcessOutput struct {
	Outcome     Outcome
	MessageType MessageType
}

// Commands
const (
	CommandMarker = "/"
	CommandID     = "/id"
)

// Reactions applied to the original message after a forward attempt.
const (
	ReactionForwarded = "👍"
	ReactionFailed    = "👎"
)
