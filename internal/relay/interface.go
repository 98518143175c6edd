package relay

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// ValidateConfig fails with ErrConfigInvalid when a required setting is absent.
	ValidateConfig(ctx context.Context) error

	// IsAuthorized reports allow-list membership of senderID.
	IsAuthorized(senderID int64) bool

	// HandleCommand replies to recognized commands. Unrecognized commands are not handled.
	HandleCommand(ctx context.Context, data MessageData) CommandResult

	// ForwardMessage forwards the message to the configured channel and reacts on the original.
	ForwardMessage(ctx context.Context, data MessageData, messageType MessageType) error

	// NotifyUnauthorized tells a rejected sender how to get access. Best-effort.
	NotifyUnauthorized(ctx context.Context, senderID int64)

	// NotifyUnsupported tells the sender which media kinds are accepted. Best-effort.
	NotifyUnsupported(ctx context.Context, senderID int64, messageType MessageType)

	// Process runs command dispatch, authorization, classification and forwarding
	// for a validated message.
	Process(ctx context.Context, data MessageData) (ProcessOutput, error)
}
