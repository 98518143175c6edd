package usecase

import (
	"context"

	"time-vault-relay/internal/relay"
)

// Process runs the steps after a message has been validated: command
// dispatch, authorization, classification and forwarding, in that order.
func (uc *implUseCase) Process(ctx context.Context, data relay.MessageData) (relay.ProcessOutput, error) {
	msg := data.Message
	messageType := relay.GetMessageType(msg)
	uc.l.Infof(ctx, "relay usecase: processing message: sender_id=%d message_type=%s chat_id=%d chat_type=%s message_id=%d",
		data.SenderID, messageType, msg.Chat.ID, msg.Chat.Type, msg.MessageID)

	if relay.IsCommand(msg) {
		if res := uc.HandleCommand(ctx, data); res.Handled {
			return relay.ProcessOutput{Outcome: relay.OutcomeCommand, MessageType: messageType}, nil
		}
	}

	if !uc.IsAuthorized(data.SenderID) {
		uc.NotifyUnauthorized(ctx, data.SenderID)
		return relay.ProcessOutput{Outcome: relay.OutcomeUnauthorized, MessageType: messageType}, nil
	}

	if messageType == relay.MessageTypeUnsupported {
		uc.NotifyUnsupported(ctx, data.SenderID, messageType)
		return relay.ProcessOutput{Outcome: relay.OutcomeUnsupported, MessageType: messageType}, nil
	}

	if err := uc.ForwardMessage(ctx, data, messageType); err != nil {
		return relay.ProcessOutput{Outcome: relay.OutcomeForwardFailed, MessageType: messageType}, err
	}
	return relay.ProcessOutput{Outcome: relay.OutcomeForwarded, MessageType: messageType}, nil
}
