package telegram

import (
	"errors"
	"net/http"

	"time-vault-relay/internal/relay"
)

const (
	messageInvalidStructure = "Invalid message structure"
	messageForwardFailed    = "Failed to forward message"
)

// mapError converts a domain error into the HTTP status and outcome label
// for the webhook caller.
func mapError(err error) (int, relay.Outcome) {
	switch {
	case errors.Is(err, relay.ErrConfigInvalid):
		return http.StatusInternalServerError, relay.OutcomeConfigInvalid
	case errors.Is(err, relay.ErrInvalidSecret):
		return http.StatusUnauthorized, relay.OutcomeUnauthenticated
	case errors.Is(err, relay.ErrIPNotAllowed):
		return http.StatusForbidden, relay.OutcomeUnauthenticated
	case errors.Is(err, relay.ErrMissingSender):
		return http.StatusBadRequest, relay.OutcomeBadRequest
	case errors.Is(err, relay.ErrForwardFailed):
		return http.StatusInternalServerError, relay.OutcomeForwardFailed
	default:
		return http.StatusInternalServerError, relay.OutcomeInternalError
	}
}
