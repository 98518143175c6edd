package relay

import "errors"

// Domain-specific errors for the relay package.
var (
	ErrNonMessageUpdate = errors.New("non-message update")
	ErrMissingSender    = errors.New("invalid message structure")
	ErrConfigInvalid    = errors.New("missing required configuration")
	ErrForwardFailed    = errors.New("failed to forward message")
	ErrInvalidSecret    = errors.New("invalid secret token")
	ErrIPNotAllowed     = errors.New("source IP not allowed")
)
