package response

import "time"

const (
	DateTimeFormat = time.RFC3339

	MessageInternalServerError = "Internal Server Error"
	MessageUnauthorized        = "Unauthorized"
	MessageForbidden           = "Forbidden"
)
