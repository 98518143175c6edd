package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body: {"success":true} or {"error":"..."}.
type Resp struct {
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

// DateTime is a datetime that marshals as DateTimeFormat in UTC.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}
