package api

import (
	"encoding/json"
	"fmt"
)

// TransportError is any failed or non-2xx outcome of a backend call. The raw
// response body is preserved untouched so views can map backend messages to
// user-facing text.
type TransportError struct {
	// Status is the HTTP status code, or 0 when the request never completed.
	Status int
	// Body is the raw response body, when one was received.
	Body []byte
	// Err is the underlying transport failure, when there was one.
	Err error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, msg)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Message extracts the backend's message field from the body when the body is
// a JSON object carrying one. Falls back to the raw body text.
func (e *TransportError) Message() string {
	if len(e.Body) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(e.Body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return string(e.Body)
}

// PreconditionError is a local failure raised before any network I/O, such as
// an authenticated call attempted with no token present.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Reason
}

// ErrNoToken is the reason used when an auth-required operation finds no
// stored token.
const ErrNoToken = "no authentication token found"
