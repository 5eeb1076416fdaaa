package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx response from the backend.
type Error struct {
	Status  int
	Message string
	// Errors holds field-level messages some endpoints (signup) return.
	Errors []string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d %s", e.Status, http.StatusText(e.Status))
}

// Unauthorized reports whether the session was rejected.
func (e *Error) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

func newError(status int, body []byte) *Error {
	e := &Error{Status: status}

	var payload struct {
		Message string            `json:"message"`
		Error   string            `json:"error"`
		Errors  []json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return e
	}
	e.Message = payload.Message
	if e.Message == "" {
		e.Message = payload.Error
	}
	for _, raw := range payload.Errors {
		if msg := errorText(raw); msg != "" {
			e.Errors = append(e.Errors, msg)
		}
	}
	return e
}

// errorText extracts a message from a string or an express-validator style
// {"msg": "..."} object.
func errorText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var obj struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		if obj.Msg != "" {
			return obj.Msg
		}
		return obj.Message
	}
	return ""
}

// MessageOr returns the server's message carried by err, or fallback when
// err is not an *Error or the server sent none.
func MessageOr(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// FieldErrors returns the server's field-level messages carried by err.
func FieldErrors(err error) []string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Errors
	}
	return nil
}
