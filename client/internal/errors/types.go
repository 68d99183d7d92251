// Package errors provides the typed API error returned by the client and the
// retry classification used by the query layer.
package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCategory determines how errors should be handled by retry logic.
type ErrorCategory int

const (
	// Recoverable errors may be retried with exponential backoff.
	// Examples: 500 Internal Server Error, network timeouts, connection failures.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors fail immediately without retry.
	// Examples: 401 Unauthorized, 404 Not Found, 422 validation failures.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// APIError is a failed request as reported by the backend, either through a
// non-2xx transport status or through an envelope statusCode >= 400.
// Fields are fixed at construction.
type APIError struct {
	statusCode int
	message    string
	details    json.RawMessage
}

// NewAPIError builds an APIError. details may be nil.
func NewAPIError(statusCode int, message string, details json.RawMessage) *APIError {
	var d json.RawMessage
	if len(details) > 0 {
		d = append(json.RawMessage(nil), details...)
	}
	return &APIError{statusCode: statusCode, message: message, details: d}
}

// StatusCode is the envelope statusCode, or the transport status when the
// body carried none.
func (e *APIError) StatusCode() int { return e.statusCode }

// Message is the envelope message, or the transport status text.
func (e *APIError) Message() string { return e.message }

// Details returns the raw envelope data of the failed response, nil if absent.
func (e *APIError) Details() json.RawMessage {
	if e.details == nil {
		return nil
	}
	return append(json.RawMessage(nil), e.details...)
}

// DecodeDetails unmarshals the error details into v.
func (e *APIError) DecodeDetails(v any) error {
	if len(e.details) == 0 {
		return fmt.Errorf("api error %d carries no details", e.statusCode)
	}
	return json.Unmarshal(e.details, v)
}

// Category classifies the error for retry policies.
func (e *APIError) Category() ErrorCategory {
	return categoryForStatus(e.statusCode)
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.message == "" {
		return fmt.Sprintf("api error: HTTP %d", e.statusCode)
	}
	return fmt.Sprintf("api error: HTTP %d: %s", e.statusCode, e.message)
}
