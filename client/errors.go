package client

import (
	"encoding/json"
	"errors"

	apierrors "github.com/aliefadha/tekiro-cms/client/internal/errors"
	"github.com/aliefadha/tekiro-cms/client/internal/form"
	"github.com/aliefadha/tekiro-cms/client/internal/types"
)

// APIError is the error returned for every failed backend response. Use
// errors.As or AsAPIError to inspect it.
type APIError = apierrors.APIError

// ErrNoToken is returned by ValidateToken when no token is stored.
var ErrNoToken = errors.New("no auth token stored")

// ErrInvalidToken is returned by ValidateToken when the backend rejects the
// stored token. The token has been removed by then.
var ErrInvalidToken = errors.New("auth token is no longer valid")

// ErrNotImage is returned when a gallery upload is not an image.
var ErrNotImage = form.ErrNotImage

// ErrMissingInput is returned, before any request is sent, when a call lacks
// a record id or a required upload.
var ErrMissingInput = types.ErrMissingInput

// NewAPIError builds an *APIError, for callers that report backend-style
// failures of their own.
func NewAPIError(statusCode int, message string, details json.RawMessage) *APIError {
	return apierrors.NewAPIError(statusCode, message, details)
}

// AsAPIError unwraps err to an *APIError.
func AsAPIError(err error) (*APIError, bool) { return apierrors.AsAPIError(err) }

// IsIrrecoverable reports whether err is a client-side (4xx) failure that
// will not succeed on retry.
func IsIrrecoverable(err error) bool { return apierrors.IsIrrecoverable(err) }

// ErrorMessage returns the backend message carried by err, or fallback when
// err is not an *APIError or its message is empty.
func ErrorMessage(err error, fallback string) string {
	if apiErr, ok := apierrors.AsAPIError(err); ok && apiErr.Message() != "" {
		return apiErr.Message()
	}
	return fallback
}
