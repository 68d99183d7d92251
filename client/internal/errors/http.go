package errors

import stderrors "errors"

// categoryForStatus maps status codes to retry categories. 4xx client errors
// are final; 5xx and anything unexpected may be retried.
func categoryForStatus(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		return Irrecoverable
	default:
		return Recoverable
	}
}

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsIrrecoverable reports whether err must not be retried. Only typed API
// errors with a client-error status are irrecoverable; transport failures are
// always worth another attempt.
func IsIrrecoverable(err error) bool {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.Category() == Irrecoverable
	}
	return false
}

// StatusCode returns the status carried by a typed API error, or 0.
func StatusCode(err error) int {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.StatusCode()
	}
	return 0
}
