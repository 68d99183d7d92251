package rest

import (
	"strconv"

	apierrors "github.com/aliefadha/tekiro-cms/client/internal/errors"
)

// failed reports whether the response is a failure: a non-2xx transport
// status, or a 2xx carrying an envelope statusCode >= 400.
func (p payload) failed() bool {
	if p.status < 200 || p.status > 299 {
		return true
	}
	return p.statusCode() >= 400
}

// apiError builds the typed error for a failed payload. Raw bodies never
// contribute details.
func (p payload) apiError() *apierrors.APIError {
	var err *apierrors.APIError
	if p.kind == payloadRaw {
		err = apierrors.NewAPIError(p.status, p.statusText, nil)
	} else {
		err = apierrors.NewAPIError(p.statusCode(), p.message(), p.data)
	}
	apiErrorsTotal.WithLabelValues(strconv.Itoa(err.StatusCode())).Inc()
	return err
}
