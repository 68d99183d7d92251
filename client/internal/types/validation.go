package types

import (
	"errors"
	"fmt"
	"strings"
)

// ------------------------------
// Input Validation
// ------------------------------

// ErrMissingInput is wrapped by every validation failure below. Requests that
// fail validation are never sent.
var ErrMissingInput = errors.New("missing required input")

// ValidateIDPresent rejects an empty or blank resource id. An empty id would
// address the collection instead of one record.
func ValidateIDPresent(id, field string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %s is required", ErrMissingInput, field)
	}
	return nil
}

// ValidateUpload rejects an upload with neither a Path nor Content.
func ValidateUpload(u Upload, field string) error {
	if u.Path == "" && len(u.Content) == 0 {
		return fmt.Errorf("%w: %s needs a path or content", ErrMissingInput, field)
	}
	return nil
}
