package client

import (
	"errors"
	"fmt"
	"testing"

	apierrors "github.com/aliefadha/tekiro-cms/client/internal/errors"
)

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"api error", apierrors.NewAPIError(422, "Validation failed", nil), "Validation failed"},
		{"wrapped api error", fmt.Errorf("save: %w", apierrors.NewAPIError(404, "Not found", nil)), "Not found"},
		{"empty message", apierrors.NewAPIError(500, "", nil), "Request failed"},
		{"plain error", errors.New("dial tcp: refused"), "Request failed"},
		{"nil", nil, "Request failed"},
	}
	for _, tc := range cases {
		if got := ErrorMessage(tc.err, "Request failed"); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestIsIrrecoverable(t *testing.T) {
	if !IsIrrecoverable(apierrors.NewAPIError(404, "", nil)) {
		t.Fatalf("404 should be irrecoverable")
	}
	if IsIrrecoverable(apierrors.NewAPIError(503, "", nil)) {
		t.Fatalf("503 should be recoverable")
	}
	if IsIrrecoverable(errors.New("network")) {
		t.Fatalf("transport errors are recoverable")
	}
}
