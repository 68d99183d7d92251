package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/aliefadha/tekiro-cms/client/internal/rest"
	"github.com/aliefadha/tekiro-cms/internal/fakecms"
)

// pngBytes is enough of a PNG for content sniffing.
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

func newBackend(t *testing.T) (*fakecms.Server, *rest.Requester) {
	t.Helper()
	srv := fakecms.New("staff@example.com", "secret")
	t.Cleanup(srv.Close)
	return srv, rest.NewRequester(srv.Client(), srv.URL)
}
