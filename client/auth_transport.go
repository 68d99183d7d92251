package client

import (
	"net/http"

	"github.com/aliefadha/tekiro-cms/client/tokenstore"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// tokenTransport adds "Authorization: Bearer <token>" from the store to
// requests that do not already carry an Authorization header. A header that
// is present but empty counts as set. The token is
// read on every request so login and logout take effect immediately.
type tokenTransport struct {
	base  http.RoundTripper
	store tokenstore.Store
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if _, set := req.Header["Authorization"]; t.store == nil || set {
		return t.base.RoundTrip(req)
	}
	token, err := t.store.Get()
	if err != nil {
		log.Debug().Err(err).Str("url", req.URL.String()).Msg("token store read failed, sending unauthenticated")
		return t.base.RoundTrip(req)
	}
	if token == "" {
		return t.base.RoundTrip(req)
	}
	// Clone the request to avoid modifying the caller's headers
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+token)
	return t.base.RoundTrip(cloned)
}

// rateLimitTransport blocks until the limiter admits the request or the
// request context ends.
type rateLimitTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}
