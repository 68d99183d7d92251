package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/aliefadha/tekiro-cms/client/tokenstore"
	"golang.org/x/time/rate"
)

// Option configures a Client during construction in New.
//
// Transport options are recorded here and assembled after all options run,
// so their order does not matter. The token wrapper is always outermost.
type Option func(*Client) error

// WithBaseURL overrides the backend origin. Surrounding space and trailing
// slashes are dropped; an empty value keeps the default.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		c.baseURL = baseURL
		return nil
	}
}

// WithHTTPClient uses a copy of hc as the underlying client. Its Transport
// becomes the base of the client's transport chain.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		cp := *hc
		cp.Timeout = c.http.Timeout
		if hc.Timeout > 0 {
			cp.Timeout = hc.Timeout
		}
		c.http = &cp
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse bound on a whole request including reading the response body.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging dumps each request and response at debug level when
// enabled is true. Authorization values are redacted. Do not enable this in
// production: bodies are logged in full.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = c.debug || enabled
		return nil
	}
}

// WithTokenStore sets where the bearer token is read from on every request
// and written to by Login and Logout.
func WithTokenStore(s tokenstore.Store) Option {
	return func(c *Client) error {
		if s == nil {
			return fmt.Errorf("token store must not be nil")
		}
		c.store = s
		return nil
	}
}

// WithRateLimit caps outgoing requests at rps per second with the given
// burst. Waiting honours the request context.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) error {
		if rps <= 0 {
			return fmt.Errorf("rate limit must be > 0")
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		return nil
	}
}
