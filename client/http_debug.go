package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport logs full request and response dumps at debug level.
//
// Enable it with WithDebugLogging(true) or by setting TEKIRO_DEBUG=true (or
// DEBUG=true) in the environment:
//
//	export TEKIRO_DEBUG=true
//	tekiro category list   # every HTTP exchange is dumped to the log
//
// Bodies are logged in full, including uploaded files and login passwords.
// The Authorization header is redacted.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqDump, out, err := dumpRequest(req)
	if err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(out)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// dumpRequest dumps a clone of req with the Authorization value masked. The
// clone, with its body restored by the dump, is what gets forwarded.
func dumpRequest(req *http.Request) ([]byte, *http.Request, error) {
	out := req.Clone(req.Context())
	auth := out.Header.Get("Authorization")
	if auth != "" {
		out.Header.Set("Authorization", "Bearer [redacted]")
	}
	dump, err := httputil.DumpRequestOut(out, true)
	if auth != "" {
		out.Header.Set("Authorization", auth)
	}
	return dump, out, err
}

// debugLoggingRequested reports whether TEKIRO_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("TEKIRO_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
