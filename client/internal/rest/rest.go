// Package rest implements the request/response contract of the CMS backend:
// JSON or multipart request bodies, the {statusCode, message, data, meta}
// response envelope, and its mapping onto a typed API error.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/aliefadha/tekiro-cms/client/internal/form"
	"github.com/aliefadha/tekiro-cms/client/internal/origin"
	"github.com/google/uuid"
)

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Requester binds a Doer to a backend origin.
type Requester struct {
	doer    Doer
	baseURL string
}

// NewRequester returns a Requester for baseURL. baseURL should already be
// resolved (see origin.Resolve).
func NewRequester(doer Doer, baseURL string) *Requester {
	return &Requester{doer: doer, baseURL: baseURL}
}

// BaseURL is the origin relative paths are joined to.
func (r *Requester) BaseURL() string { return r.baseURL }

// Request describes one call. It is built per call and not retained.
type Request struct {
	Method  string
	Path    string
	Body    any // nil, *form.Form, or a JSON-serializable value
	Header  http.Header
	BaseURL string
}

// Option adjusts a Request before it is sent.
type Option func(*Request)

// WithHeader sets a request header, overriding the defaults the client would
// add (Authorization, Content-Type, X-Request-Id).
func WithHeader(key, value string) Option {
	return func(r *Request) {
		if r.Header == nil {
			r.Header = make(http.Header)
		}
		r.Header.Set(key, value)
	}
}

// WithBaseURL sends a relative path to a different origin.
func WithBaseURL(baseURL string) Option {
	return func(r *Request) { r.BaseURL = baseURL }
}

// Do sends req and decodes the envelope. Transport failures are returned as
// produced by the Doer; failed responses become *errors.APIError.
func Do[T, M any](ctx context.Context, r *Requester, req Request) (*Response[T, M], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := r.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := r.doer.Do(httpReq)
	if err != nil {
		requestsTotal.WithLabelValues(req.Method, "error").Inc()
		return nil, err
	}

	p, err := readPayload(resp)
	requestDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()
	if err != nil {
		return nil, err
	}

	if p.failed() {
		return nil, p.apiError()
	}
	return decodePayload[T, M](p), nil
}

func (r *Requester) newHTTPRequest(ctx context.Context, req Request) (*http.Request, error) {
	base := req.BaseURL
	if base == "" {
		base = r.baseURL
	}

	header := make(http.Header)
	for k, v := range req.Header {
		header[k] = append([]string(nil), v...)
	}

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}
	if contentType != "" && header.Get("Content-Type") == "" {
		header.Set("Content-Type", contentType)
	}
	if header.Get("Accept") == "" {
		header.Set("Accept", "application/json")
	}
	if header.Get("X-Request-Id") == "" {
		header.Set("X-Request-Id", uuid.NewString())
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, origin.Join(base, req.Path), body)
	if err != nil {
		return nil, err
	}
	httpReq.Header = header
	return httpReq, nil
}

// encodeBody returns the body reader and the content type it implies.
// Multipart forms pass through with their own boundary type.
func encodeBody(v any) (io.Reader, string, error) {
	switch b := v.(type) {
	case nil:
		return nil, "", nil
	case *form.Form:
		rd, err := b.Reader()
		if err != nil {
			return nil, "", err
		}
		return rd, b.ContentType(), nil
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(raw), "application/json", nil
	}
}
