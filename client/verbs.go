package client

import (
	"context"

	"github.com/aliefadha/tekiro-cms/client/internal/rest"
)

// Response is a decoded backend envelope. Meta is nil when the envelope had
// no meta field.
type Response[T, M any] = rest.Response[T, M]

// NoData is a placeholder type parameter for envelopes whose data or meta is
// ignored.
type NoData = rest.NoData

// RequestOption adjusts a single call made through the generic verbs.
type RequestOption = rest.Option

// WithHeader sets a request header. An explicit Authorization header, even
// an empty one, replaces the stored token for that call.
func WithHeader(key, value string) RequestOption { return rest.WithHeader(key, value) }

// WithRequestOrigin sends a relative path to another origin for one call.
func WithRequestOrigin(baseURL string) RequestOption { return rest.WithBaseURL(baseURL) }

// Get fetches path and decodes its envelope.
func Get[T, M any](ctx context.Context, c *Client, path string, opts ...RequestOption) (*Response[T, M], error) {
	return rest.Get[T, M](ctx, c.requester, path, opts...)
}

// Post sends body (a value to JSON-encode, a *Form, or nil) to path.
func Post[T, M any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Response[T, M], error) {
	return rest.Post[T, M](ctx, c.requester, path, body, opts...)
}

// Put replaces the resource at path with body.
func Put[T, M any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Response[T, M], error) {
	return rest.Put[T, M](ctx, c.requester, path, body, opts...)
}

// Patch partially updates the resource at path.
func Patch[T, M any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Response[T, M], error) {
	return rest.Patch[T, M](ctx, c.requester, path, body, opts...)
}

// Delete removes the resource at path.
func Delete[T, M any](ctx context.Context, c *Client, path string, opts ...RequestOption) (*Response[T, M], error) {
	return rest.Delete[T, M](ctx, c.requester, path, opts...)
}
