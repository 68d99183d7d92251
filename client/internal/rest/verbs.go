package rest

import (
	"context"
	"net/http"
)

func build(method, path string, body any, opts []Option) Request {
	req := Request{Method: method, Path: path, Body: body}
	for _, opt := range opts {
		opt(&req)
	}
	return req
}

// Get fetches path.
func Get[T, M any](ctx context.Context, r *Requester, path string, opts ...Option) (*Response[T, M], error) {
	return Do[T, M](ctx, r, build(http.MethodGet, path, nil, opts))
}

// Post sends body to path.
func Post[T, M any](ctx context.Context, r *Requester, path string, body any, opts ...Option) (*Response[T, M], error) {
	return Do[T, M](ctx, r, build(http.MethodPost, path, body, opts))
}

// Put replaces the resource at path with body.
func Put[T, M any](ctx context.Context, r *Requester, path string, body any, opts ...Option) (*Response[T, M], error) {
	return Do[T, M](ctx, r, build(http.MethodPut, path, body, opts))
}

// Patch partially updates the resource at path.
func Patch[T, M any](ctx context.Context, r *Requester, path string, body any, opts ...Option) (*Response[T, M], error) {
	return Do[T, M](ctx, r, build(http.MethodPatch, path, body, opts))
}

// Delete removes the resource at path.
func Delete[T, M any](ctx context.Context, r *Requester, path string, opts ...Option) (*Response[T, M], error) {
	return Do[T, M](ctx, r, build(http.MethodDelete, path, nil, opts))
}
