package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aliefadha/tekiro-cms/client/tokenstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{ tokenstore.Store }

func (failingStore) Get() (string, error) { return "", errors.New("disk on fire") }

func captureAuth(store tokenstore.Store, explicit string) (string, *http.Request, error) {
	var seen string
	t := &tokenTransport{store: store, base: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = r.Header.Get("Authorization")
		return okResponse(r)
	})}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com/category", http.NoBody)
	if explicit != "" {
		req.Header.Set("Authorization", explicit)
	}
	_, err := t.RoundTrip(req)
	return seen, req, err
}

func TestTokenTransport(t *testing.T) {
	t.Run("stored token attached", func(t *testing.T) {
		got, req, err := captureAuth(tokenstore.NewMemoryStore("abc"), "")
		require.NoError(t, err)
		assert.Equal(t, "Bearer abc", got)
		assert.Empty(t, req.Header.Get("Authorization"), "caller's request must not be mutated")
	})
	t.Run("explicit header wins", func(t *testing.T) {
		got, _, err := captureAuth(tokenstore.NewMemoryStore("abc"), "Bearer other")
		require.NoError(t, err)
		assert.Equal(t, "Bearer other", got)
	})
	t.Run("explicit empty header wins", func(t *testing.T) {
		var seen []string
		tr := &tokenTransport{store: tokenstore.NewMemoryStore("abc"), base: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			seen = r.Header.Values("Authorization")
			return okResponse(r)
		})}
		req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com/category", http.NoBody)
		req.Header.Set("Authorization", "")
		_, err := tr.RoundTrip(req)
		require.NoError(t, err)
		assert.Equal(t, []string{""}, seen)
	})
	t.Run("no token", func(t *testing.T) {
		got, _, err := captureAuth(tokenstore.NewMemoryStore(""), "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
	t.Run("no store", func(t *testing.T) {
		got, _, err := captureAuth(nil, "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
	t.Run("store error sends unauthenticated", func(t *testing.T) {
		got, _, err := captureAuth(failingStore{}, "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestTokenTransport_ReadsTokenPerRequest(t *testing.T) {
	store := tokenstore.NewMemoryStore("first")
	var seen []string
	c, err := New(WithTokenStore(store), WithHTTPClient(&http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = append(seen, r.Header.Get("Authorization"))
		return okResponse(r)
	})}))
	require.NoError(t, err)

	do := func() {
		req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
		_, err := c.http.Do(req)
		require.NoError(t, err)
	}
	do()
	require.NoError(t, store.Set("second"))
	do()
	require.NoError(t, c.Logout())
	do()

	assert.Equal(t, []string{"Bearer first", "Bearer second", ""}, seen)
}

func TestWithHeader_EmptyAuthorizationSuppressesToken(t *testing.T) {
	var seen [][]string
	c, err := New(
		WithBaseURL("http://cms.test"),
		WithTokenStore(tokenstore.NewMemoryStore("stored")),
		WithHTTPClient(&http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			seen = append(seen, r.Header.Values("Authorization"))
			return okResponse(r)
		})}),
	)
	require.NoError(t, err)

	_, err = Get[NoData, NoData](context.Background(), c, "/auth/validate-token", WithHeader("Authorization", ""))
	require.NoError(t, err)
	_, err = Get[NoData, NoData](context.Background(), c, "/auth/validate-token")
	require.NoError(t, err)

	assert.Equal(t, [][]string{{""}, {"Bearer stored"}}, seen)
}
