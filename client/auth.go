package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/aliefadha/tekiro-cms/client/internal/api"
	apierrors "github.com/aliefadha/tekiro-cms/client/internal/errors"
	"github.com/aliefadha/tekiro-cms/client/internal/types"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// authFailedMessage replaces an empty backend message on login failure.
const authFailedMessage = "Authentication failed"

// Login exchanges credentials for a token, stores it, and returns the user.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	res, err := api.Login(ctx, c.requester, types.LoginRequest{Email: email, Password: password})
	if err != nil {
		authEventsTotal.WithLabelValues(eventLoginFailed).Inc()
		if apiErr, ok := apierrors.AsAPIError(err); ok && apiErr.Message() == "" {
			return nil, apierrors.NewAPIError(apiErr.StatusCode(), authFailedMessage, apiErr.Details())
		}
		return nil, err
	}
	if res.Token == "" {
		authEventsTotal.WithLabelValues(eventLoginFailed).Inc()
		return nil, apierrors.NewAPIError(http.StatusUnauthorized, authFailedMessage, nil)
	}
	if err := c.store.Set(res.Token); err != nil {
		return nil, pkgerrors.Wrap(err, "store auth token")
	}
	authEventsTotal.WithLabelValues(eventLoginSucceeded).Inc()
	return &res.User, nil
}

// Logout forgets the stored token. The backend keeps no session state.
func (c *Client) Logout() error {
	authEventsTotal.WithLabelValues(eventLogout).Inc()
	return c.store.Delete()
}

// ValidateToken checks the stored token with the backend and returns its
// user. A rejected token, or any failure to check it, removes the token.
func (c *Client) ValidateToken(ctx context.Context) (*User, error) {
	token, err := c.store.Get()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "read auth token")
	}
	if token == "" {
		return nil, ErrNoToken
	}

	res, err := api.ValidateToken(ctx, c.requester)
	if err != nil {
		c.dropToken(err)
		return nil, err
	}
	if !res.Valid {
		c.dropToken(ErrInvalidToken)
		return nil, ErrInvalidToken
	}
	authEventsTotal.WithLabelValues(eventTokenValid).Inc()
	return &res.User, nil
}

func (c *Client) dropToken(cause error) {
	authEventsTotal.WithLabelValues(eventTokenInvalidated).Inc()
	if err := c.store.Delete(); err != nil {
		log.Warn().Err(err).Msg("failed to remove auth token")
	}
	if !errors.Is(cause, ErrInvalidToken) {
		log.Debug().Err(cause).Msg("token validation failed")
	}
}
