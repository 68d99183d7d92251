package api

import (
	"context"

	"github.com/aliefadha/tekiro-cms/client/internal/rest"
	"github.com/aliefadha/tekiro-cms/client/internal/types"
)

// Login exchanges credentials for a token.
func Login(ctx context.Context, r *rest.Requester, req types.LoginRequest) (*types.LoginResponse, error) {
	res, err := rest.Post[types.LoginResponse, rest.NoData](ctx, r, "/auth/login", req)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// ValidateToken asks the backend whether the attached token is still valid.
func ValidateToken(ctx context.Context, r *rest.Requester) (*types.ValidateTokenResponse, error) {
	res, err := rest.Get[types.ValidateTokenResponse, rest.NoData](ctx, r, "/auth/validate-token")
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}
