package api

import (
	"context"

	"github.com/aliefadha/tekiro-cms/client/internal/rest"
	"github.com/aliefadha/tekiro-cms/client/internal/types"
)

// ListCordless returns the cordless list.
func ListCordless(ctx context.Context, r *rest.Requester) ([]types.CordlessItem, error) {
	res, err := rest.Get[[]types.CordlessItem, rest.NoData](ctx, r, cordlessPath)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// CreateCordless adds an item. The body is sent as JSON.
func CreateCordless(ctx context.Context, r *rest.Requester, req types.CordlessRequest) (*types.CordlessItem, error) {
	res, err := rest.Post[types.CordlessItem, rest.NoData](ctx, r, cordlessPath, req)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// UpdateCordless patches an item with a JSON body.
func UpdateCordless(ctx context.Context, r *rest.Requester, id string, req types.CordlessRequest) (*types.CordlessItem, error) {
	if err := types.ValidateIDPresent(id, "id"); err != nil {
		return nil, err
	}
	body := struct {
		ID string `json:"id"`
		types.CordlessRequest
	}{ID: id, CordlessRequest: req}

	res, err := rest.Patch[types.CordlessItem, rest.NoData](ctx, r, itemPath(cordlessPath, id), body)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// DeleteCordless removes an item.
func DeleteCordless(ctx context.Context, r *rest.Requester, id string) error {
	if err := types.ValidateIDPresent(id, "id"); err != nil {
		return err
	}
	_, err := rest.Delete[rest.NoData, rest.NoData](ctx, r, itemPath(cordlessPath, id))
	return err
}
