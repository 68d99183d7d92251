package api

import (
	"context"

	"github.com/aliefadha/tekiro-cms/client/internal/form"
	"github.com/aliefadha/tekiro-cms/client/internal/rest"
	"github.com/aliefadha/tekiro-cms/client/internal/types"
)

// ListCatalogs returns all catalogues.
func ListCatalogs(ctx context.Context, r *rest.Requester) ([]types.Catalog, error) {
	res, err := rest.Get[[]types.Catalog, rest.NoData](ctx, r, catalogPath)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetCatalog returns one catalogue.
func GetCatalog(ctx context.Context, r *rest.Requester, id string) (*types.Catalog, error) {
	if err := types.ValidateIDPresent(id, "id"); err != nil {
		return nil, err
	}
	res, err := rest.Get[types.Catalog, rest.NoData](ctx, r, itemPath(catalogPath, id))
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// CreateCatalog uploads a new catalogue file.
func CreateCatalog(ctx context.Context, r *rest.Requester, req types.CreateCatalogRequest) (*types.Catalog, error) {
	f := form.New().
		AddField("title", req.Title).
		AddField("categoryId", req.CategoryID)
	if err := addUpload(f, "file", req.File); err != nil {
		return nil, err
	}

	res, err := rest.Post[types.Catalog, rest.NoData](ctx, r, catalogPath, f)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// UpdateCatalog updates a catalogue and optionally replaces its file.
func UpdateCatalog(ctx context.Context, r *rest.Requester, id string, req types.UpdateCatalogRequest) (*types.Catalog, error) {
	if err := types.ValidateIDPresent(id, "id"); err != nil {
		return nil, err
	}
	f := form.New().
		AddField("title", req.Title).
		AddField("categoryId", req.CategoryID)
	if req.File != nil {
		if err := addUpload(f, "file", *req.File); err != nil {
			return nil, err
		}
	}

	res, err := rest.Patch[types.Catalog, rest.NoData](ctx, r, itemPath(catalogPath, id), f)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// DeleteCatalog removes a catalogue.
func DeleteCatalog(ctx context.Context, r *rest.Requester, id string) error {
	if err := types.ValidateIDPresent(id, "id"); err != nil {
		return err
	}
	_, err := rest.Delete[rest.NoData, rest.NoData](ctx, r, itemPath(catalogPath, id))
	return err
}
