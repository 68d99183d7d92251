package api

import (
	"context"

	"github.com/aliefadha/tekiro-cms/client/internal/form"
	"github.com/aliefadha/tekiro-cms/client/internal/rest"
	"github.com/aliefadha/tekiro-cms/client/internal/types"
)

// ListCategories returns all categories.
func ListCategories(ctx context.Context, r *rest.Requester) ([]types.Category, error) {
	res, err := rest.Get[[]types.Category, rest.NoData](ctx, r, categoryPath)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetCategory returns one category.
func GetCategory(ctx context.Context, r *rest.Requester, id string) (*types.Category, error) {
	if err := types.ValidateIDPresent(id, "id"); err != nil {
		return nil, err
	}
	res, err := rest.Get[types.Category, rest.NoData](ctx, r, itemPath(categoryPath, id))
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// CreateCategory uploads a new category with its image.
func CreateCategory(ctx context.Context, r *rest.Requester, req types.CreateCategoryRequest) (*types.Category, error) {
	f := form.New().AddField("name", req.Name)
	if err := addUpload(f, "file", req.File); err != nil {
		return nil, err
	}

	res, err := rest.Post[types.Category, rest.NoData](ctx, r, categoryPath, f)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// UpdateCategory renames a category and optionally replaces its image.
func UpdateCategory(ctx context.Context, r *rest.Requester, id string, req types.UpdateCategoryRequest) (*types.Category, error) {
	if err := types.ValidateIDPresent(id, "id"); err != nil {
		return nil, err
	}
	f := form.New().AddField("name", req.Name)
	if req.File != nil {
		if err := addUpload(f, "file", *req.File); err != nil {
			return nil, err
		}
	}

	res, err := rest.Patch[types.Category, rest.NoData](ctx, r, itemPath(categoryPath, id), f)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// DeleteCategory removes a category.
func DeleteCategory(ctx context.Context, r *rest.Requester, id string) error {
	if err := types.ValidateIDPresent(id, "id"); err != nil {
		return err
	}
	_, err := rest.Delete[rest.NoData, rest.NoData](ctx, r, itemPath(categoryPath, id))
	return err
}
