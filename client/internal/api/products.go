package api

import (
	"context"
	"fmt"

	"github.com/aliefadha/tekiro-cms/client/internal/form"
	"github.com/aliefadha/tekiro-cms/client/internal/rest"
	"github.com/aliefadha/tekiro-cms/client/internal/types"
)

// ListProducts returns all products.
func ListProducts(ctx context.Context, r *rest.Requester) ([]types.Product, error) {
	res, err := rest.Get[[]types.Product, rest.NoData](ctx, r, productPath)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetProduct returns one product.
func GetProduct(ctx context.Context, r *rest.Requester, id string) (*types.Product, error) {
	if err := types.ValidateIDPresent(id, "id"); err != nil {
		return nil, err
	}
	res, err := rest.Get[types.Product, rest.NoData](ctx, r, itemPath(productPath, id))
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func productForm(name, description, categoryID, storeURL string, files []types.Upload) (*form.Form, error) {
	f := form.New().
		AddField("name", name).
		AddField("description", description).
		AddField("categoryId", categoryID)
	if storeURL != "" {
		f.AddField("storeUrl", storeURL)
	}
	for _, u := range files {
		if err := addUpload(f, "files", u); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// CreateProduct uploads a new product with its images.
func CreateProduct(ctx context.Context, r *rest.Requester, req types.CreateProductRequest) (*types.Product, error) {
	if len(req.Files) == 0 {
		return nil, fmt.Errorf("%w: at least one image is required", types.ErrMissingInput)
	}
	f, err := productForm(req.Name, req.Description, req.CategoryID, req.StoreURL, req.Files)
	if err != nil {
		return nil, err
	}

	res, err := rest.Post[types.Product, rest.NoData](ctx, r, productPath, f)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// UpdateProduct updates a product. Images are replaced only when new files
// are given.
func UpdateProduct(ctx context.Context, r *rest.Requester, id string, req types.UpdateProductRequest) (*types.Product, error) {
	if err := types.ValidateIDPresent(id, "id"); err != nil {
		return nil, err
	}
	f, err := productForm(req.Name, req.Description, req.CategoryID, req.StoreURL, req.Files)
	if err != nil {
		return nil, err
	}

	res, err := rest.Patch[types.Product, rest.NoData](ctx, r, itemPath(productPath, id), f)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// DeleteProduct removes a product.
func DeleteProduct(ctx context.Context, r *rest.Requester, id string) error {
	if err := types.ValidateIDPresent(id, "id"); err != nil {
		return err
	}
	_, err := rest.Delete[rest.NoData, rest.NoData](ctx, r, itemPath(productPath, id))
	return err
}
