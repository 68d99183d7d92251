package api

import (
	"context"
	"fmt"
	"testing"

	"github.com/aliefadha/tekiro-cms/client/internal/rest"
	"github.com/aliefadha/tekiro-cms/client/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemEndpoints_RejectEmptyID(t *testing.T) {
	t.Parallel()
	png := types.Upload{Name: "x.png", Content: pngBytes}

	calls := []struct {
		name string
		call func(ctx context.Context, r *rest.Requester, id string) error
	}{
		{"GetCategory", func(ctx context.Context, r *rest.Requester, id string) error { _, err := GetCategory(ctx, r, id); return err }},
		{"UpdateCategory", func(ctx context.Context, r *rest.Requester, id string) error {
			_, err := UpdateCategory(ctx, r, id, types.UpdateCategoryRequest{Name: "x"})
			return err
		}},
		{"DeleteCategory", func(ctx context.Context, r *rest.Requester, id string) error { return DeleteCategory(ctx, r, id) }},
		{"GetProduct", func(ctx context.Context, r *rest.Requester, id string) error { _, err := GetProduct(ctx, r, id); return err }},
		{"UpdateProduct", func(ctx context.Context, r *rest.Requester, id string) error {
			_, err := UpdateProduct(ctx, r, id, types.UpdateProductRequest{Name: "x", CategoryID: "c1"})
			return err
		}},
		{"DeleteProduct", func(ctx context.Context, r *rest.Requester, id string) error { return DeleteProduct(ctx, r, id) }},
		{"GetCatalog", func(ctx context.Context, r *rest.Requester, id string) error { _, err := GetCatalog(ctx, r, id); return err }},
		{"UpdateCatalog", func(ctx context.Context, r *rest.Requester, id string) error {
			_, err := UpdateCatalog(ctx, r, id, types.UpdateCatalogRequest{Title: "x", CategoryID: "c1"})
			return err
		}},
		{"DeleteCatalog", func(ctx context.Context, r *rest.Requester, id string) error { return DeleteCatalog(ctx, r, id) }},
		{"UpdateCordless", func(ctx context.Context, r *rest.Requester, id string) error {
			_, err := UpdateCordless(ctx, r, id, types.CordlessRequest{Title: "x"})
			return err
		}},
		{"DeleteCordless", func(ctx context.Context, r *rest.Requester, id string) error { return DeleteCordless(ctx, r, id) }},
		{"UpdateGalleryImage", func(ctx context.Context, r *rest.Requester, id string) error {
			_, err := UpdateGalleryImage(ctx, r, types.GalleryWeb, id, types.UpdateGalleryImageRequest{Title: "x", File: &png})
			return err
		}},
		{"DeleteGalleryImage", func(ctx context.Context, r *rest.Requester, id string) error {
			return DeleteGalleryImage(ctx, r, types.GalleryInstagram, id)
		}},
		{"GetArticle", func(ctx context.Context, r *rest.Requester, id string) error { _, err := GetArticle(ctx, r, id); return err }},
		{"UpdateArticle", func(ctx context.Context, r *rest.Requester, id string) error {
			_, err := UpdateArticle(ctx, r, id, types.ArticleRequest{Title: "x"})
			return err
		}},
		{"DeleteArticle", func(ctx context.Context, r *rest.Requester, id string) error { return DeleteArticle(ctx, r, id) }},
	}

	for _, tc := range calls {
		for _, id := range []string{"", "   "} {
			t.Run(fmt.Sprintf("%s/%q", tc.name, id), func(t *testing.T) {
				srv, r := newBackend(t)
				err := tc.call(context.Background(), r, id)
				require.ErrorIs(t, err, types.ErrMissingInput)
				assert.Empty(t, srv.Requests(), "nothing is sent without an id")
			})
		}
	}
}

func TestCreateEndpoints_RejectEmptyUpload(t *testing.T) {
	t.Parallel()
	empty := types.Upload{}

	calls := []struct {
		name string
		call func(ctx context.Context, r *rest.Requester) error
	}{
		{"CreateCategory", func(ctx context.Context, r *rest.Requester) error {
			_, err := CreateCategory(ctx, r, types.CreateCategoryRequest{Name: "x"})
			return err
		}},
		{"UpdateCategory", func(ctx context.Context, r *rest.Requester) error {
			_, err := UpdateCategory(ctx, r, "c1", types.UpdateCategoryRequest{Name: "x", File: &empty})
			return err
		}},
		{"CreateProductNoFiles", func(ctx context.Context, r *rest.Requester) error {
			_, err := CreateProduct(ctx, r, types.CreateProductRequest{Name: "x", CategoryID: "c1"})
			return err
		}},
		{"CreateProductEmptyFile", func(ctx context.Context, r *rest.Requester) error {
			_, err := CreateProduct(ctx, r, types.CreateProductRequest{Name: "x", CategoryID: "c1", Files: []types.Upload{empty}})
			return err
		}},
		{"UpdateProductEmptyFile", func(ctx context.Context, r *rest.Requester) error {
			_, err := UpdateProduct(ctx, r, "p1", types.UpdateProductRequest{Name: "x", CategoryID: "c1", Files: []types.Upload{empty}})
			return err
		}},
		{"CreateCatalog", func(ctx context.Context, r *rest.Requester) error {
			_, err := CreateCatalog(ctx, r, types.CreateCatalogRequest{Title: "x", CategoryID: "c1"})
			return err
		}},
		{"CreateGalleryImage", func(ctx context.Context, r *rest.Requester) error {
			_, err := CreateGalleryImage(ctx, r, types.GalleryWeb, types.CreateGalleryImageRequest{Title: "x"})
			return err
		}},
		{"UpdateArticleEmptyFile", func(ctx context.Context, r *rest.Requester) error {
			_, err := UpdateArticle(ctx, r, "a1", types.ArticleRequest{Title: "x", File: &empty})
			return err
		}},
	}

	for _, tc := range calls {
		t.Run(tc.name, func(t *testing.T) {
			srv, r := newBackend(t)
			err := tc.call(context.Background(), r)
			require.ErrorIs(t, err, types.ErrMissingInput)
			assert.Empty(t, srv.Requests(), "nothing is sent without a file")
		})
	}
}
