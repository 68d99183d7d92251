package client

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Dashboard counts the records of every section. The lists are fetched
// concurrently; the first failure cancels the rest and is returned.
func (c *Client) Dashboard(ctx context.Context) (*DashboardCounts, error) {
	var counts DashboardCounts
	g, ctx := errgroup.WithContext(ctx)

	count := func(dst *int, list func(context.Context) (int, error)) {
		g.Go(func() error {
			n, err := list(ctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	count(&counts.Categories, lenOf(c.ListCategories))
	count(&counts.Products, lenOf(c.ListProducts))
	count(&counts.Catalogs, lenOf(c.ListCatalogs))
	count(&counts.Cordless, lenOf(c.ListCordless))
	count(&counts.Articles, lenOf(c.ListArticles))
	count(&counts.WebImages, lenOf(func(ctx context.Context) ([]GalleryImage, error) {
		return c.ListGallery(ctx, GalleryWeb)
	}))
	count(&counts.InstagramImages, lenOf(func(ctx context.Context) ([]GalleryImage, error) {
		return c.ListGallery(ctx, GalleryInstagram)
	}))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	counts.GalleryImages = counts.WebImages + counts.InstagramImages
	return &counts, nil
}

func lenOf[T any](list func(context.Context) ([]T, error)) func(context.Context) (int, error) {
	return func(ctx context.Context) (int, error) {
		items, err := list(ctx)
		return len(items), err
	}
}
