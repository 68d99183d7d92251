package api

import (
	"context"
	"fmt"

	"github.com/aliefadha/tekiro-cms/client/internal/form"
	"github.com/aliefadha/tekiro-cms/client/internal/rest"
	"github.com/aliefadha/tekiro-cms/client/internal/types"
)

// galleryCollection maps an image kind to its endpoint.
func galleryCollection(kind string) (string, error) {
	switch kind {
	case types.GalleryWeb:
		return galleryPath, nil
	case types.GalleryInstagram:
		return instagramPath, nil
	default:
		return "", fmt.Errorf("unknown gallery kind %q (want %q or %q)", kind, types.GalleryWeb, types.GalleryInstagram)
	}
}

// ListGallery returns the images of one kind.
func ListGallery(ctx context.Context, r *rest.Requester, kind string) ([]types.GalleryImage, error) {
	collection, err := galleryCollection(kind)
	if err != nil {
		return nil, err
	}
	res, err := rest.Get[[]types.GalleryImage, rest.NoData](ctx, r, collection)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// CreateGalleryImage uploads a new image. Instagram images require a link.
func CreateGalleryImage(ctx context.Context, r *rest.Requester, kind string, req types.CreateGalleryImageRequest) (*types.GalleryImage, error) {
	collection, err := galleryCollection(kind)
	if err != nil {
		return nil, err
	}
	if kind == types.GalleryInstagram && req.Link == "" {
		return nil, fmt.Errorf("instagram image requires a link")
	}

	f := form.New().AddField("title", req.Title)
	if kind == types.GalleryInstagram {
		f.AddField("link", req.Link)
	}
	if err := addUpload(f, "file", req.File); err != nil {
		return nil, err
	}
	if err := f.RequireImage(); err != nil {
		return nil, err
	}

	res, err := rest.Post[types.GalleryImage, rest.NoData](ctx, r, collection, f)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// UpdateGalleryImage updates an image's title (and link for Instagram),
// optionally replacing the file.
func UpdateGalleryImage(ctx context.Context, r *rest.Requester, kind, id string, req types.UpdateGalleryImageRequest) (*types.GalleryImage, error) {
	collection, err := galleryCollection(kind)
	if err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(id, "id"); err != nil {
		return nil, err
	}
	if kind == types.GalleryInstagram && req.Link == "" {
		return nil, fmt.Errorf("instagram image requires a link")
	}

	f := form.New().AddField("title", req.Title)
	if kind == types.GalleryInstagram {
		f.AddField("link", req.Link)
	}
	if req.File != nil {
		if err := addUpload(f, "file", *req.File); err != nil {
			return nil, err
		}
		if err := f.RequireImage(); err != nil {
			return nil, err
		}
	}

	res, err := rest.Patch[types.GalleryImage, rest.NoData](ctx, r, itemPath(collection, id), f)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// DeleteGalleryImage removes an image.
func DeleteGalleryImage(ctx context.Context, r *rest.Requester, kind, id string) error {
	collection, err := galleryCollection(kind)
	if err != nil {
		return err
	}
	if err := types.ValidateIDPresent(id, "id"); err != nil {
		return err
	}
	_, err = rest.Delete[rest.NoData, rest.NoData](ctx, r, itemPath(collection, id))
	return err
}
