package api

import (
	"bytes"
	"net/url"
	"path/filepath"

	"github.com/aliefadha/tekiro-cms/client/internal/form"
	"github.com/aliefadha/tekiro-cms/client/internal/types"
)

// Resource paths on the backend.
const (
	categoryPath  = "/category"
	productPath   = "/product"
	catalogPath   = "/catalogue"
	cordlessPath  = "/cordless"
	galleryPath   = "/gallery"
	instagramPath = "/instagram"
	articlePath   = "/article"
)

func itemPath(collection, id string) string {
	return collection + "/" + url.PathEscape(id)
}

// addUpload appends u as a file part named field. In-memory content wins over
// Path; Name overrides the filename sent to the backend. An empty upload is
// rejected before anything is added.
func addUpload(f *form.Form, field string, u types.Upload) error {
	if err := types.ValidateUpload(u, field); err != nil {
		return err
	}
	name := u.Name
	if name == "" {
		name = filepath.Base(u.Path)
	}
	if len(u.Content) == 0 {
		f.AddFilePathAs(field, name, u.Path)
		return nil
	}
	f.AddFile(field, name, bytes.NewReader(u.Content))
	return nil
}
