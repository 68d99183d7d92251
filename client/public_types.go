package client

import (
	"github.com/aliefadha/tekiro-cms/client/internal/form"
	"github.com/aliefadha/tekiro-cms/client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	Upload                    = types.Upload
	CreateCategoryRequest     = types.CreateCategoryRequest
	UpdateCategoryRequest     = types.UpdateCategoryRequest
	CreateProductRequest      = types.CreateProductRequest
	UpdateProductRequest      = types.UpdateProductRequest
	CreateCatalogRequest      = types.CreateCatalogRequest
	UpdateCatalogRequest      = types.UpdateCatalogRequest
	CordlessRequest           = types.CordlessRequest
	CreateGalleryImageRequest = types.CreateGalleryImageRequest
	UpdateGalleryImageRequest = types.UpdateGalleryImageRequest
	ArticleRequest            = types.ArticleRequest

	// Domain entities
	Category     = types.Category
	CategoryRef  = types.CategoryRef
	Product      = types.Product
	Catalog      = types.Catalog
	CordlessItem = types.CordlessItem
	GalleryImage = types.GalleryImage
	Article      = types.Article
	MetaTags     = types.MetaTags
	User         = types.User

	// Responses
	DashboardCounts = types.DashboardCounts

	// Form is a multipart request body for the generic verbs.
	Form = form.Form
)

// Gallery image kinds.
const (
	GalleryWeb       = types.GalleryWeb
	GalleryInstagram = types.GalleryInstagram
)

// NewForm starts an empty multipart body.
func NewForm() *Form { return form.New() }
