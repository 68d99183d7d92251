package types

// ------------------------------
// Request Types
// ------------------------------

// Upload is a file to send in a multipart request. Exactly one of Path or
// Content should be set; Name defaults to the base name of Path.
type Upload struct {
	Name    string
	Path    string
	Content []byte
}

// CreateCategoryRequest holds parameters for a new category.
type CreateCategoryRequest struct {
	Name string
	File Upload
}

// UpdateCategoryRequest replaces the name and, when File is set, the image.
type UpdateCategoryRequest struct {
	Name string
	File *Upload
}

// CreateProductRequest holds parameters for a new product.
type CreateProductRequest struct {
	Name        string
	Description string
	CategoryID  string
	StoreURL    string
	Files       []Upload
}

// UpdateProductRequest updates a product; images are replaced only when Files
// is non-empty.
type UpdateProductRequest struct {
	Name        string
	Description string
	CategoryID  string
	StoreURL    string
	Files       []Upload
}

// CreateCatalogRequest holds parameters for a new catalogue.
type CreateCatalogRequest struct {
	Title      string
	CategoryID string
	File       Upload
}

// UpdateCatalogRequest updates a catalogue; File is optional.
type UpdateCatalogRequest struct {
	Title      string
	CategoryID string
	File       *Upload
}

// CordlessRequest is the JSON body for creating or updating a cordless item.
type CordlessRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// CreateGalleryImageRequest adds a gallery image. Link is required for
// Instagram images and ignored for web images.
type CreateGalleryImageRequest struct {
	Title string
	Link  string
	File  Upload
}

// UpdateGalleryImageRequest updates a gallery image; File is optional.
type UpdateGalleryImageRequest struct {
	Title string
	Link  string
	File  *Upload
}

// ArticleRequest creates or updates an article. Optional fields are sent only
// when non-empty; PublishedAt is sent when non-nil.
type ArticleRequest struct {
	Title          string
	Excerpt        string
	ContentHTML    string
	File           *Upload
	PublishedAt    *string
	SEOTitle       string
	SEODescription string
	SEOKeywords    string
	MetaTags       *MetaTags
}

// LoginRequest is the credentials body for /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
