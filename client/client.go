package client

import (
	"context"
	"net/http"

	"github.com/aliefadha/tekiro-cms/client/internal/api"
	"github.com/aliefadha/tekiro-cms/client/internal/origin"
	"github.com/aliefadha/tekiro-cms/client/internal/rest"
	"github.com/aliefadha/tekiro-cms/client/tokenstore"
	"golang.org/x/time/rate"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// DefaultBaseURL is the origin used when none is configured.
const DefaultBaseURL = origin.DefaultBaseURL

// ResolveBaseURL applies the client's origin rules: surrounding space and
// trailing slashes are dropped, and empty means DefaultBaseURL.
func ResolveBaseURL(override string) string { return origin.Resolve(override) }

// Client talks to the CMS backend. It is safe for concurrent use.
type Client struct {
	baseURL   string
	http      *http.Client
	store     tokenstore.Store
	requester *rest.Requester

	debug   bool
	limiter *rate.Limiter
}

// New constructs a Client. Without WithBaseURL the origin is
// origin.DefaultBaseURL; without WithTokenStore the token lives in memory.
func New(opts ...Option) (*Client, error) {
	c := &Client{http: &http.Client{}}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.store == nil {
		c.store = tokenstore.NewMemoryStore("")
	}
	c.baseURL = origin.Resolve(c.baseURL)
	c.wrapTransport()
	c.requester = rest.NewRequester(c.http, c.baseURL)
	return c, nil
}

// wrapTransport stacks the client's round trippers. From the outside in:
// token injection, rate limiting, debug dumps, then the base transport.
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	if c.debug {
		base = &debugTransport{base: base}
	}
	if c.limiter != nil {
		base = &rateLimitTransport{base: base, limiter: c.limiter}
	}
	c.http.Transport = &tokenTransport{base: base, store: c.store}
}

// BaseURL is the resolved backend origin.
func (c *Client) BaseURL() string { return c.baseURL }

// TokenStore returns the store the client reads its bearer token from.
func (c *Client) TokenStore() tokenstore.Store { return c.store }

// AssetURL turns a stored file path (image, images[], file, primaryImage)
// into an absolute URL on the client's origin.
func (c *Client) AssetURL(p string) string { return origin.AssetURL(c.baseURL, p) }

// --------------------------------------------------------------------
// Category operations - delegated to internal/api
// --------------------------------------------------------------------

// ListCategories returns all categories.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	return api.ListCategories(ctx, c.requester)
}

// GetCategory returns one category.
func (c *Client) GetCategory(ctx context.Context, id string) (*Category, error) {
	return api.GetCategory(ctx, c.requester, id)
}

// CreateCategory uploads a new category with its image.
func (c *Client) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	return api.CreateCategory(ctx, c.requester, req)
}

// UpdateCategory renames a category and optionally replaces its image.
func (c *Client) UpdateCategory(ctx context.Context, id string, req UpdateCategoryRequest) (*Category, error) {
	return api.UpdateCategory(ctx, c.requester, id, req)
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return api.DeleteCategory(ctx, c.requester, id)
}

// --------------------------------------------------------------------
// Product operations - delegated to internal/api
// --------------------------------------------------------------------

// ListProducts returns all products.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	return api.ListProducts(ctx, c.requester)
}

// GetProduct returns one product.
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	return api.GetProduct(ctx, c.requester, id)
}

// CreateProduct uploads a new product with its images.
func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	return api.CreateProduct(ctx, c.requester, req)
}

// UpdateProduct updates a product. Images are replaced only when files are given.
func (c *Client) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*Product, error) {
	return api.UpdateProduct(ctx, c.requester, id, req)
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return api.DeleteProduct(ctx, c.requester, id)
}

// --------------------------------------------------------------------
// Catalogue operations - delegated to internal/api
// --------------------------------------------------------------------

// ListCatalogs returns all catalogues.
func (c *Client) ListCatalogs(ctx context.Context) ([]Catalog, error) {
	return api.ListCatalogs(ctx, c.requester)
}

// GetCatalog returns one catalogue.
func (c *Client) GetCatalog(ctx context.Context, id string) (*Catalog, error) {
	return api.GetCatalog(ctx, c.requester, id)
}

// CreateCatalog uploads a new catalogue file.
func (c *Client) CreateCatalog(ctx context.Context, req CreateCatalogRequest) (*Catalog, error) {
	return api.CreateCatalog(ctx, c.requester, req)
}

// UpdateCatalog updates a catalogue and optionally replaces its file.
func (c *Client) UpdateCatalog(ctx context.Context, id string, req UpdateCatalogRequest) (*Catalog, error) {
	return api.UpdateCatalog(ctx, c.requester, id, req)
}

// DeleteCatalog removes a catalogue.
func (c *Client) DeleteCatalog(ctx context.Context, id string) error {
	return api.DeleteCatalog(ctx, c.requester, id)
}

// --------------------------------------------------------------------
// Cordless operations - delegated to internal/api (JSON bodies)
// --------------------------------------------------------------------

// ListCordless returns the cordless list.
func (c *Client) ListCordless(ctx context.Context) ([]CordlessItem, error) {
	return api.ListCordless(ctx, c.requester)
}

// CreateCordless adds a cordless item.
func (c *Client) CreateCordless(ctx context.Context, req CordlessRequest) (*CordlessItem, error) {
	return api.CreateCordless(ctx, c.requester, req)
}

// UpdateCordless patches a cordless item.
func (c *Client) UpdateCordless(ctx context.Context, id string, req CordlessRequest) (*CordlessItem, error) {
	return api.UpdateCordless(ctx, c.requester, id, req)
}

// DeleteCordless removes a cordless item.
func (c *Client) DeleteCordless(ctx context.Context, id string) error {
	return api.DeleteCordless(ctx, c.requester, id)
}

// --------------------------------------------------------------------
// Gallery operations - delegated to internal/api
// --------------------------------------------------------------------

// ListGallery returns the images of one kind (GalleryWeb or GalleryInstagram).
func (c *Client) ListGallery(ctx context.Context, kind string) ([]GalleryImage, error) {
	return api.ListGallery(ctx, c.requester, kind)
}

// CreateGalleryImage uploads an image. The file must be an image; Instagram
// images also need a link.
func (c *Client) CreateGalleryImage(ctx context.Context, kind string, req CreateGalleryImageRequest) (*GalleryImage, error) {
	return api.CreateGalleryImage(ctx, c.requester, kind, req)
}

// UpdateGalleryImage updates an image and optionally replaces its file.
func (c *Client) UpdateGalleryImage(ctx context.Context, kind, id string, req UpdateGalleryImageRequest) (*GalleryImage, error) {
	return api.UpdateGalleryImage(ctx, c.requester, kind, id, req)
}

// DeleteGalleryImage removes an image.
func (c *Client) DeleteGalleryImage(ctx context.Context, kind, id string) error {
	return api.DeleteGalleryImage(ctx, c.requester, kind, id)
}

// --------------------------------------------------------------------
// Article operations - delegated to internal/api
// --------------------------------------------------------------------

// ListArticles returns all articles.
func (c *Client) ListArticles(ctx context.Context) ([]Article, error) {
	return api.ListArticles(ctx, c.requester)
}

// GetArticle returns one article.
func (c *Client) GetArticle(ctx context.Context, id string) (*Article, error) {
	return api.GetArticle(ctx, c.requester, id)
}

// CreateArticle creates an article.
func (c *Client) CreateArticle(ctx context.Context, req ArticleRequest) (*Article, error) {
	return api.CreateArticle(ctx, c.requester, req)
}

// UpdateArticle replaces an article's content.
func (c *Client) UpdateArticle(ctx context.Context, id string, req ArticleRequest) (*Article, error) {
	return api.UpdateArticle(ctx, c.requester, id, req)
}

// DeleteArticle removes an article.
func (c *Client) DeleteArticle(ctx context.Context, id string) error {
	return api.DeleteArticle(ctx, c.requester, id)
}
