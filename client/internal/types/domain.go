package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Category groups products and catalogues.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// CategoryRef is the category summary embedded in products and catalogues.
type CategoryRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Product is a store item with one or more images.
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Images      []string    `json:"images"`
	StoreURL    string      `json:"storeUrl"`
	CategoryID  string      `json:"categoryId"`
	Category    CategoryRef `json:"category"`
}

// Catalog is a downloadable catalogue file (usually a PDF).
type Catalog struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	File       string      `json:"file"`
	CategoryID string      `json:"categoryId"`
	Category   CategoryRef `json:"category"`
}

// CordlessItem is an entry of the flat cordless list.
type CordlessItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// Gallery image kinds.
const (
	GalleryWeb       = "web"
	GalleryInstagram = "instagram"
)

// GalleryImage is a web or Instagram gallery entry. Link is only set for
// Instagram images.
type GalleryImage struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Link  string `json:"link,omitempty"`
	Image string `json:"image"`
	Type  string `json:"type"`
}

// MetaTags are the article's HTML meta overrides.
type MetaTags struct {
	Title       string `json:"title,omitempty"`
	Keywords    string `json:"keywords,omitempty"`
	Description string `json:"description,omitempty"`
}

// Article is a published or draft post.
type Article struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Excerpt        string    `json:"excerpt"`
	ContentHTML    string    `json:"contentHtml"`
	PrimaryImage   *string   `json:"primaryImage"`
	PublishedAt    *string   `json:"publishedAt"`
	SEOTitle       string    `json:"seoTitle,omitempty"`
	SEODescription string    `json:"seoDescription,omitempty"`
	SEOKeywords    string    `json:"seoKeywords,omitempty"`
	MetaTags       *MetaTags `json:"metaTags,omitempty"`
}

// User is the authenticated staff member.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token,omitempty"`
}
