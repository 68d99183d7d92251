package types

// ------------------------------
// Response Types
// ------------------------------

// LoginResponse is the data of a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ValidateTokenResponse is the data of /auth/validate-token.
type ValidateTokenResponse struct {
	Valid bool `json:"valid"`
	User  User `json:"user"`
}

// DashboardCounts summarizes how many records each section holds.
type DashboardCounts struct {
	Categories      int `json:"categories"`
	Products        int `json:"products"`
	Catalogs        int `json:"catalogs"`
	WebImages       int `json:"webImages"`
	InstagramImages int `json:"instagramImages"`
	GalleryImages   int `json:"galleryImages"`
	Articles        int `json:"articles"`
	Cordless        int `json:"cordless"`
}
