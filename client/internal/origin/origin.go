// Package origin resolves the backend origin and turns relative asset paths
// into absolute URLs.
package origin

import "strings"

// DefaultBaseURL is used when no override is configured.
const DefaultBaseURL = "http://localhost:3003"

// Resolve returns the effective backend origin: the override when set, else
// DefaultBaseURL. Trailing slashes are stripped.
func Resolve(override string) string {
	base := strings.TrimSpace(override)
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/")
}

// IsAbsolute reports whether p already carries an http or https scheme.
func IsAbsolute(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

// AssetURL resolves an uploaded file path against base. Absolute URLs are
// returned unchanged and an empty path stays empty.
func AssetURL(base, p string) string {
	if p == "" {
		return ""
	}
	if IsAbsolute(p) {
		return p
	}
	return join(base, p)
}

// Join builds a request URL. Paths that already start with "http" are used
// as-is; anything else is appended to base.
func Join(base, p string) string {
	if strings.HasPrefix(p, "http") {
		return p
	}
	return join(base, p)
}

func join(base, p string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/")
}
