// Package crawl — URL filtering rules.
package crawl

import (
	"net/url"
	"path"
	"strings"
)

// assetExtensions are file extensions that never hold page content.
var assetExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true,
	".css": true, ".js": true, ".mjs": true, ".map": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".mp4": true, ".webm": true, ".mp3": true,
	".zip": true, ".tar": true, ".gz": true,
	".pdf": true, ".xml": true, ".json": true,
}

// IsPageURL reports whether the URL is a same-domain documentation
// page rather than a static asset or an external link.
func IsPageURL(rawURL, domain string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if parsed.Host != domain {
		return false
	}
	ext := strings.ToLower(path.Ext(parsed.Path))
	return !assetExtensions[ext]
}

// NormalizeURL strips fragments and trailing slashes for
// deduplication.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	parsed.Fragment = ""
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}
	return parsed.String()
}
