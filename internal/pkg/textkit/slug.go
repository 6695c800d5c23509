package textkit

import (
	"net/url"
	"strings"
)

// HomeSlug is the sentinel slug of the site root.
const HomeSlug = "home"

var nonLinkSchemes = []string{"mailto:", "tel:", "sms:", "javascript:", "data:", "ftp:"}

// NormalizeToSlug maps an internal link onto the slug it points at. Relative
// paths are internal; absolute URLs are internal only when their host is one of
// siteHosts. It returns false for external, mailto/tel and anchor-only links.
func NormalizeToSlug(rawURL string, siteHosts ...string) (string, bool) {
	u := strings.TrimSpace(rawURL)
	if u == "" {
		return HomeSlug, true
	}
	if strings.HasPrefix(u, "#") {
		return "", false
	}
	lower := strings.ToLower(u)
	for _, scheme := range nonLinkSchemes {
		if strings.HasPrefix(lower, scheme) {
			return "", false
		}
	}

	path := u
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(u, "//") {
		parsed, err := url.Parse(u)
		if err != nil || !isSiteHost(parsed.Hostname(), siteHosts) {
			return "", false
		}
		path = parsed.EscapedPath()
	} else if i := strings.Index(u, ":"); i > 0 && !strings.ContainsAny(u[:i], "/?#") {
		// some other scheme
		return "", false
	}

	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	path = strings.TrimPrefix(path, "./")
	path = strings.Trim(path, "/")
	if path == "" {
		return HomeSlug, true
	}
	return path, true
}

// IsHomeSlug reports whether slug names the site root.
func IsHomeSlug(slug string) bool {
	switch SlugKey(slug) {
	case "", HomeSlug, "index", "accueil":
		return true
	}
	return false
}

func isSiteHost(host string, siteHosts []string) bool {
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	if host == "" {
		return false
	}
	for _, h := range siteHosts {
		h = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(h)), "www.")
		if h != "" && h == host {
			return true
		}
	}
	return false
}
