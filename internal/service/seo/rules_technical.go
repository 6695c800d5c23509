package seo

import (
	"fmt"
	"net/url"
	"strings"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/textkit"
)

func technicalRules(d *document) []models.Finding {
	var out []models.Finding

	if f, ok := canonical(d); ok {
		out = append(out, f)
	}

	robots := strings.ToLower(d.input.Robots)
	switch {
	case strings.Contains(robots, "noindex"):
		out = append(out, warn("robots-index", "Indexing", "The page is set to noindex and will not appear in search results.",
			"Remove noindex unless the page is meant to stay hidden."))
	case strings.Contains(robots, "nofollow"):
		out = append(out, warn("robots-index", "Indexing", "Links on the page are set to nofollow.",
			"Remove nofollow so link authority flows to linked pages."))
	default:
		out = append(out, pass("robots-index", "Indexing", "The page can be indexed."))
	}

	if d.title != "" && d.cfg.SiteName != "" {
		if d.norm(d.title) == d.norm(d.cfg.SiteName) {
			out = append(out, fail("title-not-site-name", "Title is not the site name",
				"The meta title is just the site name.",
				"Describe the page itself in the title."))
		} else {
			out = append(out, pass("title-not-site-name", "Title is not the site name", "The title describes the page."))
		}
	}

	if d.slug != "" && !d.input.IsGlobal {
		depth := len(strings.Split(d.slug, "/"))
		if depth > d.th.SlugMaxDepth {
			out = append(out, warn("slug-depth", "URL depth",
				fmt.Sprintf("The URL is %d levels deep (maximum %d).", depth, d.th.SlugMaxDepth),
				"Keep important pages close to the root."))
		} else {
			out = append(out, pass("slug-depth", "URL depth", fmt.Sprintf("The URL is %d levels deep.", depth)))
		}
	}
	return out
}

// canonical checks an explicit canonical URL; pages without one canonicalize to
// themselves and get no finding.
func canonical(d *document) (models.Finding, bool) {
	raw := strings.TrimSpace(d.input.CanonicalURL)
	if raw == "" {
		return models.Finding{}, false
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https") {
		return fail("canonical-url", "Canonical URL", fmt.Sprintf("The canonical URL %q is not valid.", raw),
			"Use an absolute http(s) URL or a site path."), true
	}
	target, internal := textkit.NormalizeToSlug(raw, d.cfg.SiteHost)
	if !internal {
		return warn("canonical-url", "Canonical URL", "The canonical URL points to another site.",
			"Cross-domain canonicals remove this page from search results; check this is intended."), true
	}
	self := d.slug
	if self == "" {
		self = textkit.HomeSlug
	}
	if textkit.SlugKey(target) != textkit.SlugKey(self) {
		return warn("canonical-url", "Canonical URL",
			fmt.Sprintf("The canonical URL points to /%s instead of this page.", target),
			"Only canonicalize duplicates to the preferred version."), true
	}
	return pass("canonical-url", "Canonical URL", "The canonical URL points to this page."), true
}
