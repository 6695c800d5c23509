package seo

import (
	"fmt"
	"strings"

	"content_intelligence/internal/domain/models"
)

func linkingRules(d *document) []models.Finding {
	var out []models.Finding
	internal, external := d.splitLinks()

	if n := len(internal); n < d.th.MinInternalLinks {
		out = append(out, warn("internal-links", "Internal links",
			fmt.Sprintf("The page has %d internal links (at least %d recommended).", n, d.th.MinInternalLinks),
			"Link to related pages on the site to spread authority and help navigation."))
	} else {
		out = append(out, pass("internal-links", "Internal links", fmt.Sprintf("The page has %d internal links.", n)))
	}

	if n := len(external); n < d.th.MinExternalLinks {
		out = append(out, warn("external-links", "External links",
			fmt.Sprintf("The page has %d external links (at least %d recommended).", n, d.th.MinExternalLinks),
			"Cite an authoritative external source where relevant."))
	} else {
		out = append(out, pass("external-links", "External links", fmt.Sprintf("The page has %d external links.", n)))
	}

	if len(d.links) > 0 {
		var generic []string
		for _, l := range d.links {
			text := d.norm(l.Text)
			if d.lex.GenericAnchors[text] {
				generic = append(generic, l.Text)
			}
		}
		if len(generic) > 0 {
			out = append(out, warn("link-anchor-text", "Link anchor text",
				fmt.Sprintf("%d links use generic anchor text such as %q.", len(generic), generic[0]),
				"Describe the destination in the anchor text."))
		} else {
			out = append(out, pass("link-anchor-text", "Link anchor text", "Link anchors are descriptive."))
		}
	}

	empty := d.emptyLinks
	for _, l := range d.links {
		if strings.TrimSpace(l.URL) == "#" {
			empty++
		}
	}
	if empty > 0 {
		out = append(out, fail("empty-links", "Empty links",
			fmt.Sprintf("%d links have no destination.", empty),
			"Set a URL on every link or remove it."))
	} else if len(d.links) > 0 {
		out = append(out, pass("empty-links", "Empty links", "Every link has a destination."))
	}
	return out
}
