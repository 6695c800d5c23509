package seo

import (
	"fmt"
	"strings"

	"content_intelligence/internal/domain/models"
)

// cornerstoneRules holds pillar content to stricter limits. Other documents
// get no findings from this group.
func cornerstoneRules(d *document) []models.Finding {
	if !d.input.IsCornerstone {
		return nil
	}
	var out []models.Finding

	if wc := d.wordCount(); wc < d.th.CornerstoneMinWords {
		out = append(out, warn("cornerstone-word-count", "Cornerstone length",
			fmt.Sprintf("Cornerstone content has %d words (at least %d expected).", wc, d.th.CornerstoneMinWords),
			"Make pillar pages the most complete resource on the topic."))
	} else {
		out = append(out, pass("cornerstone-word-count", "Cornerstone length", fmt.Sprintf("%d words.", wc)))
	}

	internal, _ := d.splitLinks()
	if n := len(internal); n < d.th.CornerstoneMinLinks {
		out = append(out, warn("cornerstone-internal-links", "Cornerstone internal links",
			fmt.Sprintf("Cornerstone content links to %d internal pages (at least %d expected).", n, d.th.CornerstoneMinLinks),
			"Link the pillar page to its supporting articles."))
	} else {
		out = append(out, pass("cornerstone-internal-links", "Cornerstone internal links",
			fmt.Sprintf("Links to %d internal pages.", n)))
	}

	var missing []string
	if d.title == "" {
		missing = append(missing, "meta title")
	}
	if d.description == "" {
		missing = append(missing, "meta description")
	}
	if d.keyword == "" {
		missing = append(missing, "focus keyword")
	}
	if !d.input.MetaImage.Populated() {
		missing = append(missing, "social image")
	}
	if len(missing) > 0 {
		out = append(out, fail("cornerstone-metadata", "Cornerstone metadata",
			"Cornerstone content is missing: "+strings.Join(missing, ", ")+".",
			"Complete every metadata field on pillar pages."))
	} else {
		out = append(out, pass("cornerstone-metadata", "Cornerstone metadata", "All metadata fields are filled in."))
	}

	if n := len(d.headingsAt(2)); n < d.th.CornerstoneMinH2 {
		out = append(out, warn("cornerstone-subheadings", "Cornerstone structure",
			fmt.Sprintf("Cornerstone content has %d H2 sections (at least %d expected).", n, d.th.CornerstoneMinH2),
			"Organize the pillar page into clear H2 sections."))
	} else {
		out = append(out, pass("cornerstone-subheadings", "Cornerstone structure", fmt.Sprintf("%d H2 sections.", n)))
	}

	if d.input.UpdatedAt != nil {
		if days := d.daysSince(*d.input.UpdatedAt); days > d.th.CornerstoneMaxAgeDays {
			out = append(out, warn("cornerstone-freshness", "Cornerstone freshness",
				fmt.Sprintf("Cornerstone content was last updated %d days ago.", days),
				fmt.Sprintf("Review pillar pages at least every %d days.", d.th.CornerstoneMaxAgeDays)))
		} else {
			out = append(out, pass("cornerstone-freshness", "Cornerstone freshness",
				fmt.Sprintf("Updated %d days ago.", days)))
		}
	}
	return out
}
