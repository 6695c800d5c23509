package seo

import (
	"fmt"

	"content_intelligence/internal/domain/models"
)

func secondaryKeywordRules(d *document) []models.Finding {
	if len(d.secondary) == 0 {
		return nil
	}
	var out []models.Finding
	for _, kw := range d.secondary {
		label := fmt.Sprintf("Secondary keyword %q", kw)
		if n := occurrences(d.words, kw); n > 0 {
			out = append(out, pass("secondary-keyword-body", label,
				fmt.Sprintf("%q appears %d times in the text.", kw, n)))
		} else {
			out = append(out, warn("secondary-keyword-body", label,
				fmt.Sprintf("%q does not appear in the text.", kw),
				"Work each secondary keyword into the body at least once."))
		}
	}

	inHeading := false
	for _, h := range d.headings {
		for _, kw := range d.secondary {
			if d.contains(h.Text, kw) {
				inHeading = true
			}
		}
	}
	if inHeading {
		out = append(out, pass("secondary-keyword-headings", "Secondary keywords in headings",
			"A heading uses a secondary keyword."))
	} else {
		out = append(out, warn("secondary-keyword-headings", "Secondary keywords in headings",
			"No heading uses a secondary keyword.",
			"Use secondary keywords in H2 or H3 subheadings."))
	}

	if len(d.secondary) > d.th.MaxSecondaryKeywords {
		out = append(out, warn("secondary-keyword-count", "Number of secondary keywords",
			fmt.Sprintf("%d secondary keywords are set (maximum %d).", len(d.secondary), d.th.MaxSecondaryKeywords),
			"Focus the page on fewer topics; move the rest to dedicated pages."))
	} else {
		out = append(out, pass("secondary-keyword-count", "Number of secondary keywords",
			fmt.Sprintf("%d secondary keywords are set.", len(d.secondary))))
	}
	return out
}
