package seo

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"content_intelligence/internal/domain/models"
)

var yearMention = regexp.MustCompile(`\b(19[9]\d|20\d\d)\b`)

func freshnessRules(d *document) []models.Finding {
	var out []models.Finding

	if d.input.UpdatedAt != nil {
		days := d.daysSince(*d.input.UpdatedAt)
		msg := fmt.Sprintf("Last updated %d days ago.", days)
		if d.isEvergreen() {
			if days > d.th.EvergreenDays {
				out = append(out, warn("content-age", "Content age", msg,
					fmt.Sprintf("Reference pages should still be checked every %d days.", d.th.EvergreenDays)))
			} else {
				out = append(out, pass("content-age", "Content age", msg))
			}
		} else {
			switch {
			case days <= d.th.FreshDays:
				out = append(out, pass("content-age", "Content age", msg))
			case days <= d.th.StaleDays:
				out = append(out, warn("content-age", "Content age", msg+" The content is ageing.",
					"Refresh facts, examples and dates."))
			default:
				out = append(out, fail("content-age", "Content age", msg+" The content is stale.",
					"Update or consolidate outdated content."))
			}
		}
	}

	if d.input.ContentLastReviewed != nil {
		days := d.daysSince(*d.input.ContentLastReviewed)
		if days > d.th.ReviewDays {
			out = append(out, warn("content-review", "Content review",
				fmt.Sprintf("The content was last reviewed %d days ago.", days),
				"Schedule a review to confirm the content is still accurate."))
		} else {
			out = append(out, pass("content-review", "Content review",
				fmt.Sprintf("Reviewed %d days ago.", days)))
		}
	}

	if f, ok := staleYear(d); ok {
		out = append(out, f)
	}
	return out
}

// isEvergreen reports whether the page is reference content that ages slowly.
func (d *document) isEvergreen() bool {
	return d.pageType == pageLegal || d.pageType == pageForm || d.input.IsGlobal
}

// staleYear looks for year numbers in the title, description and headings
// that are older than the current year.
func staleYear(d *document) (models.Finding, bool) {
	texts := []string{d.title, d.description}
	for _, h := range d.headings {
		texts = append(texts, h.Text)
	}
	current := d.now.Year()
	var stale []int
	found := false
	for _, t := range texts {
		for _, m := range yearMention.FindAllString(t, -1) {
			y, err := strconv.Atoi(m)
			if err != nil || y > current+1 {
				continue
			}
			found = true
			if y < current {
				stale = append(stale, y)
			}
		}
	}
	if !found {
		return models.Finding{}, false
	}
	if len(stale) > 0 {
		sort.Ints(stale)
		return warn("stale-year", "Year references",
			fmt.Sprintf("The title or headings mention %d, which is in the past.", stale[len(stale)-1]),
			fmt.Sprintf("Update the year to %d or remove it.", current)), true
	}
	return pass("stale-year", "Year references", "Year references are current."), true
}
