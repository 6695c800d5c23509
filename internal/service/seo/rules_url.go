package seo

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/textkit"
	"content_intelligence/internal/pkg/tokenizer"
)

var slugFormat = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*(?:/[a-z0-9]+(?:-[a-z0-9]+)*)*$`)

// urlRules does not apply to globals, which have no address of their own.
func urlRules(d *document) []models.Finding {
	if d.input.IsGlobal {
		return nil
	}
	if d.slug == "" {
		return []models.Finding{fail("slug-present", "URL slug", "The page has no slug.",
			"Set a short, descriptive slug.")}
	}
	out := []models.Finding{pass("slug-present", "URL slug", "A slug is set.")}

	if n := utf8.RuneCountInString(d.slug); n > d.th.SlugMaxLength {
		out = append(out, fail("slug-length", "Slug length",
			fmt.Sprintf("The slug is %d characters long (maximum %d).", n, d.th.SlugMaxLength),
			"Shorten the slug to its essential words."))
	} else {
		out = append(out, pass("slug-length", "Slug length", fmt.Sprintf("The slug length is fine (%d characters).", n)))
	}

	if slugFormat.MatchString(d.slug) {
		out = append(out, pass("slug-format", "Slug format", "The slug only uses lowercase letters, digits and hyphens."))
	} else {
		out = append(out, warn("slug-format", "Slug format",
			"The slug contains uppercase letters, accents, underscores or other special characters.",
			"Use lowercase letters, digits and hyphens only."))
	}

	slugWords := tokenizer.Words(d.lex, d.slug)
	if d.keyword != "" && !d.isUtilityPage() {
		if occurrences(slugWords, d.keyword) > 0 {
			out = append(out, pass("slug-keyword", "Keyword in slug", "The slug contains the focus keyword."))
		} else {
			out = append(out, warn("slug-keyword", "Keyword in slug", "The slug does not contain the focus keyword.",
				"Include the focus keyword in the slug, separated by hyphens."))
		}
	}

	var stops []string
	for _, w := range slugWords {
		if d.lex.IsStopWord(w) {
			stops = append(stops, w)
		}
	}
	if len(stops) > 0 {
		out = append(out, warn("slug-stop-words", "Stop words in slug",
			fmt.Sprintf("The slug contains stop words: %s.", strings.Join(stops, ", ")),
			"Remove filler words from the slug."))
	} else {
		out = append(out, pass("slug-stop-words", "Stop words in slug", "The slug contains no stop words."))
	}
	return out
}

func (d *document) isUtilityPage() bool {
	last := d.slug
	if i := strings.LastIndex(last, "/"); i >= 0 {
		last = last[i+1:]
	}
	return textkit.IsHomeSlug(last) || d.lex.UtilitySlugs[textkit.SlugKey(last)]
}
