package seo

import (
	"fmt"

	"content_intelligence/internal/domain/models"
)

func headingRules(d *document) []models.Finding {
	var out []models.Finding
	h1s := d.h1s()

	switch len(h1s) {
	case 0:
		out = append(out, fail("h1-present", "H1 heading", "The page has no H1 heading.",
			"Add exactly one H1 that describes the page."))
	case 1:
		out = append(out, pass("h1-present", "H1 heading", "The page has exactly one H1 heading."))
	default:
		out = append(out, warn("h1-present", "H1 heading",
			fmt.Sprintf("The page has %d H1 headings.", len(h1s)),
			"Keep a single H1 and demote the others to H2."))
	}

	if d.keyword != "" && len(h1s) > 0 {
		if anyContains(d, h1s, d.keyword) {
			out = append(out, pass("h1-keyword", "Keyword in H1", "The H1 contains the focus keyword."))
		} else {
			out = append(out, warn("h1-keyword", "Keyword in H1", "The H1 does not contain the focus keyword.",
				"Use the focus keyword, or a close variant, in the H1."))
		}
	}

	if len(d.headings) > 0 {
		out = append(out, headingHierarchy(d))
	}

	if h2s := d.headingsAt(2); d.keyword != "" && len(h2s) > 0 {
		if anyContains(d, h2s, d.keyword) {
			out = append(out, pass("h2-keyword", "Keyword in subheadings", "At least one H2 contains the focus keyword."))
		} else {
			out = append(out, warn("h2-keyword", "Keyword in subheadings", "No H2 contains the focus keyword.",
				"Use the focus keyword in one or two H2 subheadings."))
		}
	}

	if required := d.wordCount() / d.th.WordsPerSubheading; required > 0 {
		subheadings := 0
		for _, h := range d.headings {
			if h.Level > 1 {
				subheadings++
			}
		}
		if subheadings >= required {
			out = append(out, pass("subheading-frequency", "Subheading distribution",
				fmt.Sprintf("The text is broken up by %d subheadings.", subheadings)))
		} else {
			out = append(out, warn("subheading-frequency", "Subheading distribution",
				fmt.Sprintf("%d words with only %d subheadings.", d.wordCount(), subheadings),
				fmt.Sprintf("Add a subheading roughly every %d words.", d.th.WordsPerSubheading)))
		}
	}

	if d.title != "" && len(h1s) == 1 {
		if d.norm(h1s[0]) == d.norm(d.title) {
			out = append(out, warn("h1-differs-from-title", "H1 and title", "The H1 is identical to the meta title.",
				"Vary the H1 and the meta title to cover more search phrasings."))
		} else {
			out = append(out, pass("h1-differs-from-title", "H1 and title", "The H1 differs from the meta title."))
		}
	}
	return out
}

// headingHierarchy flags the first heading that goes down more than one
// level from its predecessor.
func headingHierarchy(d *document) models.Finding {
	prev := d.headings[0].Level
	for _, h := range d.headings[1:] {
		if h.Level > prev+1 {
			return warn("heading-hierarchy", "Heading structure",
				fmt.Sprintf("H%d is followed by H%d, skipping a level.", prev, h.Level),
				"Nest headings one level at a time (H2, then H3).")
		}
		prev = h.Level
	}
	return pass("heading-hierarchy", "Heading structure", "Headings are nested without skipping levels.")
}

func anyContains(d *document, texts []string, phrase string) bool {
	for _, t := range texts {
		if d.contains(t, phrase) {
			return true
		}
	}
	return false
}
