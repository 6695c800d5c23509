package seo

import (
	"unicode/utf8"

	"content_intelligence/internal/domain/models"
)

func metaRules(d *document) []models.Finding {
	if d.description == "" {
		return []models.Finding{fail("meta-description-present", "Meta description",
			"The page has no meta description.",
			"Summarize the page in 120 to 160 characters and include the focus keyword.")}
	}
	out := []models.Finding{
		pass("meta-description-present", "Meta description", "A meta description is set."),
		lengthWindow("meta-description-length", "Meta description length", "meta description",
			utf8.RuneCountInString(d.description), d.th.MetaDescriptionMinLength, d.th.MetaDescriptionMaxLength),
	}

	if d.keyword != "" {
		if d.contains(d.description, d.keyword) {
			out = append(out, pass("meta-description-keyword", "Keyword in meta description",
				"The meta description contains the focus keyword."))
		} else {
			out = append(out, warn("meta-description-keyword", "Keyword in meta description",
				"The meta description does not contain the focus keyword.",
				"Search engines bold matching terms; include the focus keyword once."))
		}
	}

	padded := " " + d.norm(d.description) + " "
	if verb, ok := firstListed(padded, d.lex.CTAVerbs, d); ok {
		out = append(out, pass("meta-description-cta", "Call to action",
			"The meta description invites the reader to act (\""+verb+"\")."))
	} else {
		out = append(out, warn("meta-description-cta", "Call to action",
			"The meta description has no call to action.",
			"Start a sentence with an action verb such as \"discover\" or \"learn\"."))
	}
	return out
}
