package seo

import (
	"fmt"
	"strings"

	"content_intelligence/internal/domain/models"
)

// schemaRules checks that the fields structured data is generated from are
// present.
func schemaRules(d *document) []models.Finding {
	var out []models.Finding

	if d.title != "" && d.description != "" {
		out = append(out, pass("schema-basics", "Structured data basics",
			"Name and description are available for structured data."))
	} else {
		out = append(out, warn("schema-basics", "Structured data basics",
			"Structured data needs both a title and a description.",
			"Fill in the meta title and meta description."))
	}

	if d.input.MetaImage.Populated() || len(d.images) > 0 {
		out = append(out, pass("schema-image", "Structured data image", "An image is available for structured data."))
	} else {
		out = append(out, warn("schema-image", "Structured data image", "No image is available for structured data.",
			"Set a social image; rich results usually require one."))
	}

	if d.input.IsPost {
		if d.input.UpdatedAt != nil {
			out = append(out, pass("schema-date", "Article date", "The article has a modification date."))
		} else {
			out = append(out, warn("schema-date", "Article date", "The article has no modification date.",
				"Article structured data should carry dateModified."))
		}
	}

	if f, ok := faqReadiness(d); ok {
		out = append(out, f)
	}
	return out
}

func faqReadiness(d *document) (models.Finding, bool) {
	if d.hasFAQBlock {
		incomplete := 0
		for _, b := range d.input.Blocks {
			if !strings.EqualFold(b.BlockType, "faq") {
				continue
			}
			for _, item := range b.Items {
				if strings.TrimSpace(item.Title) == "" || item.RichText == nil {
					incomplete++
				}
			}
		}
		if incomplete > 0 {
			return warn("schema-faq", "FAQ structured data",
				fmt.Sprintf("%d FAQ entries are missing a question or an answer.", incomplete),
				"Every FAQ entry needs both to qualify for FAQ rich results."), true
		}
		return pass("schema-faq", "FAQ structured data", "The FAQ block can be marked up as FAQPage."), true
	}

	questions := 0
	for _, h := range d.headings {
		if strings.HasSuffix(strings.TrimSpace(h.Text), "?") {
			questions++
		}
	}
	if questions >= 2 {
		return warn("schema-faq", "FAQ structured data",
			fmt.Sprintf("%d headings are phrased as questions but the page has no FAQ block.", questions),
			"Move the questions into an FAQ block to enable FAQ structured data."), true
	}
	return models.Finding{}, false
}
