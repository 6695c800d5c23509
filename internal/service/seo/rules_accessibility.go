package seo

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"content_intelligence/internal/domain/models"
)

func accessibilityRules(d *document) []models.Finding {
	var out []models.Finding

	var alts []string
	for _, img := range d.images {
		if a := strings.TrimSpace(img.Alt); a != "" {
			alts = append(alts, a)
		}
	}
	if len(alts) > 0 {
		long, redundant := 0, 0
		for _, a := range alts {
			if utf8.RuneCountInString(a) > d.th.MaxAltLength {
				long++
			}
			if d.hasRedundantAltPrefix(a) {
				redundant++
			}
		}
		if long > 0 {
			out = append(out, warn("alt-text-length", "Alt text length",
				fmt.Sprintf("%d alt texts are longer than %d characters.", long, d.th.MaxAltLength),
				"Screen readers cut long alt text; keep it concise."))
		} else {
			out = append(out, pass("alt-text-length", "Alt text length", "Alt texts are concise."))
		}
		if redundant > 0 {
			out = append(out, warn("alt-text-redundant", "Redundant alt text",
				fmt.Sprintf("%d alt texts start with words like \"image of\".", redundant),
				"Screen readers already announce images; describe the content directly."))
		} else {
			out = append(out, pass("alt-text-redundant", "Redundant alt text", "Alt texts do not announce themselves as images."))
		}
	}

	if len(d.headings) > 0 {
		empty := 0
		for _, h := range d.headings {
			if strings.TrimSpace(h.Text) == "" {
				empty++
			}
		}
		if empty > 0 {
			out = append(out, fail("empty-headings", "Empty headings",
				fmt.Sprintf("%d headings have no text.", empty),
				"Remove empty headings; screen readers announce them."))
		} else {
			out = append(out, pass("empty-headings", "Empty headings", "Every heading has text."))
		}
	}

	if len(d.links) > 0 {
		poor := 0
		for _, l := range d.links {
			text := strings.TrimSpace(l.Text)
			if utf8.RuneCountInString(text) < 2 || text == strings.TrimSpace(l.URL) || looksLikeURL(text) {
				poor++
			}
		}
		if poor > 0 {
			out = append(out, warn("link-text-quality", "Link text",
				fmt.Sprintf("%d links have no readable text or show a raw URL.", poor),
				"Give every link a short text that makes sense out of context."))
		} else {
			out = append(out, pass("link-text-quality", "Link text", "Every link has readable text."))
		}
	}
	return out
}

func (d *document) hasRedundantAltPrefix(alt string) bool {
	n := d.norm(alt)
	for _, p := range d.lex.RedundantAltPrefix {
		p = d.norm(p)
		if n == p || strings.HasPrefix(n, p+" ") {
			return true
		}
	}
	return false
}

func looksLikeURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "www.")
}
