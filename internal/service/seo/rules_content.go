package seo

import (
	"fmt"
	"strings"

	"content_intelligence/internal/domain/models"
)

func contentRules(d *document) []models.Finding {
	var out []models.Finding
	wc := d.wordCount()

	if d.keyword == "" {
		out = append(out, warn("focus-keyword-set", "Focus keyword", "No focus keyword is set.",
			"Pick the search phrase this page should rank for."))
	} else {
		out = append(out, pass("focus-keyword-set", "Focus keyword", "A focus keyword is set."))
	}

	minWords := d.minWords()
	if wc < minWords {
		out = append(out, warn("word-count", "Word count",
			fmt.Sprintf("The text has %d words; %d is recommended for this type of page.", wc, minWords),
			"Expand the content with useful detail."))
	} else {
		out = append(out, pass("word-count", "Word count", fmt.Sprintf("The text has %d words.", wc)))
	}

	if d.keyword != "" && len(d.paragraphs) > 0 {
		if d.contains(d.paragraphs[0], d.keyword) {
			out = append(out, pass("keyword-first-paragraph", "Keyword in introduction",
				"The focus keyword appears in the first paragraph."))
		} else {
			out = append(out, warn("keyword-first-paragraph", "Keyword in introduction",
				"The focus keyword does not appear in the first paragraph.",
				"Mention the focus keyword early in the introduction."))
		}
	}

	if d.keyword != "" && wc > 0 {
		out = append(out, keywordDensity(d))
	}

	out = append(out, placeholderText(d))

	if wc < d.th.ThinContentWords {
		out = append(out, warn("thin-content", "Thin content",
			fmt.Sprintf("Only %d words of content.", wc),
			"Pages with very little text rarely rank; add substance or merge the page."))
	} else {
		out = append(out, pass("thin-content", "Thin content", "The page has enough text to be indexed meaningfully."))
	}

	if f, ok := keywordDistribution(d); ok {
		out = append(out, f)
	}

	if wc >= d.th.ThinContentWords {
		if d.lists > 0 {
			out = append(out, pass("content-lists", "Lists", "The text uses lists."))
		} else {
			out = append(out, warn("content-lists", "Lists", "The text has no bulleted or numbered list.",
				"Lists make content scannable and can surface as rich results."))
		}
	}
	return out
}

func (d *document) minWords() int {
	switch d.pageType {
	case pagePost:
		return d.th.MinWordsPost
	case pageForm:
		return d.th.MinWordsForm
	case pageLegal:
		return d.th.MinWordsLegal
	}
	return d.th.MinWordsGeneric
}

// keywordDensity is phrase occurrences per hundred words.
func keywordDensity(d *document) models.Finding {
	count := occurrences(d.words, d.keyword)
	density := float64(count) / float64(d.wordCount()) * 100
	msg := fmt.Sprintf("Keyword density is %.1f%% (%d occurrences).", density, count)

	switch {
	case density > d.th.KeywordDensityStuffed:
		return fail("keyword-density", "Keyword density", msg+" The text looks overstuffed.",
			"Replace some occurrences with synonyms; over-optimization is penalized.")
	case density > d.th.KeywordDensityMax:
		return warn("keyword-density", "Keyword density", msg+" This is above the recommended range.",
			fmt.Sprintf("Aim for %.1f%% to %.1f%%.", d.th.KeywordDensityMin, d.th.KeywordDensityMax))
	case density < d.th.KeywordDensityMin:
		return warn("keyword-density", "Keyword density", msg+" This is below the recommended range.",
			fmt.Sprintf("Aim for %.1f%% to %.1f%%.", d.th.KeywordDensityMin, d.th.KeywordDensityMax))
	}
	return pass("keyword-density", "Keyword density", msg)
}

func placeholderText(d *document) models.Finding {
	for _, text := range []string{d.title, d.description, d.bodyText} {
		for _, p := range d.lex.Placeholders {
			if d.contains(text, d.norm(p)) {
				return fail("placeholder-text", "Placeholder text",
					fmt.Sprintf("The page still contains placeholder text (%q).", p),
					"Replace draft markers and filler text before publishing.")
			}
		}
	}
	return pass("placeholder-text", "Placeholder text", "No placeholder text was found.")
}

// keywordDistribution splits the body into three equal parts and expects the
// keyword in at least two of them.
func keywordDistribution(d *document) (models.Finding, bool) {
	if d.keyword == "" || occurrences(d.words, d.keyword) == 0 {
		return models.Finding{}, false
	}
	n := len(d.words)
	third := n / 3
	if third < len(strings.Fields(d.keyword))*3 {
		return models.Finding{}, false
	}
	parts := [][]string{d.words[:third], d.words[third : 2*third], d.words[2*third:]}
	hit := 0
	for _, p := range parts {
		if occurrences(p, d.keyword) > 0 {
			hit++
		}
	}
	if hit >= 2 {
		return pass("keyword-distribution", "Keyword distribution",
			fmt.Sprintf("The focus keyword appears in %d of 3 parts of the text.", hit)), true
	}
	return warn("keyword-distribution", "Keyword distribution",
		"The focus keyword is concentrated in one part of the text.",
		"Use the keyword in the beginning, middle and end of the content."), true
}
