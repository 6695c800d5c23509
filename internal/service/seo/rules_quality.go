package seo

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/tokenizer"
)

const (
	minDuplicateParagraphWords = 5
	minAllCapsLength           = 4
	maxAllCapsPercent          = 5.0
	minDiversityTokens         = 100
	minLexicalDiversity        = 0.3
)

var excessivePunctuation = regexp.MustCompile(`[!?]{2,}|\.{4,}`)

func qualityRules(d *document) []models.Finding {
	var out []models.Finding

	if len(d.paragraphs) > 1 {
		seen := map[string]bool{}
		dup := 0
		for _, p := range d.paragraphs {
			n := d.norm(p)
			if tokenizer.CountWords(n) < minDuplicateParagraphWords {
				continue
			}
			if seen[n] {
				dup++
			}
			seen[n] = true
		}
		if dup > 0 {
			out = append(out, warn("duplicate-paragraphs", "Duplicate paragraphs",
				fmt.Sprintf("%d paragraphs are repeated.", dup),
				"Remove repeated passages; duplicate text adds no value."))
		} else {
			out = append(out, pass("duplicate-paragraphs", "Duplicate paragraphs", "No paragraph is repeated."))
		}
	}

	if f, ok := allCaps(d); ok {
		out = append(out, f)
	}

	if excessivePunctuation.MatchString(d.title) || excessivePunctuation.MatchString(d.description) ||
		excessivePunctuation.MatchString(d.bodyText) {
		out = append(out, warn("excessive-punctuation", "Punctuation",
			"The text uses repeated punctuation such as \"!!\" or \"?!\".",
			"Use single punctuation marks; repeated ones read as spam."))
	} else if d.title != "" || d.bodyText != "" {
		out = append(out, pass("excessive-punctuation", "Punctuation", "Punctuation is used normally."))
	}

	tokens := tokenizer.Tokenize(d.lex, d.bodyText)
	if len(tokens) >= minDiversityTokens {
		unique := map[string]bool{}
		for _, t := range tokens {
			unique[t] = true
		}
		ratio := float64(len(unique)) / float64(len(tokens))
		if ratio < minLexicalDiversity {
			out = append(out, warn("lexical-diversity", "Vocabulary",
				fmt.Sprintf("Only %.0f%% of content words are distinct.", ratio*100),
				"Vary the vocabulary; the text is very repetitive."))
		} else {
			out = append(out, pass("lexical-diversity", "Vocabulary",
				fmt.Sprintf("%.0f%% of content words are distinct.", ratio*100)))
		}
	}
	return out
}

// allCaps flags an all-caps title and bodies where shouting words exceed a
// small share of the text.
func allCaps(d *document) (models.Finding, bool) {
	if isShouting(d.title) {
		return warn("all-caps", "Capitals", "The title is written in capitals.",
			"Use sentence or title case."), true
	}
	words := strings.FieldsFunc(d.bodyText, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
	if len(words) == 0 {
		return models.Finding{}, false
	}
	caps := 0
	for _, w := range words {
		if isShouting(w) {
			caps++
		}
	}
	if pct := percent(caps, len(words)); pct > maxAllCapsPercent {
		return warn("all-caps", "Capitals",
			fmt.Sprintf("%.0f%% of words are written in capitals.", pct),
			"Reserve capitals for acronyms; use bold for emphasis."), true
	}
	return pass("all-caps", "Capitals", "Capitals are used sparingly."), true
}

// isShouting reports whether s has at least minAllCapsLength letters, all
// upper case.
func isShouting(s string) bool {
	letters := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters >= minAllCapsLength
}
