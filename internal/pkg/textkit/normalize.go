package textkit

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripAccents removes combining marks after NFD decomposition ("é" -> "e").
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// NormalizeForComparison lowercases with the casing rules of locale, strips
// diacritics and collapses whitespace.
func NormalizeForComparison(locale string, s string) string {
	if s == "" {
		return ""
	}
	lower := cases.Lower(languageTag(locale)).String(s)
	return CollapseWhitespace(StripAccents(lower))
}

// CollapseWhitespace trims and collapses internal whitespace runs to one space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SlugKey is the accent- and case-insensitive comparison key of a slug.
func SlugKey(slug string) string {
	return strings.ToLower(StripAccents(strings.Trim(strings.TrimSpace(slug), "/")))
}

func languageTag(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und
	}
	return tag
}
