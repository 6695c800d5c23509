// Package lexicon holds the per-locale word lists and formula constants used by
// the tokenizer and the rule engine. Tables are immutable once registered.
package lexicon

import "strings"

// Readability holds the constants of a Flesch-family reading-ease formula:
// score = Base - SentenceWeight*(words/sentences) - SyllableWeight*(syllables/words).
type Readability struct {
	Base           float64
	SentenceWeight float64
	SyllableWeight float64
}

// Table is the lexicon of one locale. All words are stored normalized
// (lowercase, no diacritics).
type Table struct {
	Locale string

	StopWords          map[string]bool
	PowerWords         map[string]bool
	SentimentWords     map[string]bool
	CTAVerbs           map[string]bool
	TransitionWords    []string
	Interrogatives     map[string]bool
	PassiveAuxiliaries map[string]bool
	PassiveSuffixes    []string
	IrregularParticles map[string]bool
	GenericAnchors     map[string]bool
	RedundantAltPrefix []string
	UtilitySlugs       map[string]bool
	LegalSlugs         map[string]bool
	FormSlugs          map[string]bool
	Placeholders       []string
	Abbreviations      []string
	Vowels             string
	SilentEndings      []string

	// StemSuffixes is ordered: derivational endings first, then inflectional
	// endings; the trailing plural "s" is handled by the stemmer itself.
	StemSuffixes []string

	Readability Readability
}

func (t Table) IsStopWord(word string) bool {
	return t.StopWords[word]
}

// HasTransition reports whether a normalized sentence contains a transition
// word or phrase.
func (t Table) HasTransition(sentence string) bool {
	padded := " " + sentence + " "
	for _, w := range t.TransitionWords {
		if strings.Contains(padded, " "+w+" ") {
			return true
		}
	}
	return false
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
