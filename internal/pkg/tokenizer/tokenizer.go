// Package tokenizer splits normalized text into words, n-grams, sentences and
// paragraphs. Every function takes the locale table explicitly and is pure.
package tokenizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"content_intelligence/internal/pkg/lexicon"
	"content_intelligence/internal/pkg/textkit"
)

const minTokenLength = 3

var (
	sentenceBoundary  = regexp.MustCompile(`[.!?…]+["'»)\]]*\s+`)
	paragraphBoundary = regexp.MustCompile(`\n\s*\n`)
)

// Words returns every alphanumeric run of the normalized text, stop words
// included.
func Words(lex lexicon.Table, text string) []string {
	normalized := textkit.NormalizeForComparison(lex.Locale, text)
	return strings.FieldsFunc(normalized, isSeparator)
}

// Tokenize returns the content words of text: normalized, split on
// non-alphanumeric runs, at least three characters long, stop words removed.
func Tokenize(lex lexicon.Table, text string) []string {
	words := Words(lex, text)
	out := words[:0]
	for _, w := range words {
		if utf8.RuneCountInString(w) < minTokenLength || lex.IsStopWord(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// ExtractNgrams returns the bigrams and trigrams of text worth tracking.
// A bigram is dropped when both words are stop words; a trigram is kept only
// when at least two of its words are non-stop words of three characters or more.
func ExtractNgrams(lex lexicon.Table, text string) []string {
	words := Words(lex, text)
	var out []string
	for i := 0; i+1 < len(words); i++ {
		if !(lex.IsStopWord(words[i]) && lex.IsStopWord(words[i+1])) {
			out = append(out, words[i]+" "+words[i+1])
		}
	}
	for i := 0; i+2 < len(words); i++ {
		strong := 0
		for _, w := range words[i : i+3] {
			if !lex.IsStopWord(w) && utf8.RuneCountInString(w) >= minTokenLength {
				strong++
			}
		}
		if strong >= 2 {
			out = append(out, strings.Join(words[i:i+3], " "))
		}
	}
	return out
}

// SimpleStem strips the first matching suffix of the locale list and then a
// trailing plural "s". It is a grouping heuristic, not a linguistic stemmer.
func SimpleStem(lex lexicon.Table, word string) string {
	w := textkit.NormalizeForComparison(lex.Locale, word)
	for _, suffix := range lex.StemSuffixes {
		if strings.HasSuffix(w, suffix) && utf8.RuneCountInString(w)-utf8.RuneCountInString(suffix) >= minTokenLength {
			w = strings.TrimSuffix(w, suffix)
			break
		}
	}
	if strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && utf8.RuneCountInString(w) > minTokenLength {
		w = strings.TrimSuffix(w, "s")
	}
	return w
}

// CountWords counts the alphanumeric runs of text.
func CountWords(text string) int {
	return len(strings.FieldsFunc(text, isSeparator))
}

// SplitSentences splits on runs of . ! ? followed by whitespace, without
// breaking after the locale's abbreviations.
func SplitSentences(lex lexicon.Table, text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	var out []string
	start := 0
	for _, m := range sentenceBoundary.FindAllStringIndex(text, -1) {
		if endsWithAbbreviation(lex, text[start:m[0]+1]) {
			continue
		}
		if s := strings.TrimSpace(text[start:m[1]]); s != "" {
			out = append(out, s)
		}
		start = m[1]
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

// SplitParagraphs splits on blank lines.
func SplitParagraphs(text string) []string {
	var out []string
	for _, p := range paragraphBoundary.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CountSyllables estimates the syllables of a word by counting vowel groups
// and discounting silent endings.
func CountSyllables(lex lexicon.Table, word string) int {
	w := strings.ToLower(textkit.StripAccents(word))
	count := 0
	inVowel := false
	for _, r := range w {
		isVowel := strings.ContainsRune(lex.Vowels, r)
		if isVowel && !inVowel {
			count++
		}
		inVowel = isVowel
	}
	if count > 1 {
		for _, ending := range lex.SilentEndings {
			if strings.HasSuffix(w, ending) && !strings.HasSuffix(w, "l"+ending) {
				stem := strings.TrimSuffix(w, ending)
				if stem != "" && !strings.ContainsRune(lex.Vowels, rune(stem[len(stem)-1])) {
					count--
				}
				break
			}
		}
	}
	if count < 1 {
		return 1
	}
	return count
}

func endsWithAbbreviation(lex lexicon.Table, fragment string) bool {
	lower := strings.ToLower(fragment)
	for _, abbr := range lex.Abbreviations {
		if !strings.HasSuffix(lower, abbr) {
			continue
		}
		rest := lower[:len(lower)-len(abbr)]
		if rest == "" || !isWordRune(lastRune(rest)) {
			return true
		}
	}
	return false
}

func isSeparator(r rune) bool {
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}
