package seo

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/tokenizer"
)

// minSentencesForRatios is the sample below which ratio checks say nothing useful.
const minSentencesForRatios = 3

func readabilityRules(d *document) []models.Finding {
	if len(d.sentences) == 0 || d.wordCount() == 0 {
		return nil
	}
	sentenceWords := make([][]string, len(d.sentences))
	for i, s := range d.sentences {
		sentenceWords[i] = tokenizer.Words(d.lex, s)
	}

	out := []models.Finding{readingEase(d, sentenceWords), sentenceLength(d, sentenceWords), paragraphLength(d)}
	out = append(out, passiveVoice(d, sentenceWords))
	if len(d.sentences) >= minSentencesForRatios {
		out = append(out, transitionWords(d, sentenceWords), sentenceStarts(sentenceWords))
	}
	return out
}

// readingEase computes the Flesch-family score with the constants of the
// locale table.
func readingEase(d *document, sentenceWords [][]string) models.Finding {
	words, syllables := 0, 0
	for _, sw := range sentenceWords {
		words += len(sw)
		for _, w := range sw {
			syllables += tokenizer.CountSyllables(d.lex, w)
		}
	}
	if words == 0 {
		words = 1
	}
	r := d.lex.Readability
	score := r.Base - r.SentenceWeight*(float64(words)/float64(len(sentenceWords))) - r.SyllableWeight*(float64(syllables)/float64(words))
	msg := fmt.Sprintf("Reading ease score is %.0f.", score)

	switch {
	case score >= d.th.ReadabilityGood:
		return pass("readability-score", "Reading ease", msg)
	case score >= d.th.ReadabilityPoor:
		return warn("readability-score", "Reading ease", msg+" The text is fairly difficult to read.",
			"Use shorter sentences and simpler words.")
	}
	return fail("readability-score", "Reading ease", msg+" The text is hard to read.",
		"Split long sentences and prefer common words.")
}

func sentenceLength(d *document, sentenceWords [][]string) models.Finding {
	long := 0
	for _, w := range sentenceWords {
		if len(w) > d.th.LongSentenceWords {
			long++
		}
	}
	pct := percent(long, len(sentenceWords))
	if pct > d.th.LongSentenceMaxPercent {
		return warn("sentence-length", "Sentence length",
			fmt.Sprintf("%.0f%% of sentences have more than %d words.", pct, d.th.LongSentenceWords),
			fmt.Sprintf("Keep long sentences under %.0f%% of the text.", d.th.LongSentenceMaxPercent))
	}
	return pass("sentence-length", "Sentence length",
		fmt.Sprintf("%.0f%% of sentences have more than %d words.", pct, d.th.LongSentenceWords))
}

func paragraphLength(d *document) models.Finding {
	long := 0
	for _, p := range d.paragraphs {
		if tokenizer.CountWords(p) > d.th.MaxParagraphWords {
			long++
		}
	}
	if long > 0 {
		return warn("paragraph-length", "Paragraph length",
			fmt.Sprintf("%d paragraphs are longer than %d words.", long, d.th.MaxParagraphWords),
			"Break long paragraphs into smaller ones.")
	}
	return pass("paragraph-length", "Paragraph length", "Paragraphs are a comfortable length.")
}

func passiveVoice(d *document, sentenceWords [][]string) models.Finding {
	passive := 0
	for _, words := range sentenceWords {
		if isPassive(d, words) {
			passive++
		}
	}
	pct := percent(passive, len(sentenceWords))
	msg := fmt.Sprintf("%.0f%% of sentences use the passive voice.", pct)
	if pct > d.th.PassiveMaxPercent {
		return warn("passive-voice", "Passive voice", msg,
			fmt.Sprintf("Rewrite passive sentences in the active voice; keep them under %.0f%%.", d.th.PassiveMaxPercent))
	}
	return pass("passive-voice", "Passive voice", msg)
}

// isPassive looks for an auxiliary followed, within two words, by a participle.
func isPassive(d *document, words []string) bool {
	for i, w := range words {
		if !d.lex.PassiveAuxiliaries[w] {
			continue
		}
		for j := i + 1; j < len(words) && j <= i+2; j++ {
			if isParticiple(d, words[j]) {
				return true
			}
		}
	}
	return false
}

func isParticiple(d *document, w string) bool {
	if d.lex.IrregularParticles[w] {
		return true
	}
	if utf8.RuneCountInString(w) < 4 {
		return false
	}
	for _, s := range d.lex.PassiveSuffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

func transitionWords(d *document, sentenceWords [][]string) models.Finding {
	with := 0
	for _, words := range sentenceWords {
		if d.lex.HasTransition(strings.Join(words, " ")) {
			with++
		}
	}
	pct := percent(with, len(sentenceWords))
	msg := fmt.Sprintf("%.0f%% of sentences contain a transition word.", pct)
	if pct < d.th.TransitionMinPercent {
		return warn("transition-words", "Transition words", msg,
			"Connect ideas with words such as \"however\" or \"therefore\".")
	}
	return pass("transition-words", "Transition words", msg)
}

// sentenceStarts flags three or more consecutive sentences opening with the
// same word.
func sentenceStarts(sentenceWords [][]string) models.Finding {
	run, prev := 0, ""
	for _, words := range sentenceWords {
		first := ""
		if len(words) > 0 {
			first = words[0]
		}
		if first != "" && first == prev {
			run++
		} else {
			run = 1
		}
		prev = first
		if run >= 3 {
			return warn("sentence-starts", "Sentence beginnings",
				fmt.Sprintf("%d consecutive sentences start with %q.", run, first),
				"Vary how sentences begin.")
		}
	}
	return pass("sentence-starts", "Sentence beginnings", "Consecutive sentences start with different words.")
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
