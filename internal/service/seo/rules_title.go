package seo

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"content_intelligence/internal/domain/models"
)

// titleSeparators split a title into fragments. A hyphen only separates when
// it has a space on both sides.
var titleSeparators = "|–—:·•"

func titleRules(d *document) []models.Finding {
	if d.title == "" {
		return []models.Finding{fail("title-present", "Meta title",
			"The page has no meta title.",
			"Write a unique title of 30 to 60 characters that starts with the focus keyword.")}
	}
	out := []models.Finding{pass("title-present", "Meta title", "A meta title is set.")}
	out = append(out, lengthWindow("title-length", "Title length", "title",
		utf8.RuneCountInString(d.title), d.th.TitleMinLength, d.th.TitleMaxLength))

	if d.keyword != "" {
		title := d.norm(d.title)
		switch {
		case title == d.keyword || strings.HasPrefix(title, d.keyword+" "):
			out = append(out, pass("title-keyword", "Keyword in title", "The title starts with the focus keyword."))
		case d.contains(d.title, d.keyword):
			out = append(out, warn("title-keyword", "Keyword in title",
				"The focus keyword appears in the title but not at the start.",
				"Move the focus keyword towards the beginning of the title."))
		default:
			out = append(out, fail("title-keyword", "Keyword in title",
				"The focus keyword does not appear in the title.",
				"Include the focus keyword in the title, ideally at the start."))
		}
	}

	out = append(out, brandDuplicate(d))
	out = append(out, titleSignals(d)...)
	return out
}

// lengthWindow checks a length against [min, max] with a direction-specific
// message.
func lengthWindow(id, label, what string, n, min, max int) models.Finding {
	switch {
	case n < min:
		return warn(id, label,
			fmt.Sprintf("The %s is too short (%d characters, minimum %d).", what, n, min),
			fmt.Sprintf("Lengthen the %s to between %d and %d characters.", what, min, max))
	case n > max:
		return warn(id, label,
			fmt.Sprintf("The %s is too long (%d characters, maximum %d).", what, n, max),
			fmt.Sprintf("Shorten the %s so it is not truncated in search results.", what))
	}
	return pass(id, label, fmt.Sprintf("The %s length is good (%d characters).", what, n))
}

func titleFragments(title string) []string {
	title = strings.ReplaceAll(title, " - ", " | ")
	return strings.FieldsFunc(title, func(r rune) bool {
		return strings.ContainsRune(titleSeparators, r)
	})
}

func brandDuplicate(d *document) models.Finding {
	fragments := titleFragments(d.title)
	seen := map[string]bool{}
	for _, f := range fragments {
		n := d.norm(f)
		if n == "" {
			continue
		}
		if seen[n] {
			return warn("title-brand-duplicate", "Repeated title fragment",
				fmt.Sprintf("The title repeats %q.", strings.TrimSpace(f)),
				"Keep the brand name once, at the end of the title.")
		}
		seen[n] = true
	}
	return pass("title-brand-duplicate", "Repeated title fragment", "No fragment of the title is repeated.")
}

// titleSignals reports the optional click-through signals found in the title.
// Absent signals produce no finding.
func titleSignals(d *document) []models.Finding {
	var out []models.Finding
	words := d.norm(d.title)
	padded := " " + words + " "

	if w, ok := firstListed(padded, d.lex.PowerWords, d); ok {
		out = append(out, pass("title-power-word", "Power word", fmt.Sprintf("The title uses the power word %q.", w)))
	}
	if strings.IndexFunc(d.title, unicode.IsDigit) >= 0 {
		out = append(out, pass("title-number", "Number in title", "The title contains a number."))
	}
	first := strings.SplitN(words, " ", 2)[0]
	if strings.HasSuffix(d.title, "?") || d.lex.Interrogatives[first] {
		out = append(out, pass("title-question", "Question title", "The title is phrased as a question."))
	}
	if w, ok := firstListed(padded, d.lex.SentimentWords, d); ok {
		out = append(out, pass("title-sentiment", "Emotional word", fmt.Sprintf("The title uses the emotional word %q.", w)))
	}
	return out
}

// firstListed returns the alphabetically first listed phrase present in the
// padded normalized text.
func firstListed(padded string, list map[string]bool, d *document) (string, bool) {
	found := ""
	for w := range list {
		n := d.norm(w)
		if n == "" || !strings.Contains(padded, " "+n+" ") {
			continue
		}
		if found == "" || w < found {
			found = w
		}
	}
	return found, found != ""
}
