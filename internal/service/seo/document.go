package seo

import (
	"strings"
	"time"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/lexicon"
	"content_intelligence/internal/pkg/textkit"
	"content_intelligence/internal/pkg/tokenizer"
)

type pageType string

const (
	pagePost    pageType = "post"
	pageForm    pageType = "form"
	pageLegal   pageType = "legal"
	pageGeneric pageType = "generic"
)

// document is the normalized view every rule reads. It is built once per
// analysis and never modified afterwards.
type document struct {
	input models.SeoInput
	cfg   models.SeoConfig
	th    models.Thresholds
	lex   lexicon.Table
	now   time.Time

	pageType pageType

	keyword   string
	secondary []string

	title       string
	description string
	slug        string

	headings   []textkit.Heading
	segments   []textkit.Segment
	paragraphs []string
	bodyText   string
	words      []string
	sentences  []string

	links      []models.ExtractedLink
	emptyLinks int
	images     []models.Media
	lists      int

	productBlocks []models.Block
	hasFAQBlock   bool
	hasFormBlock  bool
}

func newDocument(input models.SeoInput, cfg models.SeoConfig, lex lexicon.Table, now time.Time) *document {
	d := &document{
		input:       input,
		cfg:         cfg,
		th:          cfg.Thresholds.WithDefaults(),
		lex:         lex,
		now:         now,
		title:       strings.TrimSpace(input.MetaTitle),
		description: strings.TrimSpace(input.MetaDescription),
		slug:        strings.Trim(strings.TrimSpace(input.Slug), "/"),
	}
	d.keyword = d.norm(input.FocusKeyword)
	d.secondary = d.secondaryKeywords()

	ex := textkit.ExtractInput(input)
	if !input.IsPost {
		for _, b := range input.Blocks {
			d.classifyBlock(b)
		}
	}

	d.headings = ex.Headings
	d.segments = ex.Segments
	d.links = ex.Links
	d.emptyLinks = ex.EmptyLinks
	d.images = ex.Images
	d.lists = ex.Lists
	for _, s := range ex.Segments {
		if s.Kind != textkit.SegmentHeading {
			d.paragraphs = append(d.paragraphs, s.Text)
		}
	}
	d.bodyText = ex.PlainText()
	d.words = tokenizer.Words(lex, d.bodyText)
	for _, p := range d.paragraphs {
		d.sentences = append(d.sentences, tokenizer.SplitSentences(lex, p)...)
	}
	d.pageType = d.detectPageType()
	return d
}

func (d *document) classifyBlock(b models.Block) {
	switch strings.ToLower(b.BlockType) {
	case "product", "pricing":
		d.productBlocks = append(d.productBlocks, b)
	case "faq":
		d.hasFAQBlock = true
	case "form":
		d.hasFormBlock = true
	}
}

func (d *document) detectPageType() pageType {
	if d.input.IsPost {
		return pagePost
	}
	last := d.slug
	if i := strings.LastIndex(last, "/"); i >= 0 {
		last = last[i+1:]
	}
	key := textkit.SlugKey(last)
	switch {
	case d.lex.LegalSlugs[key]:
		return pageLegal
	case d.lex.FormSlugs[key] || d.hasFormBlock:
		return pageForm
	}
	return pageGeneric
}

func (d *document) secondaryKeywords() []string {
	seen := map[string]bool{d.keyword: true, "": true}
	var out []string
	for _, k := range d.input.FocusKeywords {
		n := d.norm(k)
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// norm returns the normalized word sequence of s joined by single spaces.
func (d *document) norm(s string) string {
	return strings.Join(tokenizer.Words(d.lex, s), " ")
}

// contains reports whether the normalized phrase occurs in text on word
// boundaries.
func (d *document) contains(text string, phrase string) bool {
	if phrase == "" {
		return false
	}
	return strings.Contains(" "+d.norm(text)+" ", " "+phrase+" ")
}

// occurrences counts the phrase in a word sequence.
func occurrences(words []string, phrase string) int {
	if phrase == "" {
		return 0
	}
	target := strings.Fields(phrase)
	count := 0
	for i := 0; i+len(target) <= len(words); i++ {
		match := true
		for j, t := range target {
			if words[i+j] != t {
				match = false
				break
			}
		}
		if match {
			count++
		}
	}
	return count
}

func (d *document) wordCount() int {
	return len(d.words)
}

func (d *document) h1s() []string {
	var out []string
	for _, h := range d.headings {
		if h.Level == 1 {
			out = append(out, h.Text)
		}
	}
	return out
}

func (d *document) headingsAt(level int) []string {
	var out []string
	for _, h := range d.headings {
		if h.Level == level {
			out = append(out, h.Text)
		}
	}
	return out
}

// splitLinks splits links into internal and external ones.
func (d *document) splitLinks() (internal, external []models.ExtractedLink) {
	for _, l := range d.links {
		if _, ok := textkit.NormalizeToSlug(l.URL, d.cfg.SiteHost); ok {
			internal = append(internal, l)
			continue
		}
		lower := strings.ToLower(strings.TrimSpace(l.URL))
		if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "//") {
			external = append(external, l)
		}
	}
	return internal, external
}

// daysSince returns whole days between t and the analysis time.
func (d *document) daysSince(t time.Time) int {
	if t.After(d.now) {
		return 0
	}
	return int(d.now.Sub(t).Hours() / 24)
}
