package seo

import (
	"strings"
	"testing"

	"content_intelligence/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ruleCase struct {
	name   string
	input  models.SeoInput
	cfg    models.SeoConfig
	id     string
	status models.Status
	absent bool
}

func runRuleCases(t *testing.T, cases []ruleCase) {
	t.Helper()
	engine := NewEngine(nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg
			if cfg.Locale == "" {
				cfg.Locale = "en"
			}
			result := engine.AnalyzeAt(tc.input, cfg, fixedNow)

			f, ok := find(result, tc.id)
			if tc.absent {
				assert.False(t, ok, "%s should not be reported", tc.id)
				return
			}
			require.True(t, ok, "%s missing", tc.id)
			assert.Equal(t, tc.status, f.Status, f.Message)
		})
	}
}

func post(children ...*models.RichTextNode) models.SeoInput {
	return models.SeoInput{IsPost: true, Content: root(children...)}
}

// filler returns n copies of word separated by spaces.
func filler(word string, n int) string {
	return strings.TrimSpace(strings.Repeat(word+" ", n))
}

// distinctWords returns n different content words.
func distinctWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = "w" + string(rune('a'+i/26)) + string(rune('a'+i%26)) + "x"
	}
	return strings.Join(words, " ")
}

// bodyAt builds a body of total filler words with keyword placed at the given
// word positions.
func bodyAt(total int, keyword string, positions ...int) *models.RichTextNode {
	words := strings.Fields(filler("alpha", total))
	for _, p := range positions {
		words[p] = keyword
	}
	var paragraphs []*models.RichTextNode
	for i := 0; i < total; i += 100 {
		end := min(i+100, total)
		paragraphs = append(paragraphs, paragraph(strings.Join(words[i:end], " ")))
	}
	return root(paragraphs...)
}

func anchor(url, label string) *models.RichTextNode {
	return &models.RichTextNode{Type: "link", Fields: &models.LinkFields{URL: url}, Children: []*models.RichTextNode{text(label)}}
}

func list(items ...string) *models.RichTextNode {
	n := &models.RichTextNode{Type: "list"}
	for _, item := range items {
		n.Children = append(n.Children, &models.RichTextNode{Type: "listitem", Children: []*models.RichTextNode{text(item)}})
	}
	return n
}

func TestTitleRules_BrandDuplicate(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "hyphenated words are one fragment", input: models.SeoInput{MetaTitle: "Back-to-back | Acme"},
			id: "title-brand-duplicate", status: models.StatusPass},
		{name: "spaced hyphen separates", input: models.SeoInput{MetaTitle: "Acme - Shoes | Acme"},
			id: "title-brand-duplicate", status: models.StatusWarning},
		{name: "dashes and pipes", input: models.SeoInput{MetaTitle: "Red shoes – Acme — Acme"},
			id: "title-brand-duplicate", status: models.StatusWarning},
		{name: "brand once", input: models.SeoInput{MetaTitle: "Red shoes for runners | Acme"},
			id: "title-brand-duplicate", status: models.StatusPass},
	})
}

func TestMetaRules(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "description too short", input: models.SeoInput{MetaDescription: strings.Repeat("a", 119)},
			id: "meta-description-length", status: models.StatusWarning},
		{name: "description in window", input: models.SeoInput{MetaDescription: strings.Repeat("a", 140)},
			id: "meta-description-length", status: models.StatusPass},
		{name: "description too long", input: models.SeoInput{MetaDescription: strings.Repeat("a", 161)},
			id: "meta-description-length", status: models.StatusWarning},
		{name: "call to action", input: models.SeoInput{MetaDescription: "Discover our red shoes for every season."},
			id: "meta-description-cta", status: models.StatusPass},
		{name: "no call to action", input: models.SeoInput{MetaDescription: "Our red shoes for every season."},
			id: "meta-description-cta", status: models.StatusWarning},
		{name: "no description", input: models.SeoInput{}, id: "meta-description-cta", absent: true},
	})
}

func TestReadabilityRules(t *testing.T) {
	easy := post(paragraph("The cat sat on the mat. The dog ran to the park."))
	varied := post(paragraph("Cats sat down. Dogs ran off. Birds sang loudly."))

	runRuleCases(t, []ruleCase{
		{name: "short words read easily", input: easy, id: "readability-score", status: models.StatusPass},
		{name: "middling text", input: post(paragraph("Alpha alpha alpha alpha alpha alpha alpha cat cat cat.")),
			id: "readability-score", status: models.StatusWarning},
		{name: "dense text", input: post(paragraph(filler("alpha", 10) + ".")),
			id: "readability-score", status: models.StatusFail},
		{name: "no sentences", input: post(), id: "readability-score", absent: true},

		{name: "short sentences", input: easy, id: "sentence-length", status: models.StatusPass},
		{name: "half the sentences are long", input: post(paragraph(filler("word", 24) + " end. Short one.")),
			id: "sentence-length", status: models.StatusWarning},

		{name: "comfortable paragraphs", input: easy, id: "paragraph-length", status: models.StatusPass},
		{name: "wall of text", input: post(paragraph(filler("word", 160) + ".")),
			id: "paragraph-length", status: models.StatusWarning},

		{name: "active voice", input: easy, id: "passive-voice", status: models.StatusPass},
		{name: "passive voice", input: post(paragraph("The house was built by hand.")),
			id: "passive-voice", status: models.StatusWarning},

		{name: "no transitions", input: varied, id: "transition-words", status: models.StatusWarning},
		{name: "transitions", input: post(paragraph("However, cats sat down. Therefore dogs ran off. Birds sang loudly.")),
			id: "transition-words", status: models.StatusPass},
		{name: "too few sentences for ratios", input: easy, id: "transition-words", absent: true},

		{name: "varied openings", input: varied, id: "sentence-starts", status: models.StatusPass},
		{name: "repeated openings", input: post(paragraph("The cat sat. The dog ran. The bird sang.")),
			id: "sentence-starts", status: models.StatusWarning},
	})
}

func TestReadabilityRules_LocaleConstants(t *testing.T) {
	engine := NewEngine(nil)
	input := post(paragraph("Alpha alpha alpha alpha alpha alpha alpha cat cat cat."))

	en, ok := find(engine.AnalyzeAt(input, models.SeoConfig{Locale: "en"}, fixedNow), "readability-score")
	require.True(t, ok)
	fr, ok := find(engine.AnalyzeAt(input, models.SeoConfig{Locale: "fr"}, fixedNow), "readability-score")
	require.True(t, ok)

	// same words and syllables, different formula constants
	assert.Contains(t, en.Message, "53")
	assert.Contains(t, fr.Message, "72")
	assert.Equal(t, models.StatusWarning, en.Status)
	assert.Equal(t, models.StatusPass, fr.Status)
}

func TestContentRules(t *testing.T) {
	withKeyword := func(body *models.RichTextNode) models.SeoInput {
		in := post()
		in.Content = body
		in.FocusKeyword = "seo"
		return in
	}
	long := post(paragraph(filler("alpha", 150)))
	longWithList := post(paragraph(filler("alpha", 150)), list("Grip", "Weight"))
	short := post(paragraph(filler("alpha", 50)))

	runRuleCases(t, []ruleCase{
		{name: "spread over two thirds", input: withKeyword(bodyAt(300, "seo", 0, 150)),
			id: "keyword-distribution", status: models.StatusPass},
		{name: "concentrated at the start", input: withKeyword(bodyAt(300, "seo", 0, 10)),
			id: "keyword-distribution", status: models.StatusWarning},
		{name: "keyword never used", input: withKeyword(bodyAt(300, "seo")), id: "keyword-distribution", absent: true},
		{name: "text too short to split", input: withKeyword(bodyAt(6, "seo", 0)), id: "keyword-distribution", absent: true},

		{name: "thin", input: short, id: "thin-content", status: models.StatusWarning},
		{name: "substantial", input: long, id: "thin-content", status: models.StatusPass},

		{name: "has a list", input: longWithList, id: "content-lists", status: models.StatusPass},
		{name: "no list", input: long, id: "content-lists", status: models.StatusWarning},
		{name: "lists not judged on thin pages", input: short, id: "content-lists", absent: true},
	})
}

func TestHeadingRules_SubheadingFrequency(t *testing.T) {
	sectioned := post(
		heading("h2", "Part one"), paragraph(filler("alpha", 300)),
		heading("h2", "Part two"), paragraph(filler("alpha", 300)),
	)

	runRuleCases(t, []ruleCase{
		{name: "one subheading per 300 words", input: sectioned,
			id: "subheading-frequency", status: models.StatusPass},
		{name: "600 words without subheadings", input: post(paragraph(filler("alpha", 600))),
			id: "subheading-frequency", status: models.StatusWarning},
		{name: "short text", input: post(paragraph(filler("alpha", 100))), id: "subheading-frequency", absent: true},
	})
}

func TestSecondaryKeywordRules(t *testing.T) {
	covered := post(heading("h2", "Trail shoes explained"), paragraph("Good trail shoes grip well."))
	covered.FocusKeyword = "running shoes"
	covered.FocusKeywords = []string{"Trail Shoes"}

	missing := post(paragraph("Road shoes are light."))
	missing.FocusKeyword = "running shoes"
	missing.FocusKeywords = []string{"trail shoes", "running shoes"}

	crowded := post(paragraph("Shoes."))
	crowded.FocusKeywords = []string{"one", "two", "three", "four", "five", "six"}

	runRuleCases(t, []ruleCase{
		{name: "used in the body", input: covered, id: "secondary-keyword-body", status: models.StatusPass},
		{name: "not in the body", input: missing, id: "secondary-keyword-body", status: models.StatusWarning},
		{name: "used in a heading", input: covered, id: "secondary-keyword-headings", status: models.StatusPass},
		{name: "no heading uses one", input: missing, id: "secondary-keyword-headings", status: models.StatusWarning},
		{name: "focus keyword is not counted", input: missing, id: "secondary-keyword-count", status: models.StatusPass},
		{name: "too many", input: crowded, id: "secondary-keyword-count", status: models.StatusWarning},
		{name: "none set", input: post(paragraph("Shoes.")), id: "secondary-keyword-body", absent: true},
	})
}

func TestQualityRules(t *testing.T) {
	repeated := "Our shoes are made to last for years."

	runRuleCases(t, []ruleCase{
		{name: "repeated paragraph", input: post(paragraph(repeated), paragraph("Something else entirely here."), paragraph(repeated)),
			id: "duplicate-paragraphs", status: models.StatusWarning},
		{name: "distinct paragraphs", input: post(paragraph(repeated), paragraph("Something else entirely here.")),
			id: "duplicate-paragraphs", status: models.StatusPass},
		{name: "single paragraph", input: post(paragraph(repeated)), id: "duplicate-paragraphs", absent: true},

		{name: "shouted title", input: models.SeoInput{MetaTitle: "BIG SUMMER SALE"}, id: "all-caps", status: models.StatusWarning},
		{name: "shouted body", input: post(paragraph("LOUD LOUD quiet words here.")), id: "all-caps", status: models.StatusWarning},
		{name: "normal case", input: post(paragraph("Quiet words only here.")), id: "all-caps", status: models.StatusPass},

		{name: "double exclamation in title", input: models.SeoInput{MetaTitle: "Huge deals!!"},
			id: "excessive-punctuation", status: models.StatusWarning},
		{name: "interrobang in description", input: models.SeoInput{MetaTitle: "Deals", MetaDescription: "Really?!"},
			id: "excessive-punctuation", status: models.StatusWarning},
		{name: "long ellipsis in body", input: post(paragraph("Wait for it....")), id: "excessive-punctuation", status: models.StatusWarning},
		{name: "plain punctuation", input: models.SeoInput{MetaTitle: "Huge deals!"}, id: "excessive-punctuation", status: models.StatusPass},

		{name: "repetitive vocabulary", input: post(paragraph(filler("alpha", 120))), id: "lexical-diversity", status: models.StatusWarning},
		{name: "varied vocabulary", input: post(paragraph(distinctWords(120))), id: "lexical-diversity", status: models.StatusPass},
		{name: "too few words to judge", input: post(paragraph(filler("alpha", 99))), id: "lexical-diversity", absent: true},
	})
}

func TestSocialRules(t *testing.T) {
	withImage := func(m models.Media) models.SeoInput {
		return models.SeoInput{MetaImage: &m}
	}

	runRuleCases(t, []ruleCase{
		{name: "no image", input: models.SeoInput{}, id: "og-image", status: models.StatusWarning},
		{name: "unpopulated reference", input: withImage(models.Media{ID: "42"}), id: "og-image", status: models.StatusWarning},
		{name: "image set", input: withImage(models.Media{URL: "/og.jpg"}), id: "og-image", status: models.StatusPass},

		{name: "small image", input: withImage(models.Media{URL: "/og.jpg", Width: 600, Height: 315}),
			id: "og-image-dimensions", status: models.StatusWarning},
		{name: "large image", input: withImage(models.Media{URL: "/og.jpg", Width: 1200, Height: 630}),
			id: "og-image-dimensions", status: models.StatusPass},
		{name: "unknown size", input: withImage(models.Media{URL: "/og.jpg"}), id: "og-image-dimensions", absent: true},

		{name: "no alt", input: withImage(models.Media{URL: "/og.jpg"}), id: "og-image-alt", status: models.StatusWarning},
		{name: "alt set", input: withImage(models.Media{URL: "/og.jpg", Alt: "Red shoes"}), id: "og-image-alt", status: models.StatusPass},
	})
}

func TestSchemaRules(t *testing.T) {
	updated := fixedNow.AddDate(0, 0, -3)
	datedPost := post(paragraph("Text."))
	datedPost.UpdatedAt = &updated

	faq := func(items ...models.BlockItem) models.SeoInput {
		return models.SeoInput{Slug: "help", Blocks: []models.Block{{BlockType: "faq", Items: items}}}
	}
	answer := root(paragraph("Within two days."))

	runRuleCases(t, []ruleCase{
		{name: "title and description", input: models.SeoInput{MetaTitle: "Shoes", MetaDescription: "All our shoes."},
			id: "schema-basics", status: models.StatusPass},
		{name: "description missing", input: models.SeoInput{MetaTitle: "Shoes"}, id: "schema-basics", status: models.StatusWarning},

		{name: "social image", input: models.SeoInput{MetaImage: &models.Media{URL: "/og.jpg"}}, id: "schema-image", status: models.StatusPass},
		{name: "body image", input: models.SeoInput{HeroMedia: &models.Media{URL: "/hero.jpg"}}, id: "schema-image", status: models.StatusPass},
		{name: "no image", input: models.SeoInput{}, id: "schema-image", status: models.StatusWarning},

		{name: "dated article", input: datedPost, id: "schema-date", status: models.StatusPass},
		{name: "undated article", input: post(paragraph("Text.")), id: "schema-date", status: models.StatusWarning},
		{name: "pages carry no article date", input: models.SeoInput{Slug: "about"}, id: "schema-date", absent: true},

		{name: "complete faq", input: faq(models.BlockItem{Title: "How fast is shipping?", RichText: answer}),
			id: "schema-faq", status: models.StatusPass},
		{name: "faq entry without answer", input: faq(models.BlockItem{Title: "How fast is shipping?"}),
			id: "schema-faq", status: models.StatusWarning},
		{name: "questions outside a faq block", input: models.SeoInput{Slug: "help", Blocks: []models.Block{
			{BlockType: "content", Heading: "How fast is shipping?"},
			{BlockType: "content", Heading: "Can I return shoes?"},
		}}, id: "schema-faq", status: models.StatusWarning},
		{name: "no questions", input: models.SeoInput{Slug: "about"}, id: "schema-faq", absent: true},
	})
}

func TestTechnicalRules(t *testing.T) {
	site := models.SeoConfig{SiteHost: "acme.com"}
	page := func(slug, canonical string) models.SeoInput {
		return models.SeoInput{Slug: slug, CanonicalURL: canonical}
	}

	runRuleCases(t, []ruleCase{
		{name: "no canonical", input: page("red-shoes", ""), id: "canonical-url", absent: true},
		{name: "self path", input: page("red-shoes", "/red-shoes"), cfg: site, id: "canonical-url", status: models.StatusPass},
		{name: "self absolute", input: page("red-shoes", "https://www.acme.com/red-shoes/"), cfg: site,
			id: "canonical-url", status: models.StatusPass},
		{name: "other page", input: page("red-shoes", "/blue-shoes"), cfg: site, id: "canonical-url", status: models.StatusWarning},
		{name: "other site", input: page("red-shoes", "https://other.org/red-shoes"), cfg: site,
			id: "canonical-url", status: models.StatusWarning},
		{name: "unsupported scheme", input: page("red-shoes", "ftp://acme.com/red-shoes"), cfg: site,
			id: "canonical-url", status: models.StatusFail},

		{name: "indexable", input: models.SeoInput{Slug: "a"}, id: "robots-index", status: models.StatusPass},
		{name: "noindex", input: models.SeoInput{Slug: "a", Robots: "noindex, follow"}, id: "robots-index", status: models.StatusWarning},
		{name: "nofollow", input: models.SeoInput{Slug: "a", Robots: "index, nofollow"}, id: "robots-index", status: models.StatusWarning},

		{name: "shallow url", input: models.SeoInput{Slug: "blog/red-shoes"}, id: "slug-depth", status: models.StatusPass},
		{name: "deep url", input: models.SeoInput{Slug: "shop/men/shoes/red"}, id: "slug-depth", status: models.StatusWarning},
		{name: "globals have no url", input: models.SeoInput{Slug: "footer", IsGlobal: true}, id: "slug-depth", absent: true},
	})
}

func TestAccessibilityRules(t *testing.T) {
	withAlt := func(alt string) models.SeoInput {
		return models.SeoInput{Slug: "a", HeroMedia: &models.Media{URL: "/media/red-shoes.jpg", Alt: alt}}
	}
	linked := func(label string) models.SeoInput {
		return post(&models.RichTextNode{Type: "paragraph", Children: []*models.RichTextNode{
			text("Read "), anchor("https://example.org/study", label),
		}})
	}

	runRuleCases(t, []ruleCase{
		{name: "concise alt", input: withAlt("Red shoes on a track"), id: "alt-text-length", status: models.StatusPass},
		{name: "long alt", input: withAlt(strings.Repeat("a", 126)), id: "alt-text-length", status: models.StatusWarning},
		{name: "no alt texts", input: withAlt(""), id: "alt-text-length", absent: true},

		{name: "describes content", input: withAlt("Red shoes on a track"), id: "alt-text-redundant", status: models.StatusPass},
		{name: "announces an image", input: withAlt("Image of red shoes"), id: "alt-text-redundant", status: models.StatusWarning},

		{name: "empty heading", input: post(heading("h2", ""), paragraph("Text.")), id: "empty-headings", status: models.StatusFail},
		{name: "headings with text", input: post(heading("h2", "Part"), paragraph("Text.")), id: "empty-headings", status: models.StatusPass},
		{name: "no headings", input: post(paragraph("Text.")), id: "empty-headings", absent: true},

		{name: "readable link", input: linked("the 2025 study"), id: "link-text-quality", status: models.StatusPass},
		{name: "raw url as text", input: linked("https://example.org/study"), id: "link-text-quality", status: models.StatusWarning},
		{name: "single character", input: linked("x"), id: "link-text-quality", status: models.StatusWarning},
		{name: "no links", input: post(paragraph("Text.")), id: "link-text-quality", absent: true},
	})
}
