// Package keywords derives keyword suggestions and cannibalization conflicts
// from corpus-wide term statistics.
package keywords

import (
	"math"
	"sort"
	"strings"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/lexicon"
	"content_intelligence/internal/pkg/tokenizer"
)

const (
	DefaultMaxPerType = 20

	minUnusedFrequency   = 3
	minTrendingDocs      = 2
	minLongTailFrequency = 2
	minScore             = 10
	maxSuggestedFor      = 3
)

type Options struct {
	// MaxPerType caps each suggestion category; 0 means DefaultMaxPerType.
	MaxPerType int
}

type ResearchStats struct {
	TotalDocuments int                           `json:"totalDocuments"`
	UniqueTerms    int                           `json:"uniqueTerms"`
	UniqueNgrams   int                           `json:"uniqueNgrams"`
	FocusKeywords  int                           `json:"focusKeywords"`
	ByType         map[models.SuggestionType]int `json:"byType"`
}

type Research struct {
	Suggestions []models.KeywordSuggestion `json:"suggestions"`
	Stats       ResearchStats              `json:"stats"`
}

// corpus holds the frequency tables of one document set.
type corpus struct {
	docs []models.DocRecord

	termFreq  []map[string]int
	docFreq   map[string]int
	totalFreq map[string]int

	ngramFreq map[string]int
	ngramDocs map[string]map[int]int

	// focus maps each normalized focus keyword onto the indexes of the
	// documents that target it.
	focus map[string][]int
}

func newCorpus(lex lexicon.Table, docs []models.DocRecord) *corpus {
	c := &corpus{
		docs:      docs,
		termFreq:  make([]map[string]int, len(docs)),
		docFreq:   map[string]int{},
		totalFreq: map[string]int{},
		ngramFreq: map[string]int{},
		ngramDocs: map[string]map[int]int{},
		focus:     map[string][]int{},
	}
	for i, d := range docs {
		tf := map[string]int{}
		for _, t := range tokenizer.Tokenize(lex, d.FullText) {
			tf[t]++
			c.totalFreq[t]++
		}
		for t := range tf {
			c.docFreq[t]++
		}
		c.termFreq[i] = tf

		for _, ng := range tokenizer.ExtractNgrams(lex, d.FullText) {
			c.ngramFreq[ng]++
			if c.ngramDocs[ng] == nil {
				c.ngramDocs[ng] = map[int]int{}
			}
			c.ngramDocs[ng][i]++
		}

		for _, kw := range focusKeywords(lex, d) {
			c.focus[kw] = append(c.focus[kw], i)
		}
	}
	return c
}

// focusKeywords returns the distinct normalized primary and secondary
// keywords of d.
func focusKeywords(lex lexicon.Table, d models.DocRecord) []string {
	seen := map[string]bool{}
	var out []string
	for _, raw := range append([]string{d.FocusKeyword}, d.FocusKeywords...) {
		kw := Normalize(lex, raw)
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
	}
	return out
}

// Normalize is the comparison form of a keyword: normalized words joined by
// single spaces.
func Normalize(lex lexicon.Table, keyword string) string {
	return strings.Join(tokenizer.Words(lex, keyword), " ")
}

// ResearchKeywords suggests keywords from the term statistics of docs. Every
// suggestion reports document frequency as its frequency.
func ResearchKeywords(lex lexicon.Table, docs []models.DocRecord, opts Options) Research {
	if opts.MaxPerType <= 0 {
		opts.MaxPerType = DefaultMaxPerType
	}
	c := newCorpus(lex, docs)

	groups := [][]models.KeywordSuggestion{
		c.unused(),
		c.trending(),
		c.related(lex),
		c.longTail(),
	}

	research := Research{
		Suggestions: []models.KeywordSuggestion{},
		Stats: ResearchStats{
			TotalDocuments: len(docs),
			UniqueTerms:    len(c.docFreq),
			UniqueNgrams:   len(c.ngramFreq),
			FocusKeywords:  len(c.focus),
			ByType:         map[models.SuggestionType]int{},
		},
	}
	for _, g := range groups {
		sortSuggestions(g)
		if len(g) > opts.MaxPerType {
			g = g[:opts.MaxPerType]
		}
		for _, s := range g {
			research.Stats.ByType[s.Type]++
		}
		research.Suggestions = append(research.Suggestions, g...)
	}
	sortSuggestions(research.Suggestions)
	return research
}

func sortSuggestions(s []models.KeywordSuggestion) {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].Score != s[j].Score {
			return s[i].Score > s[j].Score
		}
		if s[i].Keyword != s[j].Keyword {
			return s[i].Keyword < s[j].Keyword
		}
		return s[i].Type < s[j].Type
	})
}

// unused: frequent, distinctive terms nobody targets yet.
func (c *corpus) unused() []models.KeywordSuggestion {
	var out []models.KeywordSuggestion
	n := float64(len(c.docs))
	for term, total := range c.totalFreq {
		if total < minUnusedFrequency || c.isFocus(term) {
			continue
		}
		df := c.docFreq[term]
		score := capScore(float64(total)*math.Log(n/float64(df))*2, 100)
		if score < minScore {
			continue
		}
		out = append(out, c.suggestion(term, models.SuggestionUnused, score, df))
	}
	return out
}

// trending: terms shared by several documents.
func (c *corpus) trending() []models.KeywordSuggestion {
	var out []models.KeywordSuggestion
	for term, df := range c.docFreq {
		if df < minTrendingDocs {
			continue
		}
		score := capScore(float64(c.totalFreq[term])*1.5, 100)
		out = append(out, c.suggestion(term, models.SuggestionTrending, score, df))
	}
	return out
}

// related: terms sharing a stem with a word of an existing focus keyword.
// A word of a multi-word focus keyword is a candidate on its own; only whole
// focus keywords are skipped.
func (c *corpus) related(lex lexicon.Table) []models.KeywordSuggestion {
	stems := map[string][]string{}
	for kw := range c.focus {
		for _, w := range strings.Fields(kw) {
			if lex.IsStopWord(w) {
				continue
			}
			stem := tokenizer.SimpleStem(lex, w)
			stems[stem] = append(stems[stem], kw)
		}
	}

	var out []models.KeywordSuggestion
	for term, df := range c.docFreq {
		if c.isFocus(term) {
			continue
		}
		keywords, ok := stems[tokenizer.SimpleStem(lex, term)]
		if !ok {
			continue
		}
		s := c.suggestion(term, models.SuggestionRelated, capScore(float64(df)*10, 80), df)
		s.CurrentlyUsedBy = c.usersOf(keywords...)
		out = append(out, s)
	}
	return out
}

// longTail: recurring two and three word phrases.
func (c *corpus) longTail() []models.KeywordSuggestion {
	var out []models.KeywordSuggestion
	for ng, freq := range c.ngramFreq {
		if freq < minLongTailFrequency || c.isFocus(ng) {
			continue
		}
		perDoc := c.ngramDocs[ng]
		spread := len(perDoc)
		score := capScore(float64(freq)*3+float64(spread)*5, 100)
		if score < minScore {
			continue
		}
		s := models.KeywordSuggestion{
			Keyword:         ng,
			Type:            models.SuggestionLongTail,
			Score:           score,
			Frequency:       spread,
			CurrentlyUsedBy: []string{},
			SuggestedFor:    c.topDocs(perDoc),
		}
		out = append(out, s)
	}
	return out
}

func (c *corpus) isFocus(keyword string) bool {
	_, ok := c.focus[keyword]
	return ok
}

func (c *corpus) suggestion(term string, typ models.SuggestionType, score, df int) models.KeywordSuggestion {
	docs := map[int]int{}
	for i, tf := range c.termFreq {
		if tf[term] > 0 {
			docs[i] = tf[term]
		}
	}
	return models.KeywordSuggestion{
		Keyword:         term,
		Type:            typ,
		Score:           score,
		Frequency:       df,
		CurrentlyUsedBy: c.usersOf(term),
		SuggestedFor:    c.topDocs(docs),
	}
}

// usersOf lists the titles of documents targeting any of keywords.
func (c *corpus) usersOf(keywords ...string) []string {
	seen := map[int]bool{}
	out := []string{}
	for _, kw := range keywords {
		for _, i := range c.focus[kw] {
			if !seen[i] {
				seen[i] = true
				out = append(out, c.docs[i].Title)
			}
		}
	}
	sort.Strings(out)
	return out
}

// topDocs returns the titles of the documents with the highest counts, at most
// maxSuggestedFor of them.
func (c *corpus) topDocs(counts map[int]int) []string {
	idx := make([]int, 0, len(counts))
	for i := range counts {
		idx = append(idx, i)
	}
	sort.Slice(idx, func(a, b int) bool {
		wa, wb := counts[idx[a]], counts[idx[b]]
		if wa != wb {
			return wa > wb
		}
		return idx[a] < idx[b]
	})
	if len(idx) > maxSuggestedFor {
		idx = idx[:maxSuggestedFor]
	}
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.docs[i].Title)
	}
	return out
}

func capScore(v float64, max int) int {
	s := int(math.Round(v))
	if s > max {
		return max
	}
	return s
}
