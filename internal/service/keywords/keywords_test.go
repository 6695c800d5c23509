package keywords

import (
	"fmt"
	"strings"
	"testing"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/lexicon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var en = lexicon.English()

func findSuggestion(r Research, keyword string, typ models.SuggestionType) (models.KeywordSuggestion, bool) {
	for _, s := range r.Suggestions {
		if s.Keyword == keyword && s.Type == typ {
			return s, true
		}
	}
	return models.KeywordSuggestion{}, false
}

func TestDetectCannibalization(t *testing.T) {
	docs := []models.DocRecord{
		{ID: "1", Collection: "posts", Title: "Red shoes guide", FocusKeyword: "Red Shoes"},
		{ID: "2", Collection: "pages", Title: "Shop red shoes", FocusKeyword: "red  shoes "},
		{ID: "3", Collection: "posts", Title: "Blue shoes", FocusKeyword: "blue shoes"},
	}

	result := DetectCannibalization(en, docs, map[string]int{"posts:1": 72})

	require.Len(t, result.Conflicts, 1)
	conflict := result.Conflicts[0]
	assert.Equal(t, "red shoes", conflict.Keyword)
	require.Len(t, conflict.Documents, 2)
	assert.Equal(t, "1", conflict.Documents[0].ID)
	require.NotNil(t, conflict.Documents[0].Score)
	assert.Equal(t, 72, *conflict.Documents[0].Score)
	assert.Nil(t, conflict.Documents[1].Score)

	assert.Equal(t, CannibalizationStats{TotalDocuments: 3, TrackedKeywords: 2, Conflicts: 1, AffectedDocuments: 2}, result.Stats)
}

func TestDetectCannibalization_SecondaryKeywordsAndOrdering(t *testing.T) {
	docs := []models.DocRecord{
		{ID: "1", Title: "A", FocusKeyword: "trail running", FocusKeywords: []string{"running shoes"}},
		{ID: "2", Title: "B", FocusKeyword: "running shoes"},
		{ID: "3", Title: "C", FocusKeyword: "Trail Running", FocusKeywords: []string{"Running Shoes", "running shoes"}},
		{ID: "4", Title: "D", FocusKeyword: "alpine hiking"},
		{ID: "5", Title: "E", FocusKeywords: []string{"alpine hiking"}},
	}

	result := DetectCannibalization(en, docs, nil)

	var keywords []string
	var sizes []int
	for _, c := range result.Conflicts {
		keywords = append(keywords, c.Keyword)
		sizes = append(sizes, len(c.Documents))
	}
	assert.Equal(t, []string{"running shoes", "alpine hiking", "trail running"}, keywords)
	assert.Equal(t, []int{3, 2, 2}, sizes)
}

func TestResearchKeywords_UnusedReportsDocumentFrequency(t *testing.T) {
	docs := make([]models.DocRecord, 10)
	for i := range docs {
		docs[i] = models.DocRecord{ID: fmt.Sprint(i), Title: fmt.Sprintf("Doc %d", i), FullText: fmt.Sprintf("filler%d text", i)}
	}
	for i := 0; i < 3; i++ {
		docs[i].FullText += " compost compost"
	}

	r := ResearchKeywords(en, docs, Options{})

	s, ok := findSuggestion(r, "compost", models.SuggestionUnused)
	require.True(t, ok)
	assert.Equal(t, 3, s.Frequency)
	// 6 * ln(10/3) * 2 = 14.4
	assert.Equal(t, 14, s.Score)
	assert.Equal(t, []string{"Doc 0", "Doc 1", "Doc 2"}, s.SuggestedFor)
	assert.Empty(t, s.CurrentlyUsedBy)
}

func TestResearchKeywords_UnusedSkipsFocusKeywords(t *testing.T) {
	docs := []models.DocRecord{
		{Title: "A", FocusKeyword: "compost", FullText: "compost compost compost"},
		{Title: "B", FullText: "garden"},
		{Title: "C", FullText: "garden"},
	}

	r := ResearchKeywords(en, docs, Options{})
	_, ok := findSuggestion(r, "compost", models.SuggestionUnused)
	assert.False(t, ok)
}

func TestResearchKeywords_TrendingAndRelated(t *testing.T) {
	docs := []models.DocRecord{
		{Title: "Shoes", FocusKeyword: "running shoe", FullText: "shoes for runners and shoes for walkers"},
		{Title: "Guide", FullText: "choosing shoes is hard"},
		{Title: "Care", FullText: "clean your shoes"},
	}

	r := ResearchKeywords(en, docs, Options{})

	trending, ok := findSuggestion(r, "shoes", models.SuggestionTrending)
	require.True(t, ok)
	assert.Equal(t, 3, trending.Frequency)
	assert.Equal(t, 6, trending.Score)

	related, ok := findSuggestion(r, "shoes", models.SuggestionRelated)
	require.True(t, ok)
	assert.Equal(t, 30, related.Score)
	assert.Equal(t, []string{"Shoes"}, related.CurrentlyUsedBy)

	_, ok = findSuggestion(r, "running", models.SuggestionRelated)
	assert.False(t, ok)
}

func TestResearchKeywords_RelatedIncludesWordsOfFocusPhrase(t *testing.T) {
	docs := []models.DocRecord{
		{Title: "Red", FocusKeyword: "red shoes", FullText: "red shoes for the summer"},
		{Title: "Care", FocusKeyword: "boots", FullText: "caring for shoes and boots"},
	}

	r := ResearchKeywords(en, docs, Options{})

	s, ok := findSuggestion(r, "shoes", models.SuggestionRelated)
	require.True(t, ok)
	assert.Equal(t, 20, s.Score)
	assert.Equal(t, []string{"Red"}, s.CurrentlyUsedBy)

	red, ok := findSuggestion(r, "red", models.SuggestionRelated)
	require.True(t, ok)
	assert.Equal(t, 10, red.Score)

	_, ok = findSuggestion(r, "boots", models.SuggestionRelated)
	assert.False(t, ok)
}

func TestResearchKeywords_LongTail(t *testing.T) {
	docs := []models.DocRecord{
		{Title: "A", FullText: "organic garden soil. organic garden soil."},
		{Title: "B", FullText: "organic garden soil"},
	}

	r := ResearchKeywords(en, docs, Options{})

	s, ok := findSuggestion(r, "organic garden soil", models.SuggestionLongTail)
	require.True(t, ok)
	assert.Equal(t, 2, s.Frequency)
	// 3 occurrences * 3 + 2 documents * 5
	assert.Equal(t, 19, s.Score)
	assert.Equal(t, []string{"A", "B"}, s.SuggestedFor)
}

func TestResearchKeywords_CapAndOrder(t *testing.T) {
	var words []string
	for i := 0; i < 30; i++ {
		words = append(words, fmt.Sprintf("term%02d", i))
	}
	text := strings.Join(words, " ")
	docs := []models.DocRecord{{Title: "A", FullText: text}, {Title: "B", FullText: text}}

	r := ResearchKeywords(en, docs, Options{MaxPerType: 5})

	assert.Equal(t, 5, r.Stats.ByType[models.SuggestionTrending])
	for i := 1; i < len(r.Suggestions); i++ {
		prev, cur := r.Suggestions[i-1], r.Suggestions[i]
		assert.True(t, prev.Score > cur.Score || (prev.Score == cur.Score && prev.Keyword <= cur.Keyword))
	}
	assert.Equal(t, 2, r.Stats.TotalDocuments)
}

func TestResearchKeywords_Empty(t *testing.T) {
	r := ResearchKeywords(en, nil, Options{})
	assert.NotNil(t, r.Suggestions)
	assert.Empty(t, r.Suggestions)
}
