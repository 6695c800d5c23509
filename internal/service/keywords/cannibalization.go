package keywords

import (
	"sort"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/lexicon"
)

type ConflictDocument struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Collection string `json:"collection"`
	// Score is the latest recorded score, nil when none was tracked.
	Score *int `json:"score"`
}

type Conflict struct {
	Keyword   string             `json:"keyword"`
	Documents []ConflictDocument `json:"documents"`
}

type CannibalizationStats struct {
	TotalDocuments    int `json:"totalDocuments"`
	TrackedKeywords   int `json:"trackedKeywords"`
	Conflicts         int `json:"conflicts"`
	AffectedDocuments int `json:"affectedDocuments"`
}

type Cannibalization struct {
	Conflicts []Conflict           `json:"conflicts"`
	Stats     CannibalizationStats `json:"stats"`
}

// DetectCannibalization groups docs by normalized focus keyword, primary and
// secondary alike. Every keyword targeted by two or more documents is a
// conflict. recentScores is keyed by DocRecord.Key and may be nil.
func DetectCannibalization(lex lexicon.Table, docs []models.DocRecord, recentScores map[string]int) Cannibalization {
	byKeyword := map[string][]int{}
	for i, d := range docs {
		for _, kw := range focusKeywords(lex, d) {
			byKeyword[kw] = append(byKeyword[kw], i)
		}
	}

	result := Cannibalization{Conflicts: []Conflict{}}
	affected := map[int]bool{}
	for kw, idx := range byKeyword {
		if len(idx) < 2 {
			continue
		}
		conflict := Conflict{Keyword: kw}
		for _, i := range idx {
			d := docs[i]
			cd := ConflictDocument{ID: d.ID, Title: d.Title, Slug: d.Slug, Collection: d.Collection}
			if score, ok := recentScores[d.Key()]; ok {
				cd.Score = &score
			}
			conflict.Documents = append(conflict.Documents, cd)
			affected[i] = true
		}
		result.Conflicts = append(result.Conflicts, conflict)
	}

	sort.Slice(result.Conflicts, func(i, j int) bool {
		a, b := result.Conflicts[i], result.Conflicts[j]
		if len(a.Documents) != len(b.Documents) {
			return len(a.Documents) > len(b.Documents)
		}
		return a.Keyword < b.Keyword
	})

	result.Stats = CannibalizationStats{
		TotalDocuments:    len(docs),
		TrackedKeywords:   len(byKeyword),
		Conflicts:         len(result.Conflicts),
		AffectedDocuments: len(affected),
	}
	return result
}
