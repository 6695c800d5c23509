package models

import "time"

// ExtractedLink is a link found in a document body.
type ExtractedLink struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// DocRecord is one corpus document prepared for site-wide analysis.
type DocRecord struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Slug          string          `json:"slug"`
	Collection    string          `json:"collection"`
	FocusKeyword  string          `json:"focusKeyword,omitempty"`
	FocusKeywords []string        `json:"focusKeywords,omitempty"`
	FullText      string          `json:"-"`
	WordCount     int             `json:"wordCount"`
	Links         []ExtractedLink `json:"-"`
}

// Key identifies a document across collections.
func (d DocRecord) Key() string {
	return d.Collection + ":" + d.ID
}

// RawDocument is a document as returned by a DocumentSource.
type RawDocument struct {
	ID         string   `json:"id"`
	Collection string   `json:"collection"`
	Title      string   `json:"title"`
	Input      SeoInput `json:"input"`
}

type GraphNode struct {
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Collection string `json:"collection"`
	InDegree   int    `json:"inDegree"`
	OutDegree  int    `json:"outDegree"`
	IsOrphan   bool   `json:"isOrphan"`
	IsHub      bool   `json:"isHub"`
}

type GraphEdge struct {
	Source     string `json:"source"`
	Target     string `json:"target"`
	AnchorText string `json:"anchorText"`
}

// Redirect maps an old path onto a new one.
type Redirect struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SuggestionType is the category of a keyword suggestion.
type SuggestionType string

const (
	SuggestionUnused   SuggestionType = "unused"
	SuggestionTrending SuggestionType = "trending"
	SuggestionRelated  SuggestionType = "related"
	SuggestionLongTail SuggestionType = "long-tail"
)

type KeywordSuggestion struct {
	Keyword         string         `json:"keyword"`
	Type            SuggestionType `json:"type"`
	Score           int            `json:"score"`
	Frequency       int            `json:"frequency"`
	CurrentlyUsedBy []string       `json:"currentlyUsedBy"`
	SuggestedFor    []string       `json:"suggestedFor"`
}

// ScoreSnapshot is one persisted analysis score of a document.
type ScoreSnapshot struct {
	ID           string    `json:"id"`
	DocKey       string    `json:"docKey"`
	Score        int       `json:"score"`
	Level        Level     `json:"level"`
	FailCount    int       `json:"failCount"`
	WarningCount int       `json:"warningCount"`
	RecordedAt   time.Time `json:"recordedAt"`
}
