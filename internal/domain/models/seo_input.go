package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// SeoInput is the flattened, read-only view of one document under analysis.
// Content is the body of posts, Blocks the body of everything else.
type SeoInput struct {
	MetaTitle           string        `json:"metaTitle"`
	MetaDescription     string        `json:"metaDescription"`
	MetaImage           *Media        `json:"metaImage,omitempty"`
	Slug                string        `json:"slug"`
	FocusKeyword        string        `json:"focusKeyword"`
	FocusKeywords       []string      `json:"focusKeywords,omitempty"`
	HeroTitle           string        `json:"heroTitle,omitempty"`
	HeroRichText        *RichTextNode `json:"heroRichText,omitempty"`
	HeroLinks           []LinkRef     `json:"heroLinks,omitempty"`
	HeroMedia           *Media        `json:"heroMedia,omitempty"`
	Blocks              []Block       `json:"blocks,omitempty"`
	Content             *RichTextNode `json:"content,omitempty"`
	IsPost              bool          `json:"isPost"`
	IsCornerstone       bool          `json:"isCornerstone"`
	UpdatedAt           *time.Time    `json:"updatedAt,omitempty"`
	ContentLastReviewed *time.Time    `json:"contentLastReviewed,omitempty"`
	IsGlobal            bool          `json:"isGlobal"`
	CanonicalURL        string        `json:"canonicalUrl,omitempty"`
	Robots              string        `json:"robots,omitempty"`
}

// Block is one typed section of a page layout.
type Block struct {
	BlockType string        `json:"blockType"`
	Heading   string        `json:"heading,omitempty"`
	RichText  *RichTextNode `json:"richText,omitempty"`
	Media     []Media       `json:"media,omitempty"`
	Links     []LinkRef     `json:"links,omitempty"`
	Items     []BlockItem   `json:"items,omitempty"`
	Price     string        `json:"price,omitempty"`
}

// BlockItem is a repeated entry inside a block (FAQ entry, feature, testimonial).
type BlockItem struct {
	Title    string        `json:"title,omitempty"`
	RichText *RichTextNode `json:"richText,omitempty"`
}

// LinkRef is a structured link field: either a custom URL or a reference to
// another document.
type LinkRef struct {
	Label     string  `json:"label,omitempty"`
	Type      string  `json:"type,omitempty"`
	URL       string  `json:"url,omitempty"`
	Reference *DocRef `json:"reference,omitempty"`
}

// Media is an uploaded asset. Unpopulated references decode to a Media that
// only carries its ID.
type Media struct {
	ID       string `json:"id,omitempty"`
	URL      string `json:"url,omitempty"`
	Alt      string `json:"alt,omitempty"`
	Filename string `json:"filename,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Filesize int64  `json:"filesize,omitempty"`
}

type mediaAlias Media

func (m *Media) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] != '{' {
		var id any
		if err := json.Unmarshal(data, &id); err != nil {
			return nil
		}
		switch v := id.(type) {
		case string:
			m.ID = v
		case float64:
			m.ID = strconv.FormatInt(int64(v), 10)
		}
		return nil
	}
	var alias mediaAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return nil
	}
	*m = Media(alias)
	return nil
}

// Populated reports whether the media carries more than a bare id.
func (m *Media) Populated() bool {
	return m != nil && (m.URL != "" || m.Filename != "" || m.Alt != "")
}
