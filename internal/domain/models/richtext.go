package models

import (
	"encoding/json"
	"strings"
)

// NodeKind is the closed set of rich-text node kinds the engine understands.
type NodeKind int

const (
	KindUnknown NodeKind = iota
	KindRoot
	KindParagraph
	KindText
	KindHeading
	KindLink
	KindList
	KindListItem
	KindQuote
	KindUpload
	KindLineBreak
	KindBlock
)

// RichTextNode is one node of an editor document tree. Only the fields read by
// the engine are modelled; anything else in the payload is ignored.
type RichTextNode struct {
	Type     string          `json:"type"`
	Tag      string          `json:"tag,omitempty"`
	Text     string          `json:"text,omitempty"`
	ListType string          `json:"listType,omitempty"`
	URL      string          `json:"url,omitempty"`
	Fields   *LinkFields     `json:"fields,omitempty"`
	Value    json.RawMessage `json:"value,omitempty"`
	Children []*RichTextNode `json:"children,omitempty"`
	Root     *RichTextNode   `json:"root,omitempty"`
}

// LinkFields holds the link payload of link/autolink nodes.
type LinkFields struct {
	URL      string  `json:"url,omitempty"`
	LinkType string  `json:"linkType,omitempty"`
	NewTab   bool    `json:"newTab,omitempty"`
	Doc      *DocRef `json:"doc,omitempty"`
}

// DocRef points at another document. Value is either a bare id (unpopulated)
// or the populated document.
type DocRef struct {
	RelationTo string          `json:"relationTo,omitempty"`
	Value      json.RawMessage `json:"value,omitempty"`
}

type populatedDoc struct {
	Slug string `json:"slug"`
}

// Slug returns the slug of the referenced document when it was populated by
// the caller.
func (d *DocRef) Slug() (string, bool) {
	if d == nil || len(d.Value) == 0 || d.Value[0] != '{' {
		return "", false
	}
	var doc populatedDoc
	if err := json.Unmarshal(d.Value, &doc); err != nil {
		return "", false
	}
	if doc.Slug == "" {
		return "", false
	}
	return doc.Slug, true
}

// Kind classifies the node. Unrecognised types map to KindUnknown.
func (n *RichTextNode) Kind() NodeKind {
	if n == nil {
		return KindUnknown
	}
	switch strings.ToLower(n.Type) {
	case "root":
		return KindRoot
	case "paragraph":
		return KindParagraph
	case "text":
		return KindText
	case "heading":
		return KindHeading
	case "link", "autolink":
		return KindLink
	case "list":
		return KindList
	case "listitem":
		return KindListItem
	case "quote":
		return KindQuote
	case "upload":
		return KindUpload
	case "linebreak":
		return KindLineBreak
	case "block", "inlineblock":
		return KindBlock
	}
	// documents are often stored as {"root": {...}} without a type
	if n.Type == "" && n.Root != nil {
		return KindRoot
	}
	return KindUnknown
}

// HeadingLevel returns 1..6 for heading nodes and 0 otherwise.
func (n *RichTextNode) HeadingLevel() int {
	if n.Kind() != KindHeading {
		return 0
	}
	tag := strings.ToLower(n.Tag)
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

// Media returns the populated upload value of an upload node.
func (n *RichTextNode) Media() (*Media, bool) {
	if n == nil || len(n.Value) == 0 || n.Value[0] != '{' {
		return nil, false
	}
	var m Media
	if err := json.Unmarshal(n.Value, &m); err != nil {
		return nil, false
	}
	return &m, true
}

// Nodes returns the children to walk, treating a wrapped root transparently.
func (n *RichTextNode) Nodes() []*RichTextNode {
	if n == nil {
		return nil
	}
	if n.Root != nil && len(n.Children) == 0 {
		return []*RichTextNode{n.Root}
	}
	return n.Children
}
