// Package textkit turns editor rich-text trees into plain text, headings,
// links and images, and normalizes strings for comparison.
package textkit

import (
	"strings"

	"content_intelligence/internal/domain/models"
)

// maxDepth bounds recursion on pathological trees.
const maxDepth = 128

type SegmentKind string

const (
	SegmentParagraph SegmentKind = "paragraph"
	SegmentHeading   SegmentKind = "heading"
	SegmentListItem  SegmentKind = "listitem"
	SegmentQuote     SegmentKind = "quote"
)

// Segment is one block-level run of text with the kind of node it came from.
type Segment struct {
	Kind  SegmentKind
	Level int
	Text  string
}

type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Extraction is everything read from one tree in a single walk.
type Extraction struct {
	Segments []Segment
	Headings []Heading
	Links    []models.ExtractedLink
	Images   []models.Media
	Lists    int
	// EmptyLinks counts custom links without a target.
	EmptyLinks int
}

// Extract walks tree once. Nil and malformed nodes yield nothing.
func Extract(tree *models.RichTextNode) Extraction {
	var ex Extraction
	if tree == nil {
		return ex
	}
	ex.walk(tree, 0)
	return ex
}

// ExtractPlainText joins the text of every block-level node, separating blocks
// with a blank line.
func ExtractPlainText(tree *models.RichTextNode) string {
	return Extract(tree).PlainText()
}

func ExtractHeadings(tree *models.RichTextNode) []Heading {
	return Extract(tree).Headings
}

func ExtractLinks(tree *models.RichTextNode) []models.ExtractedLink {
	return Extract(tree).Links
}

func ExtractImages(tree *models.RichTextNode) []models.Media {
	return Extract(tree).Images
}

// PlainText joins the segments with blank lines.
func (ex Extraction) PlainText() string {
	parts := make([]string, 0, len(ex.Segments))
	for _, s := range ex.Segments {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, "\n\n")
}

// Merge appends other onto ex.
func (ex *Extraction) Merge(other Extraction) {
	ex.Segments = append(ex.Segments, other.Segments...)
	ex.Headings = append(ex.Headings, other.Headings...)
	ex.Links = append(ex.Links, other.Links...)
	ex.Images = append(ex.Images, other.Images...)
	ex.Lists += other.Lists
	ex.EmptyLinks += other.EmptyLinks
}

func (ex *Extraction) walk(n *models.RichTextNode, depth int) {
	if n == nil || depth > maxDepth {
		return
	}
	switch n.Kind() {
	case models.KindRoot, models.KindBlock:
		for _, c := range n.Nodes() {
			ex.walk(c, depth+1)
		}
	case models.KindParagraph:
		ex.addSegment(SegmentParagraph, 0, ex.inline(n, depth+1))
	case models.KindQuote:
		ex.addSegment(SegmentQuote, 0, ex.inline(n, depth+1))
	case models.KindHeading:
		text := ex.inline(n, depth+1)
		level := n.HeadingLevel()
		if level == 0 {
			ex.addSegment(SegmentParagraph, 0, text)
			return
		}
		ex.Headings = append(ex.Headings, Heading{Level: level, Text: text})
		ex.addSegment(SegmentHeading, level, text)
	case models.KindList:
		ex.Lists++
		for _, c := range n.Children {
			ex.walk(c, depth+1)
		}
	case models.KindListItem:
		ex.addSegment(SegmentListItem, 0, ex.inline(n, depth+1))
		// nested lists live inside list items
		for _, c := range n.Children {
			if c.Kind() == models.KindList {
				ex.walk(c, depth+1)
			}
		}
	case models.KindText, models.KindLink:
		ex.addSegment(SegmentParagraph, 0, ex.inline(&models.RichTextNode{Children: []*models.RichTextNode{n}}, depth+1))
	case models.KindUpload:
		if m, ok := n.Media(); ok {
			ex.Images = append(ex.Images, *m)
		}
	}
}

// inline collects the text below a block-level node, recording links and
// images found on the way. Nested lists are left to the caller.
func (ex *Extraction) inline(n *models.RichTextNode, depth int) string {
	var b strings.Builder
	var visit func(*models.RichTextNode, int)
	visit = func(c *models.RichTextNode, d int) {
		if c == nil || d > maxDepth {
			return
		}
		switch c.Kind() {
		case models.KindText:
			b.WriteString(c.Text)
		case models.KindLineBreak:
			b.WriteString(" ")
		case models.KindLink:
			start := b.Len()
			for _, cc := range c.Children {
				visit(cc, d+1)
			}
			label := CollapseWhitespace(b.String()[start:])
			if url, ok := linkURL(c); ok {
				ex.Links = append(ex.Links, models.ExtractedLink{URL: url, Text: label})
			} else if isEmptyCustomLink(c) {
				ex.EmptyLinks++
			}
		case models.KindUpload:
			if m, ok := c.Media(); ok {
				ex.Images = append(ex.Images, *m)
			}
		case models.KindList:
		default:
			for _, cc := range c.Children {
				visit(cc, d+1)
			}
		}
	}
	for _, c := range n.Children {
		visit(c, depth)
	}
	return CollapseWhitespace(b.String())
}

func (ex *Extraction) addSegment(kind SegmentKind, level int, text string) {
	if text == "" {
		return
	}
	ex.Segments = append(ex.Segments, Segment{Kind: kind, Level: level, Text: text})
}

// linkURL resolves the target of a link node: a literal url, or the slug of a
// populated internal reference. Unpopulated references resolve to nothing.
func linkURL(n *models.RichTextNode) (string, bool) {
	if n.Fields != nil {
		if n.Fields.LinkType == "internal" || n.Fields.Doc != nil {
			if slug, ok := n.Fields.Doc.Slug(); ok {
				return "/" + strings.TrimPrefix(slug, "/"), true
			}
			if n.Fields.LinkType == "internal" {
				return "", false
			}
		}
		if n.Fields.URL != "" {
			return n.Fields.URL, true
		}
	}
	if n.URL != "" {
		return n.URL, true
	}
	return "", false
}

func isEmptyCustomLink(n *models.RichTextNode) bool {
	if n.URL != "" {
		return false
	}
	return n.Fields == nil || (n.Fields.LinkType != "internal" && n.Fields.Doc == nil && strings.TrimSpace(n.Fields.URL) == "")
}

// ResolveLinkRef resolves a structured link field the same way as inline links.
func ResolveLinkRef(l models.LinkRef) (models.ExtractedLink, bool) {
	if l.Type == "reference" || l.Reference != nil {
		if slug, ok := l.Reference.Slug(); ok {
			return models.ExtractedLink{URL: "/" + strings.TrimPrefix(slug, "/"), Text: l.Label}, true
		}
		if l.Type == "reference" {
			return models.ExtractedLink{}, false
		}
	}
	if l.URL == "" {
		return models.ExtractedLink{}, false
	}
	return models.ExtractedLink{URL: l.URL, Text: l.Label}, true
}
