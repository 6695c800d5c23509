package textkit

import (
	"encoding/json"
	"strings"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/errors"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromHTML converts an HTML fragment into a rich-text tree so that HTML bodies
// go through the same extraction as editor documents. Elements without a
// rich-text counterpart are flattened into their parent.
func FromHTML(fragment string) (*models.RichTextNode, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return nil, errors.Wrap(err, `failed to parse html fragment`)
	}
	root := &models.RichTextNode{Type: "root"}
	for _, n := range nodes {
		root.Children = append(root.Children, convertHTML(n)...)
	}
	return root, nil
}

func convertHTML(n *html.Node) []*models.RichTextNode {
	switch n.Type {
	case html.TextNode:
		if n.Data == "" {
			return nil
		}
		return []*models.RichTextNode{{Type: "text", Text: n.Data}}
	case html.ElementNode:
	default:
		return nil
	}

	children := func() []*models.RichTextNode {
		var out []*models.RichTextNode
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			out = append(out, convertHTML(c)...)
		}
		return out
	}

	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Noscript, atom.Template:
		return nil
	case atom.P:
		return []*models.RichTextNode{{Type: "paragraph", Children: children()}}
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return []*models.RichTextNode{{Type: "heading", Tag: n.Data, Children: children()}}
	case atom.Ul, atom.Ol:
		listType := "bullet"
		if n.DataAtom == atom.Ol {
			listType = "number"
		}
		return []*models.RichTextNode{{Type: "list", ListType: listType, Children: children()}}
	case atom.Li:
		return []*models.RichTextNode{{Type: "listitem", Children: children()}}
	case atom.Blockquote:
		return []*models.RichTextNode{{Type: "quote", Children: children()}}
	case atom.Br:
		return []*models.RichTextNode{{Type: "linebreak"}}
	case atom.A:
		return []*models.RichTextNode{{
			Type:     "link",
			Fields:   &models.LinkFields{URL: attr(n, "href"), LinkType: "custom"},
			Children: children(),
		}}
	case atom.Img:
		value, err := json.Marshal(models.Media{URL: attr(n, "src"), Alt: attr(n, "alt"), Filename: fileName(attr(n, "src"))})
		if err != nil {
			return nil
		}
		return []*models.RichTextNode{{Type: "upload", Value: value}}
	}
	return children()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

func fileName(src string) string {
	if i := strings.IndexAny(src, "?#"); i >= 0 {
		src = src[:i]
	}
	if i := strings.LastIndex(src, "/"); i >= 0 {
		src = src[i+1:]
	}
	return src
}
