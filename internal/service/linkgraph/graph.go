// Package linkgraph builds the internal link graph of a document set and
// audits it for orphan, weak, hub and broken pages.
package linkgraph

import (
	"math"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/textkit"
)

// HubThreshold is the out-degree above which a page is a hub.
const HubThreshold = 10

type Stats struct {
	TotalPages      int     `json:"totalPages"`
	TotalLinks      int     `json:"totalLinks"`
	OrphanPages     int     `json:"orphanPages"`
	HubPages        int     `json:"hubPages"`
	AvgLinksPerPage float64 `json:"avgLinksPerPage"`
}

type Graph struct {
	Nodes []models.GraphNode `json:"nodes"`
	Edges []models.GraphEdge `json:"edges"`
	Stats Stats              `json:"stats"`
}

// outLink is one deduplicated outgoing internal link of a page, whether or not
// its target is in the document set.
type outLink struct {
	key    string
	target string
	anchor string
}

type page struct {
	doc   models.DocRecord
	key   string
	slug  string
	home  bool
	links []outLink
}

// index is the resolved view of a document set shared by the graph and the
// audit.
type index struct {
	pages []*page
	byKey map[string]*page
	in    map[string]int
	from  map[string][]string
	out   map[string]int
	edges []models.GraphEdge
}

func newIndex(docs []models.DocRecord, siteHosts []string) *index {
	idx := &index{
		byKey: make(map[string]*page, len(docs)),
		in:    map[string]int{},
		from:  map[string][]string{},
		out:   map[string]int{},
	}
	for _, d := range docs {
		slug, key := pageSlug(d.Slug)
		if _, dup := idx.byKey[key]; dup {
			continue
		}
		p := &page{doc: d, key: key, slug: slug, home: textkit.IsHomeSlug(key)}
		idx.pages = append(idx.pages, p)
		idx.byKey[key] = p
	}

	for _, p := range idx.pages {
		seen := map[string]bool{}
		for _, l := range p.doc.Links {
			target, ok := textkit.NormalizeToSlug(l.URL, siteHosts...)
			if !ok {
				continue
			}
			key := textkit.SlugKey(target)
			if key == p.key || textkit.IsHomeSlug(key) || seen[key] {
				continue
			}
			seen[key] = true
			p.links = append(p.links, outLink{key: key, target: target, anchor: textkit.CollapseWhitespace(l.Text)})
		}
		for _, l := range p.links {
			dst, ok := idx.byKey[l.key]
			if !ok {
				continue
			}
			idx.out[p.key]++
			idx.in[dst.key]++
			idx.from[dst.key] = append(idx.from[dst.key], p.slug)
			idx.edges = append(idx.edges, models.GraphEdge{Source: p.slug, Target: dst.slug, AnchorText: l.anchor})
		}
	}
	return idx
}

// pageSlug returns the display slug and the comparison key of a document slug.
func pageSlug(raw string) (string, string) {
	slug, ok := textkit.NormalizeToSlug(raw)
	if !ok || textkit.IsHomeSlug(slug) {
		slug = textkit.HomeSlug
	}
	return slug, textkit.SlugKey(slug)
}

func (idx *index) node(p *page) models.GraphNode {
	in, out := idx.in[p.key], idx.out[p.key]
	return models.GraphNode{
		Slug:       p.slug,
		Title:      p.doc.Title,
		Collection: p.doc.Collection,
		InDegree:   in,
		OutDegree:  out,
		IsOrphan:   in == 0 && !p.home,
		IsHub:      out > HubThreshold,
	}
}

// BuildLinkGraph builds the directed graph of internal links between docs.
// Links are deduplicated per target with the first anchor kept; self links,
// home page links and links leaving the set are not edges. siteHosts lists the
// hosts whose absolute URLs count as internal.
func BuildLinkGraph(docs []models.DocRecord, siteHosts ...string) Graph {
	idx := newIndex(docs, siteHosts)
	g := Graph{
		Nodes: make([]models.GraphNode, 0, len(idx.pages)),
		Edges: idx.edges,
	}
	if g.Edges == nil {
		g.Edges = []models.GraphEdge{}
	}
	for _, p := range idx.pages {
		n := idx.node(p)
		if n.IsOrphan {
			g.Stats.OrphanPages++
		}
		if n.IsHub {
			g.Stats.HubPages++
		}
		g.Nodes = append(g.Nodes, n)
	}
	g.Stats.TotalPages = len(g.Nodes)
	g.Stats.TotalLinks = len(g.Edges)
	if g.Stats.TotalPages > 0 {
		g.Stats.AvgLinksPerPage = round2(float64(g.Stats.TotalLinks) / float64(g.Stats.TotalPages))
	}
	return g
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
