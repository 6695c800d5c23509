package linkgraph

import (
	"strings"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/textkit"
)

// minSuggestionRatio is the segment overlap a replacement slug must exceed.
const minSuggestionRatio = 0.3

type PageRef struct {
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Collection string `json:"collection"`
}

type WeakPage struct {
	PageRef
	LinkedFrom string `json:"linkedFrom"`
}

type LinkHub struct {
	PageRef
	OutgoingLinks int `json:"outgoingLinks"`
}

type BrokenLink struct {
	Source        string `json:"source"`
	Target        string `json:"target"`
	AnchorText    string `json:"anchorText"`
	SuggestedSlug string `json:"suggestedSlug,omitempty"`
}

type AuditStats struct {
	TotalPages  int `json:"totalPages"`
	TotalLinks  int `json:"totalLinks"`
	OrphanPages int `json:"orphanPages"`
	WeakPages   int `json:"weakPages"`
	LinkHubs    int `json:"linkHubs"`
	BrokenLinks int `json:"brokenLinks"`
}

type Audit struct {
	OrphanPages []PageRef    `json:"orphanPages"`
	WeakPages   []WeakPage   `json:"weakPages"`
	LinkHubs    []LinkHub    `json:"linkHubs"`
	BrokenLinks []BrokenLink `json:"brokenLinks"`
	Stats       AuditStats   `json:"stats"`
}

// AuditSitemap classifies the pages of docs. knownRoutes are paths served
// outside the document set (never orphans, never broken); links to a redirect
// source are not broken either.
func AuditSitemap(docs []models.DocRecord, redirects []models.Redirect, knownRoutes []string, siteHosts ...string) Audit {
	idx := newIndex(docs, siteHosts)

	known := map[string]bool{}
	for _, r := range knownRoutes {
		if slug, ok := textkit.NormalizeToSlug(r, siteHosts...); ok {
			known[textkit.SlugKey(slug)] = true
		}
	}
	redirected := map[string]bool{}
	for _, r := range redirects {
		if slug, ok := textkit.NormalizeToSlug(r.From, siteHosts...); ok {
			redirected[textkit.SlugKey(slug)] = true
		}
	}

	a := Audit{
		OrphanPages: []PageRef{},
		WeakPages:   []WeakPage{},
		LinkHubs:    []LinkHub{},
		BrokenLinks: []BrokenLink{},
	}
	for _, p := range idx.pages {
		n := idx.node(p)
		ref := PageRef{Slug: p.slug, Title: p.doc.Title, Collection: p.doc.Collection}
		switch {
		case n.IsOrphan && !known[p.key]:
			a.OrphanPages = append(a.OrphanPages, ref)
		case n.InDegree == 1:
			a.WeakPages = append(a.WeakPages, WeakPage{PageRef: ref, LinkedFrom: idx.from[p.key][0]})
		}
		if n.IsHub {
			a.LinkHubs = append(a.LinkHubs, LinkHub{PageRef: ref, OutgoingLinks: n.OutDegree})
		}

		for _, l := range p.links {
			if _, ok := idx.byKey[l.key]; ok || known[l.key] || redirected[l.key] {
				continue
			}
			a.BrokenLinks = append(a.BrokenLinks, BrokenLink{
				Source:        p.slug,
				Target:        l.target,
				AnchorText:    l.anchor,
				SuggestedSlug: idx.suggest(l.key),
			})
		}
	}

	a.Stats = AuditStats{
		TotalPages:  len(idx.pages),
		TotalLinks:  len(idx.edges),
		OrphanPages: len(a.OrphanPages),
		WeakPages:   len(a.WeakPages),
		LinkHubs:    len(a.LinkHubs),
		BrokenLinks: len(a.BrokenLinks),
	}
	return a
}

// suggest returns the existing slug sharing the largest share of segments
// with target, or "" when none exceeds minSuggestionRatio. Ties keep the page
// seen first.
func (idx *index) suggest(target string) string {
	want := segments(target)
	best, bestRatio := "", 0.0
	for _, p := range idx.pages {
		if p.home {
			continue
		}
		if r := overlap(want, segments(p.key)); r > minSuggestionRatio && r > bestRatio {
			best, bestRatio = p.slug, r
		}
	}
	return best
}

func segments(slug string) []string {
	return strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '/' })
}

// overlap is the number of shared segments divided by the segment count of
// the longer slug.
func overlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]bool, len(b))
	for _, s := range b {
		set[s] = true
	}
	shared := 0
	counted := map[string]bool{}
	for _, s := range a {
		if set[s] && !counted[s] {
			shared++
			counted[s] = true
		}
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	return float64(shared) / float64(longest)
}
