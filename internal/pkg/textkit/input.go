package textkit

import (
	"strings"

	"content_intelligence/internal/domain/models"
)

// ExtractInput walks every text-bearing field of a document: the hero, then
// the post content or the layout blocks. Block headings count as H2 and item
// titles as H3.
func ExtractInput(input models.SeoInput) Extraction {
	var ex Extraction
	if hero := strings.TrimSpace(input.HeroTitle); hero != "" {
		ex.addHeading(1, hero)
	}
	ex.Merge(Extract(input.HeroRichText))
	for _, l := range input.HeroLinks {
		if link, ok := ResolveLinkRef(l); ok {
			ex.Links = append(ex.Links, link)
		}
	}
	if input.HeroMedia.Populated() {
		ex.Images = append(ex.Images, *input.HeroMedia)
	}

	if input.IsPost {
		ex.Merge(Extract(input.Content))
		return ex
	}
	for _, b := range input.Blocks {
		ex.Merge(ExtractBlock(b))
	}
	return ex
}

func ExtractBlock(b models.Block) Extraction {
	var ex Extraction
	if h := strings.TrimSpace(b.Heading); h != "" {
		ex.addHeading(2, h)
	}
	ex.Merge(Extract(b.RichText))
	for _, item := range b.Items {
		if t := strings.TrimSpace(item.Title); t != "" {
			ex.addHeading(3, t)
		}
		ex.Merge(Extract(item.RichText))
	}
	for _, m := range b.Media {
		if m.Populated() {
			ex.Images = append(ex.Images, m)
		}
	}
	for _, l := range b.Links {
		if link, ok := ResolveLinkRef(l); ok {
			ex.Links = append(ex.Links, link)
		}
	}
	return ex
}

func (ex *Extraction) addHeading(level int, text string) {
	ex.Headings = append(ex.Headings, Heading{Level: level, Text: text})
	ex.Segments = append(ex.Segments, Segment{Kind: SegmentHeading, Level: level, Text: text})
}
