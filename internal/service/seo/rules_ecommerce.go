package seo

import (
	"strings"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/textkit"
	"content_intelligence/internal/pkg/tokenizer"
)

const minProductDescriptionWords = 50

// ecommerceRules applies only to pages that carry product or pricing blocks.
func ecommerceRules(d *document) []models.Finding {
	if len(d.productBlocks) == 0 {
		return nil
	}
	var (
		words    int
		images   int
		priced   bool
		hasCTA   bool
		combined strings.Builder
	)
	for _, b := range d.productBlocks {
		ex := textkit.Extract(b.RichText)
		for _, item := range b.Items {
			ex.Merge(textkit.Extract(item.RichText))
		}
		text := ex.PlainText()
		combined.WriteString(text + " ")
		words += tokenizer.CountWords(text)
		for _, m := range b.Media {
			if m.Populated() {
				images++
			}
		}
		images += len(ex.Images)
		if strings.TrimSpace(b.Price) != "" {
			priced = true
		}
		if len(b.Links) > 0 || len(ex.Links) > 0 {
			hasCTA = true
		}
	}
	for _, b := range d.input.Blocks {
		if strings.EqualFold(b.BlockType, "cta") {
			hasCTA = true
		}
	}
	if !hasCTA {
		padded := " " + d.norm(combined.String()) + " "
		_, hasCTA = firstListed(padded, d.lex.CTAVerbs, d)
	}

	var out []models.Finding
	if words < minProductDescriptionWords {
		out = append(out, warn("product-description", "Product description",
			"Product descriptions are very short.",
			"Describe benefits, materials and use cases in at least 50 words."))
	} else {
		out = append(out, pass("product-description", "Product description", "Products are described in detail."))
	}
	if images == 0 {
		out = append(out, fail("product-images", "Product images", "Products have no images.",
			"Add product photos; shoppers rarely buy without them."))
	} else {
		out = append(out, pass("product-images", "Product images", "Products have images."))
	}
	if !priced {
		out = append(out, fail("product-price", "Product price", "No price is shown.",
			"Show the price; it is required for product rich results."))
	} else {
		out = append(out, pass("product-price", "Product price", "A price is shown."))
	}
	if !hasCTA {
		out = append(out, warn("product-cta", "Purchase call to action", "There is no call to action near the products.",
			"Add a buy, order or contact button."))
	} else {
		out = append(out, pass("product-cta", "Purchase call to action", "A call to action is present."))
	}
	return out
}
