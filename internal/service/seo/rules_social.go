package seo

import (
	"fmt"
	"strings"

	"content_intelligence/internal/domain/models"
)

func socialRules(d *document) []models.Finding {
	img := d.input.MetaImage
	if !img.Populated() {
		return []models.Finding{warn("og-image", "Social image", "No social sharing image is set.",
			"Set a meta image so shares on social networks show a preview.")}
	}
	out := []models.Finding{pass("og-image", "Social image", "A social sharing image is set.")}

	if img.Width > 0 && img.Height > 0 {
		if img.Width < d.th.SocialImageMinWidth || img.Height < d.th.SocialImageMinHeight {
			out = append(out, warn("og-image-dimensions", "Social image size",
				fmt.Sprintf("The social image is %d×%d pixels.", img.Width, img.Height),
				fmt.Sprintf("Use at least %d×%d pixels for large previews.", d.th.SocialImageMinWidth, d.th.SocialImageMinHeight)))
		} else {
			out = append(out, pass("og-image-dimensions", "Social image size",
				fmt.Sprintf("The social image is %d×%d pixels.", img.Width, img.Height)))
		}
	}

	if strings.TrimSpace(img.Alt) == "" {
		out = append(out, warn("og-image-alt", "Social image alt text", "The social image has no alt text.",
			"Describe the social image for screen reader users."))
	} else {
		out = append(out, pass("og-image-alt", "Social image alt text", "The social image has alt text."))
	}
	return out
}
