package seo

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"content_intelligence/internal/domain/models"
)

// genericFilename matches camera and screenshot defaults such as IMG_1234.jpg,
// image-2.png or a bare hash.
var genericFilename = regexp.MustCompile(`^(?i:(img|image|dsc|dscn|pxl|photo|pic|screenshot|screen shot|capture|untitled|download)[-_ ]?[\d\-_ ]*|[\d\-_]+|[a-f0-9]{16,})$`)

func imageRules(d *document) []models.Finding {
	if len(d.images) == 0 {
		return []models.Finding{warn("images-present", "Images", "The page has no images.",
			"Add at least one relevant image with descriptive alt text.")}
	}
	out := []models.Finding{pass("images-present", "Images", fmt.Sprintf("The page has %d images.", len(d.images)))}

	missing := 0
	for _, img := range d.images {
		if strings.TrimSpace(img.Alt) == "" {
			missing++
		}
	}
	if missing > 0 {
		out = append(out, warn("image-alt", "Image alt text",
			fmt.Sprintf("%d of %d images have no alt text.", missing, len(d.images)),
			"Describe every meaningful image in its alt attribute."))
	} else {
		out = append(out, pass("image-alt", "Image alt text", "Every image has alt text."))
	}

	if d.keyword != "" {
		found := false
		for _, img := range d.images {
			if d.contains(img.Alt, d.keyword) {
				found = true
				break
			}
		}
		if found {
			out = append(out, pass("image-alt-keyword", "Keyword in alt text", "An image alt text contains the focus keyword."))
		} else {
			out = append(out, warn("image-alt-keyword", "Keyword in alt text", "No image alt text contains the focus keyword.",
				"Use the focus keyword in the alt text of the main image where it fits naturally."))
		}
	}

	var generic []string
	named := 0
	for _, img := range d.images {
		name := imageFilename(img)
		if name == "" {
			continue
		}
		named++
		stem := strings.TrimSuffix(name, path.Ext(name))
		if genericFilename.MatchString(stem) {
			generic = append(generic, name)
		}
	}
	if len(generic) > 0 {
		out = append(out, warn("image-filename", "Image file names",
			fmt.Sprintf("Images with non-descriptive file names: %s.", strings.Join(generic, ", ")),
			"Rename files to describe their content, for example red-running-shoes.jpg."))
	} else if named > 0 {
		out = append(out, pass("image-filename", "Image file names", "Image file names are descriptive."))
	}

	oversized, sized := 0, 0
	for _, img := range d.images {
		if img.Filesize <= 0 {
			continue
		}
		sized++
		if img.Filesize > d.th.MaxImageBytes {
			oversized++
		}
	}
	if oversized > 0 {
		out = append(out, warn("image-size", "Image file size",
			fmt.Sprintf("%d images are larger than %d KB.", oversized, d.th.MaxImageBytes/1024),
			"Compress large images or serve a modern format such as WebP."))
	} else if sized > 0 {
		out = append(out, pass("image-size", "Image file size", "Image files are reasonably small."))
	}
	return out
}

func imageFilename(m models.Media) string {
	if m.Filename != "" {
		return m.Filename
	}
	if m.URL == "" {
		return ""
	}
	u := m.URL
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	return path.Base(u)
}
