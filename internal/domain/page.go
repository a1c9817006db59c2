package domain

import (
	"path/filepath"
	"strings"
)

// RawMetadata holds the first-match field values pulled out of a page before
// normalization. Absent fields are empty strings.
type RawMetadata struct {
	Title         string
	Description   string
	Image         string
	PublishedTime string
}

// PageMetadata is the normalized per-page metadata used to build structured
// data. It is computed fresh for every page and discarded after use.
type PageMetadata struct {
	Title         string
	Description   string
	ImageURL      string
	PublishedTime string // verbatim value from the page, empty when absent
}

// NewPageMetadata normalizes raw extracted fields into page metadata,
// applying site defaults. When the image reference resolves outside the site
// root the error is a *PathError; the remaining fields are still valid.
func NewPageMetadata(site Site, raw RawMetadata, filePath string) (PageMetadata, error) {
	meta := PageMetadata{
		Title:         site.Name,
		Description:   strings.TrimSpace(strings.ReplaceAll(raw.Description, "\n", "")),
		PublishedTime: raw.PublishedTime,
	}
	if raw.Title != "" {
		// Titles follow the "Page Title | Site Name" convention
		title, _, _ := strings.Cut(raw.Title, "|")
		meta.Title = strings.TrimSpace(title)
	}

	image, err := site.ResolveImageURL(raw.Image, filePath)
	meta.ImageURL = image
	if err != nil {
		return meta, err
	}
	return meta, nil
}

// IsArticle reports whether a root-relative path contains a "posts" segment,
// which marks the page as a blog article rather than a generic site page.
func IsArticle(relPath string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(relPath), "/") {
		if segment == "posts" {
			return true
		}
	}
	return false
}
