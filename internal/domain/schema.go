package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Schema.org type identifiers emitted in structured data.
const (
	TypeBlogPosting = "BlogPosting"
	TypeWebSite     = "WebSite"
)

// WebPageRef points a structured-data document at its canonical page.
type WebPageRef struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

// ImageObject wraps an image URL in its schema.org form.
type ImageObject struct {
	Type string `json:"@type"`
	URL  string `json:"url"`
}

// Organization identifies the site as author or publisher.
type Organization struct {
	Type string       `json:"@type"`
	Name string       `json:"name"`
	URL  string       `json:"url,omitempty"`
	Logo *ImageObject `json:"logo,omitempty"`
}

// StructuredData is the JSON-LD document injected into a page head. Field
// order fixes the key order of the serialized output.
type StructuredData struct {
	Context          string       `json:"@context"`
	Type             string       `json:"@type"`
	MainEntityOfPage WebPageRef   `json:"mainEntityOfPage"`
	Headline         string       `json:"headline"`
	Description      string       `json:"description"`
	Image            string       `json:"image"`
	Author           Organization `json:"author"`
	Publisher        Organization `json:"publisher"`
	DatePublished    string       `json:"datePublished,omitempty"`
}

// NewStructuredData builds the document for one page. datePublished is set
// only for articles that carry a published time; it is never emitted as null.
func NewStructuredData(site Site, meta PageMetadata, canonicalURL string, article bool) StructuredData {
	doc := StructuredData{
		Context:          "https://schema.org",
		Type:             TypeWebSite,
		MainEntityOfPage: WebPageRef{Type: "WebPage", ID: canonicalURL},
		Headline:         meta.Title,
		Description:      meta.Description,
		Image:            meta.ImageURL,
		Author: Organization{
			Type: "Organization",
			Name: site.Name,
			URL:  site.BaseURL,
		},
		Publisher: Organization{
			Type: "Organization",
			Name: site.Name,
			Logo: &ImageObject{Type: "ImageObject", URL: site.LogoURL},
		},
	}
	if article {
		doc.Type = TypeBlogPosting
		doc.DatePublished = meta.PublishedTime
	}
	return doc
}

// Marshal renders the document with stable two-space indentation, keeping
// non-ASCII text and URL characters unescaped so the block embeds verbatim.
func (d StructuredData) Marshal() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
