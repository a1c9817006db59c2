package markup

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"sitemeta/internal/domain"
)

// Extractor implements ports.MetadataExtractor through a parsed document
// instead of raw pattern scans. Selection still follows document order, so
// the first occurrence of each field wins.
type Extractor struct{}

// NewExtractor creates a markup-parsing extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the first match for each metadata field. A page the parser
// cannot read at all yields empty metadata, matching the best-effort contract.
func (e *Extractor) Extract(content string) domain.RawMetadata {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return domain.RawMetadata{}
	}

	return domain.RawMetadata{
		Title:         doc.Find("title").First().Text(),
		Description:   firstAttr(doc, `meta[name="description"]`, "content"),
		Image:         firstAttr(doc, `meta[property="og:image"]`, "content"),
		PublishedTime: firstAttr(doc, `meta[property="article:published_time"]`, "content"),
	}
}

func firstAttr(doc *goquery.Document, selector, attr string) string {
	val, _ := doc.Find(selector).First().Attr(attr)
	return val
}
