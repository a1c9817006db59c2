package pattern

import (
	"regexp"

	"sitemeta/internal/domain"
)

// Extractor implements ports.MetadataExtractor with single-match pattern
// scans over the raw page text. It deliberately performs no markup parsing.
type Extractor struct{}

var (
	titleRe     = regexp.MustCompile(`<title>(.*?)</title>`)
	descRe      = regexp.MustCompile(`(?s)<meta\s+name="description"\s+content="(.*?)"`)
	imageRe     = regexp.MustCompile(`<meta\s+property="og:image"\s+content="(.*?)"`)
	publishedRe = regexp.MustCompile(`<meta\s+property="article:published_time"\s+content="(.*?)"`)
)

// NewExtractor creates a pattern-based extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the first match for each metadata field.
func (e *Extractor) Extract(content string) domain.RawMetadata {
	return domain.RawMetadata{
		Title:         firstMatch(titleRe, content),
		Description:   firstMatch(descRe, content),
		Image:         firstMatch(imageRe, content),
		PublishedTime: firstMatch(publishedRe, content),
	}
}

func firstMatch(re *regexp.Regexp, content string) string {
	m := re.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return m[1]
}
