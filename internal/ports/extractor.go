package ports

import "sitemeta/internal/domain"

// MetadataExtractor pulls raw first-match metadata fields out of page text.
// Implementations are best-effort single-match scans: the first occurrence in
// document order wins and absent fields come back empty.
type MetadataExtractor interface {
	Extract(content string) domain.RawMetadata
}
