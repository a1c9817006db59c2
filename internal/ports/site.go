package ports

// SiteRepository defines access to the site tree being processed.
type SiteRepository interface {
	// Walk visits every candidate page under the site root in lexical
	// order, applying the configured directory, substring, and extension
	// filters before yielding a path.
	Walk(fn func(path string) error) error

	// ReadPage returns the full content of one page.
	ReadPage(path string) (string, error)

	// WritePage overwrites a file in place with new content.
	WritePage(path, content string) error
}
