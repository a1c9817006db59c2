package commands

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"sitemeta/internal/application"
	"sitemeta/internal/domain"
	"sitemeta/internal/ports"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// SitemapResult contains the outcome of a sitemap run
type SitemapResult struct {
	Pages   int
	Path    string
	Message string
}

// SitemapCommand writes a sitemap.xml covering every candidate page under
// the site root, reusing the canonical URL of each page. lastmod comes from
// the page's published time when it has one.
type SitemapCommand struct {
	repo      ports.SiteRepository
	extractor ports.MetadataExtractor
	site      domain.Site

	// Out receives the per-event console lines
	Out io.Writer
}

// NewSitemapCommand creates a new SitemapCommand
func NewSitemapCommand(repo ports.SiteRepository, extractor ports.MetadataExtractor, site domain.Site) *SitemapCommand {
	return &SitemapCommand{
		repo:      repo,
		extractor: extractor,
		site:      site,
		Out:       os.Stdout,
	}
}

// Validate checks if the run is properly configured
func (c *SitemapCommand) Validate() error {
	if c.site.BaseURL == "" {
		return &application.ValidationError{
			Field:   "baseURL",
			Message: "base URL is required",
		}
	}
	if c.site.Root == "" {
		return &application.ValidationError{
			Field:   "root",
			Message: "site root is required",
		}
	}
	return nil
}

// Execute collects every page in walk order and writes <root>/sitemap.xml.
func (c *SitemapCommand) Execute(ctx context.Context) (*SitemapResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	set := sitemapURLSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	err := c.repo.Walk(func(path string) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		relPath, err := c.site.RelativePath(path)
		if err != nil {
			fmt.Fprintf(c.Out, "Error processing %s: %v\n", path, err)
			return nil
		}

		entry := sitemapURL{Loc: c.site.CanonicalURL(relPath)}
		// An unreadable page still gets an entry, just without lastmod
		if content, err := c.repo.ReadPage(path); err == nil {
			entry.LastMod = c.extractor.Extract(content).PublishedTime
		} else {
			fmt.Fprintf(c.Out, "Error processing %s: %v\n", path, err)
		}

		set.URLs = append(set.URLs, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk site root: %w", err)
	}

	data, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode sitemap: %w", err)
	}

	out := filepath.Join(c.site.Root, "sitemap.xml")
	if err := c.repo.WritePage(out, xml.Header+string(data)+"\n"); err != nil {
		return nil, err
	}

	return &SitemapResult{
		Pages:   len(set.URLs),
		Path:    out,
		Message: fmt.Sprintf("Wrote sitemap with %d pages to %s", len(set.URLs), out),
	}, nil
}
