package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"sitemeta/internal/application"
	"sitemeta/internal/domain"
	"sitemeta/internal/ports"
)

// InjectResult contains the totals for one injection run
type InjectResult struct {
	Processed      int
	CanonicalAdded int
	JSONLDAdded    int
	Skipped        int // ensure steps that found no anchor
	Failed         int
	Message        string
}

// InjectCommand walks the site tree and ensures every page carries a
// canonical link tag and a JSON-LD structured-data block
type InjectCommand struct {
	repo      ports.SiteRepository
	extractor ports.MetadataExtractor
	site      domain.Site

	// DryRun reports what would change without rewriting any file
	DryRun bool
	// Out receives the per-event console lines
	Out io.Writer
}

// NewInjectCommand creates a new InjectCommand
func NewInjectCommand(repo ports.SiteRepository, extractor ports.MetadataExtractor, site domain.Site) *InjectCommand {
	return &InjectCommand{
		repo:      repo,
		extractor: extractor,
		site:      site,
		Out:       os.Stdout,
	}
}

// Validate checks if the run is properly configured
func (c *InjectCommand) Validate() error {
	if c.site.BaseURL == "" {
		return &application.ValidationError{
			Field:   "baseURL",
			Message: "base URL is required",
		}
	}
	if c.site.Name == "" {
		return &application.ValidationError{
			Field:   "siteName",
			Message: "site name is required",
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

// Execute processes every candidate page under the site root. A failure on
// one page is reported and does not abort the run.
func (c *InjectCommand) Execute(ctx context.Context) (*InjectResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	result := &InjectResult{}
	err := c.repo.Walk(func(path string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		result.Processed++
		if err := c.processPage(path, result); err != nil {
			result.Failed++
			fmt.Fprintf(c.Out, "Error processing %s: %v\n", path, err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk site root: %w", err)
	}

	result.Message = fmt.Sprintf("Processed %d pages: %d canonical added, %d JSON-LD added, %d anchors missing, %d failed",
		result.Processed, result.CanonicalAdded, result.JSONLDAdded, result.Skipped, result.Failed)
	if c.DryRun {
		result.Message = "(dry run) " + result.Message
	}
	return result, nil
}

func (c *InjectCommand) processPage(path string, result *InjectResult) error {
	content, err := c.repo.ReadPage(path)
	if err != nil {
		return err
	}

	relPath, err := c.site.RelativePath(path)
	if err != nil {
		return err
	}
	rel := filepath.ToSlash(relPath)

	meta := c.buildMetadata(c.extractor.Extract(content), path)
	canonicalURL := c.site.CanonicalURL(relPath)
	modified := false

	content, outcome := domain.EnsureCanonical(content, canonicalURL)
	switch outcome {
	case domain.OutcomeAdded:
		modified = true
		result.CanonicalAdded++
		fmt.Fprintf(c.Out, "Added canonical to: %s\n", rel)
	case domain.OutcomeMissingAnchor:
		result.Skipped++
		fmt.Fprintf(c.Out, "Skipped canonical (no anchor) in: %s\n", rel)
	}

	doc := domain.NewStructuredData(c.site, meta, canonicalURL, domain.IsArticle(relPath))
	jsonLD, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("failed to build structured data: %w", err)
	}

	content, outcome = domain.EnsureJSONLD(content, jsonLD)
	switch outcome {
	case domain.OutcomeAdded:
		modified = true
		result.JSONLDAdded++
		fmt.Fprintf(c.Out, "Added JSON-LD to: %s\n", rel)
	case domain.OutcomeMissingAnchor:
		result.Skipped++
		fmt.Fprintf(c.Out, "Skipped JSON-LD (no anchor) in: %s\n", rel)
	}

	if modified && !c.DryRun {
		if err := c.repo.WritePage(path, content); err != nil {
			return err
		}
	}
	return nil
}

// buildMetadata applies site defaults to the raw fields. An image that
// resolves outside the site root is rejected: the event is logged and the
// page falls back to the site logo.
func (c *InjectCommand) buildMetadata(raw domain.RawMetadata, path string) domain.PageMetadata {
	meta, err := domain.NewPageMetadata(c.site, raw, path)
	if err != nil {
		fmt.Fprintf(c.Out, "Image outside site root in %s: %v\n", path, err)
		meta.ImageURL = c.site.LogoURL
	}
	return meta
}
