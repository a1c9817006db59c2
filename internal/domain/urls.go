package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Site describes the site being processed. It is derived from the startup
// configuration and never changes during a run.
type Site struct {
	BaseURL string // absolute site URL without trailing slash
	Name    string
	LogoURL string
	Root    string // filesystem root of the build output
}

// PathError reports a path that cannot be expressed under the site root.
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// RelativePath returns the path of file relative to the site root.
func (s Site) RelativePath(file string) (string, error) {
	rel, err := filepath.Rel(s.Root, file)
	if err != nil {
		return "", &PathError{Path: file, Reason: "not relative to site root"}
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &PathError{Path: file, Reason: "outside site root"}
	}
	return rel, nil
}

// CanonicalURL converts a root-relative path into the page's canonical URL.
// OS path separators are normalized to forward slashes.
func (s Site) CanonicalURL(relPath string) string {
	return s.BaseURL + "/" + filepath.ToSlash(relPath)
}

// ResolveImageURL converts an og:image value into an absolute site URL.
// An empty value falls back to the site logo and values that already carry a
// URL scheme pass through unchanged. Anything else is treated as a path
// relative to the directory containing filePath; a path that normalizes to a
// location outside the site root is rejected with a *PathError.
func (s Site) ResolveImageURL(rawImage, filePath string) (string, error) {
	if rawImage == "" {
		return s.LogoURL, nil
	}
	if strings.HasPrefix(rawImage, "http") {
		return rawImage, nil
	}

	joined := filepath.Join(filepath.Dir(filePath), filepath.FromSlash(rawImage))
	rel, err := s.RelativePath(joined)
	if err != nil {
		return "", err
	}
	return s.CanonicalURL(rel), nil
}
