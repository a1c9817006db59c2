package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Repository implements ports.SiteRepository over the local filesystem.
type Repository struct {
	root        string
	excludeDirs map[string]struct{}
	excludeSubs []string
	extensions  []string
}

// NewRepository creates a filesystem repository rooted at the site build
// output. excludeDirs are pruned by name at every level before descent,
// excludeSubs drop any file whose path contains one of them, and extensions
// is the file name suffix allow-list.
func NewRepository(root string, excludeDirs, excludeSubs, extensions []string) *Repository {
	dirs := make(map[string]struct{}, len(excludeDirs))
	for _, d := range excludeDirs {
		dirs[d] = struct{}{}
	}
	return &Repository{
		root:        root,
		excludeDirs: dirs,
		excludeSubs: excludeSubs,
		extensions:  extensions,
	}
}

// Root returns the site root this repository walks.
func (r *Repository) Root() string {
	return r.root
}

// Walk visits every candidate page under the root in lexical order.
func (r *Repository) Walk(fn func(path string) error) error {
	return filepath.WalkDir(r.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != r.root {
				if _, excluded := r.excludeDirs[d.Name()]; excluded {
					return fs.SkipDir
				}
			}
			return nil
		}
		if !r.wantFile(path, d.Name()) {
			return nil
		}
		return fn(path)
	})
}

func (r *Repository) wantFile(path, name string) bool {
	matched := false
	for _, ext := range r.extensions {
		if strings.HasSuffix(name, ext) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	for _, sub := range r.excludeSubs {
		if strings.Contains(path, sub) {
			return false
		}
	}
	return true
}

// ReadPage returns the full content of one page.
func (r *Repository) ReadPage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read page: %w", err)
	}
	return string(data), nil
}

// WritePage overwrites a file in place, keeping its permission bits.
func (r *Repository) WritePage(path, content string) error {
	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	return nil
}
