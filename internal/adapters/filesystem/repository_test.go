package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func defaultRepository(root string) *Repository {
	return NewRepository(root,
		[]string{".git", "node_modules", ".agent", "dist"},
		[]string{"article-templates"},
		[]string{".html"},
	)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

func TestWalk_FiltersAndPrunes(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "index.html"), "<html></html>")
	writeFile(t, filepath.Join(root, "posts", "a.html"), "<html></html>")
	writeFile(t, filepath.Join(root, "style.css"), "body {}")
	writeFile(t, filepath.Join(root, "node_modules", "x.html"), "<html></html>")
	writeFile(t, filepath.Join(root, ".git", "y.html"), "<html></html>")
	writeFile(t, filepath.Join(root, "dist", "z.html"), "<html></html>")
	writeFile(t, filepath.Join(root, ".agent", "w.html"), "<html></html>")
	writeFile(t, filepath.Join(root, "posts", "node_modules", "nested.html"), "<html></html>")
	writeFile(t, filepath.Join(root, "article-templates", "t.html"), "<html></html>")

	var visited []string
	err := defaultRepository(root).Walk(func(path string) error {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			t.Fatalf("unexpected path %q: %v", path, err)
		}
		visited = append(visited, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	want := []string{"index.html", "posts/a.html"}
	if len(visited) != len(want) {
		t.Fatalf("expected %v, got %v", want, visited)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("expected %v, got %v", want, visited)
			break
		}
	}
}

func TestReadWritePage(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "index.html")
	writeFile(t, path, "<html>before</html>")

	repo := defaultRepository(root)

	content, err := repo.ReadPage(path)
	if err != nil {
		t.Fatalf("ReadPage failed: %v", err)
	}
	if content != "<html>before</html>" {
		t.Errorf("unexpected content: %q", content)
	}

	if err := repo.WritePage(path, "<html>after</html>"); err != nil {
		t.Fatalf("WritePage failed: %v", err)
	}
	content, err = repo.ReadPage(path)
	if err != nil {
		t.Fatalf("ReadPage failed: %v", err)
	}
	if content != "<html>after</html>" {
		t.Errorf("rewrite not applied: %q", content)
	}
}

func TestReadPage_Missing(t *testing.T) {
	repo := defaultRepository(t.TempDir())
	if _, err := repo.ReadPage(filepath.Join(repo.Root(), "missing.html")); err == nil {
		t.Error("expected error for missing page")
	}
}
