package domain

import (
	"strings"
	"testing"
)

const canonicalURL = "https://example.com/posts/my-article.html"

func TestEnsureCanonical(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantOutcome InjectOutcome
		wantContain string
	}{
		{
			name:        "inserted after first title close",
			content:     "<html><head>\n  <title>My Article</title>\n</head><body></body></html>",
			wantOutcome: OutcomeAdded,
			wantContain: "</title>\n  <link rel=\"canonical\" href=\"" + canonicalURL + "\">",
		},
		{
			name:        "already present even with different URL",
			content:     `<html><head><title>T</title><link rel="canonical" href="https://other.example/x"></head></html>`,
			wantOutcome: OutcomeAlreadyPresent,
		},
		{
			name:        "no title anchor",
			content:     "<html><head></head><body></body></html>",
			wantOutcome: OutcomeMissingAnchor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, outcome := EnsureCanonical(tt.content, canonicalURL)
			if outcome != tt.wantOutcome {
				t.Fatalf("expected outcome %v, got %v", tt.wantOutcome, outcome)
			}
			if outcome != OutcomeAdded {
				if got != tt.content {
					t.Error("content must be untouched when nothing is inserted")
				}
				return
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("expected output to contain %q:\n%s", tt.wantContain, got)
			}
		})
	}
}

func TestEnsureCanonical_FirstAnchorOnly(t *testing.T) {
	content := "<title>a</title><title>b</title>"
	got, outcome := EnsureCanonical(content, canonicalURL)
	if outcome != OutcomeAdded {
		t.Fatalf("expected insertion, got %v", outcome)
	}
	if strings.Count(got, "canonical") != 1 {
		t.Errorf("expected a single insertion:\n%s", got)
	}
	if !strings.HasPrefix(got, "<title>a</title>\n  <link") {
		t.Errorf("insertion must follow the first anchor:\n%s", got)
	}
}

func TestEnsureJSONLD(t *testing.T) {
	jsonLD := "{\n  \"@context\": \"https://schema.org\"\n}"

	tests := []struct {
		name        string
		content     string
		wantOutcome InjectOutcome
	}{
		{
			name:        "inserted before head close",
			content:     "<html><head>\n  <title>T</title>\n</head><body></body></html>",
			wantOutcome: OutcomeAdded,
		},
		{
			name:        "already present even when empty",
			content:     `<html><head><script type="application/ld+json"></script></head></html>`,
			wantOutcome: OutcomeAlreadyPresent,
		},
		{
			name:        "no head anchor",
			content:     "<html><title>T</title><body></body></html>",
			wantOutcome: OutcomeMissingAnchor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, outcome := EnsureJSONLD(tt.content, jsonLD)
			if outcome != tt.wantOutcome {
				t.Fatalf("expected outcome %v, got %v", tt.wantOutcome, outcome)
			}
			if outcome != OutcomeAdded {
				if got != tt.content {
					t.Error("content must be untouched when nothing is inserted")
				}
				return
			}
			if !strings.Contains(got, "<script type=\"application/ld+json\">\n"+jsonLD+"\n  </script>") {
				t.Errorf("expected script block in output:\n%s", got)
			}
		})
	}
}

func TestEnsureJSONLD_PreservesWhitespaceBeforeAnchor(t *testing.T) {
	content := "<html><head>\n  <title>T</title>\n  </head></html>"
	got, outcome := EnsureJSONLD(content, "{}")
	if outcome != OutcomeAdded {
		t.Fatalf("expected insertion, got %v", outcome)
	}
	// The whitespace run that preceded </head> stays directly ahead of it
	if !strings.HasSuffix(got, "</script>\n  </head></html>") {
		t.Errorf("whitespace before </head> must be preserved:\n%s", got)
	}
}

func TestEnsureIdempotence(t *testing.T) {
	content := "<html><head>\n  <title>T</title>\n</head><body></body></html>"
	jsonLD := "{\n  \"@type\": \"WebSite\"\n}"

	once, outcome := EnsureCanonical(content, canonicalURL)
	if outcome != OutcomeAdded {
		t.Fatalf("expected canonical insertion, got %v", outcome)
	}
	once, outcome = EnsureJSONLD(once, jsonLD)
	if outcome != OutcomeAdded {
		t.Fatalf("expected JSON-LD insertion, got %v", outcome)
	}

	twice, outcome := EnsureCanonical(once, canonicalURL)
	if outcome != OutcomeAlreadyPresent {
		t.Errorf("second canonical pass must be a no-op, got %v", outcome)
	}
	twice, outcome = EnsureJSONLD(twice, jsonLD)
	if outcome != OutcomeAlreadyPresent {
		t.Errorf("second JSON-LD pass must be a no-op, got %v", outcome)
	}
	if twice != once {
		t.Error("second pass must not change the content")
	}
}
