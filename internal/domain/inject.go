package domain

import "strings"

// InjectOutcome is the result of one ensure-tag-present step.
type InjectOutcome int

const (
	OutcomeAdded InjectOutcome = iota
	OutcomeAlreadyPresent
	OutcomeMissingAnchor
)

// Presence checks are literal substring tests, not semantic validation: any
// existing occurrence suppresses insertion, however malformed.
const (
	canonicalMarker = `<link rel="canonical"`
	jsonLDMarker    = "application/ld+json"
)

// EnsureCanonical inserts a canonical link tag immediately after the first
// </title> when the page has none. A page without </title> is left untouched
// and reported as OutcomeMissingAnchor.
func EnsureCanonical(content, canonicalURL string) (string, InjectOutcome) {
	if strings.Contains(content, canonicalMarker) {
		return content, OutcomeAlreadyPresent
	}

	idx := strings.Index(content, "</title>")
	if idx < 0 {
		return content, OutcomeMissingAnchor
	}
	end := idx + len("</title>")

	tag := "\n  <link rel=\"canonical\" href=\"" + canonicalURL + "\">"
	return content[:end] + tag + content[end:], OutcomeAdded
}

// EnsureJSONLD inserts a structured-data script block ahead of the first
// </head> when the page carries no JSON-LD script at all. The whitespace run
// preceding </head> is preserved between the block and the anchor. A page
// without </head> is left untouched and reported as OutcomeMissingAnchor.
func EnsureJSONLD(content, jsonLD string) (string, InjectOutcome) {
	if strings.Contains(content, jsonLDMarker) {
		return content, OutcomeAlreadyPresent
	}

	idx := strings.Index(content, "</head>")
	if idx < 0 {
		return content, OutcomeMissingAnchor
	}
	start := idx
	for start > 0 && isSpace(content[start-1]) {
		start--
	}

	block := "\n  <script type=\"application/ld+json\">\n" + jsonLD + "\n  </script>"
	return content[:start] + block + content[start:], OutcomeAdded
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
