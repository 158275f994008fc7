package bookchat

import (
	"fmt"
	"strings"
)

// FormatResult formats a single search result as a source card.
func FormatResult(r SearchResult) string {
	return fmt.Sprintf("📄 %s (%d%% Match)\n%s", r.Title, r.Percent(), r.Content)
}

// FormatMessage formats a message for display.
// Result blocks list each result after the intro line, separated by blank lines.
func FormatMessage(m Message) string {
	if !m.IsResultBlock() {
		return m.Text
	}

	parts := make([]string, 0, len(m.Results)+1)
	parts = append(parts, m.Text)
	for _, r := range m.Results {
		parts = append(parts, FormatResult(r))
	}
	return strings.Join(parts, "\n\n")
}

// FormatSuggestions formats suggestions as a numbered list.
func FormatSuggestions(suggestions []Suggestion) string {
	if len(suggestions) == 0 {
		return ""
	}

	lines := make([]string, 0, len(suggestions))
	for i, s := range suggestions {
		lines = append(lines, fmt.Sprintf("%d. %s →", i+1, s.Label))
	}
	return strings.Join(lines, "\n")
}

// FormatPage formats a page for display.
// Uses title if available, falls back to URL.
func FormatPage(p *Page) string {
	header := p.Title
	if header == "" {
		header = p.URL
	}
	return "# " + header + "\n\n" + p.Content
}
