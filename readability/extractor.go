// Package readability extracts article content with go-readability.
// It is the alternative to the trafilatura extractor for pages that are
// not recognised as Docusaurus.
package readability

import (
	"strings"

	"github.com/fwojciec/bookchat"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements bookchat.Extractor at compile time.
var _ bookchat.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main content of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article title without its site suffix and the
// article body as HTML. Returns EINVALID when nothing readable remains.
func (e *Extractor) Extract(rawHTML string) (*bookchat.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, bookchat.Errorf(bookchat.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, bookchat.Errorf(bookchat.EINVALID, "no readable content: %v", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, bookchat.Errorf(bookchat.EINVALID, "no readable content")
	}

	return &bookchat.ExtractResult{
		Title:       bookchat.TrimTitleSuffix(article.Title),
		ContentHTML: article.Content,
	}, nil
}
