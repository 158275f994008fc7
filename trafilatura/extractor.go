// Package trafilatura extracts article content from pages that are not
// recognised as Docusaurus, using go-trafilatura's boilerplate removal.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/bookchat"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements bookchat.Extractor at compile time.
var _ bookchat.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main content of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title without its site suffix and the main
// content as HTML. Returns EINVALID when nothing readable remains.
func (e *Extractor) Extract(rawHTML string) (*bookchat.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, bookchat.Errorf(bookchat.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
	})
	if err != nil {
		return nil, bookchat.Errorf(bookchat.EINVALID, "no readable content: %v", err)
	}
	if result.ContentNode == nil {
		return nil, bookchat.Errorf(bookchat.EINVALID, "no readable content")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, err
	}

	return &bookchat.ExtractResult{
		Title:       bookchat.TrimTitleSuffix(result.Metadata.Title),
		ContentHTML: buf.String(),
	}, nil
}
