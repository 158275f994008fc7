package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bookchat"
)

// Ensure Extractor implements bookchat.Extractor at compile time.
var _ bookchat.Extractor = (*Extractor)(nil)

// Extractor isolates the article body of a Docusaurus doc page.
// Validated against Docusaurus v2.x and v3.x markup.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// articleSelectors are tried in order; the first match is the article body.
var articleSelectors = []string{
	".theme-doc-markdown",
	"article .markdown",
	"article",
	"main",
}

// chromeSelectors match elements inside the article that are not content.
var chromeSelectors = []string{
	".hash-link",
	".theme-doc-breadcrumbs",
	".theme-doc-toc-mobile",
	".theme-doc-footer",
	".theme-doc-version-badge",
	".pagination-nav",
	"button",
	"script",
	"style",
}

// Extract returns the article's first heading as title and its body as HTML.
// The heading is removed from the body. Returns EINVALID when the page has
// no article.
func (e *Extractor) Extract(html string) (*bookchat.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, bookchat.Errorf(bookchat.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, bookchat.Errorf(bookchat.EINVALID, "failed to parse HTML: %v", err)
	}

	var article *goquery.Selection
	for _, sel := range articleSelectors {
		if found := doc.Find(sel).First(); found.Length() > 0 {
			article = found
			break
		}
	}
	if article == nil {
		return nil, bookchat.Errorf(bookchat.EINVALID, "page has no article content")
	}

	for _, sel := range chromeSelectors {
		article.Find(sel).Remove()
	}

	title := ""
	if h1 := article.Find("h1").First(); h1.Length() > 0 {
		title = strings.TrimSpace(h1.Text())
		h1.Remove()
	}
	if title == "" {
		title = bookchat.TrimTitleSuffix(doc.Find("title").First().Text())
	}

	content, err := article.Html()
	if err != nil {
		return nil, err
	}

	return &bookchat.ExtractResult{
		Title:       title,
		ContentHTML: strings.TrimSpace(content),
	}, nil
}
