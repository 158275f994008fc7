package bookchat

// ExtractResult holds the main content of a documentation page.
type ExtractResult struct {
	// Title is the page heading or, failing that, the document title.
	Title string

	// ContentHTML is the article body with site chrome (navbar, sidebar,
	// footer, pagination) removed.
	ContentHTML string
}

// Extractor isolates the article from a rendered documentation page.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
