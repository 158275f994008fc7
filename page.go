package bookchat

import "context"

// Page represents a documentation page loaded from the site shell.
type Page struct {
	URL     string
	Title   string
	Content string // Markdown
}

// PageLoader loads documentation pages from the site shell.
type PageLoader interface {
	// LoadPage resolves path against the site and returns the page's
	// main content as Markdown.
	LoadPage(ctx context.Context, path string) (*Page, error)
}

// Navigator performs page transitions in the hosting site shell.
type Navigator interface {
	// Navigate moves the host to the page at path.
	Navigate(ctx context.Context, path string) error
}
