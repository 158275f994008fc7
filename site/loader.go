package site

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/bookchat"
)

var _ bookchat.PageLoader = (*Loader)(nil)

// Loader loads documentation pages from the site and converts their main
// article to Markdown.
//
// Docusaurus pages go through Extractor; anything else, or a Docusaurus
// page Extractor cannot handle, goes through Fallback. When Browser is set
// and the plain fetch yields nothing extractable, the page is fetched again
// through Browser, which renders client-side content.
type Loader struct {
	BaseURL     string
	Fetcher     bookchat.Fetcher
	Browser     bookchat.Fetcher
	Detector    bookchat.FrameworkDetector
	Extractor   bookchat.Extractor
	Fallback    bookchat.Extractor
	Converter   bookchat.Converter
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// LoadPage resolves path against BaseURL and returns the page content.
func (l *Loader) LoadPage(ctx context.Context, path string) (*bookchat.Page, error) {
	pageURL, err := resolve(l.BaseURL, path)
	if err != nil {
		return nil, err
	}

	html, err := FetchWithRetry(ctx, l.Fetcher, pageURL, l.retryDelays(), l.Logger)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}

	extracted, err := l.extract(html)
	if err != nil && l.Browser != nil {
		html, err = FetchWithRetry(ctx, l.Browser, pageURL, l.retryDelays(), l.Logger)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", pageURL, err)
		}
		extracted, err = l.extract(html)
	}
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", pageURL, err)
	}

	markdown, err := l.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", pageURL, err)
	}

	return &bookchat.Page{
		URL:     pageURL,
		Title:   extracted.Title,
		Content: markdown,
	}, nil
}

func (l *Loader) extract(html string) (*bookchat.ExtractResult, error) {
	if l.Extractor != nil && l.Detector != nil && l.Detector.Detect(html) == bookchat.FrameworkDocusaurus {
		result, err := l.Extractor.Extract(html)
		if err == nil || l.Fallback == nil {
			return result, err
		}
	}
	if l.Fallback == nil {
		return nil, bookchat.Errorf(bookchat.EINVALID, "no extractor for page")
	}
	return l.Fallback.Extract(html)
}

func (l *Loader) retryDelays() []time.Duration {
	if l.RetryDelays == nil {
		return DefaultRetryDelays()
	}
	return l.RetryDelays
}
