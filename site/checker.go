package site

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/fwojciec/bookchat"
	"golang.org/x/sync/errgroup"
)

// Check sources.
const (
	SourceSitemap = "sitemap"
	SourceFetch   = "fetch"
)

// Check is the outcome of verifying one suggestion.
type Check struct {
	Suggestion bookchat.Suggestion
	URL        string
	Source     string // SourceSitemap or SourceFetch when OK
	Err        error
}

// OK reports whether the suggestion's page exists.
func (c Check) OK() bool { return c.Err == nil }

// BackendCheck is the outcome of a search backend health check.
type BackendCheck struct {
	URL    string
	Health *bookchat.Health
	Err    error
}

// OK reports whether the backend answered its health endpoint.
func (c BackendCheck) OK() bool { return c.Err == nil }

// Checker verifies that suggestion paths resolve to pages the site serves,
// and that the search backend is up.
// A path listed in the site's sitemap passes without a request; any other
// path is fetched through Limiter. Limiter is keyed by host, so the site
// and the search backend are limited independently.
type Checker struct {
	BaseURL     string
	SearchURL   string
	Sitemaps    bookchat.SitemapService
	Fetcher     bookchat.Fetcher
	Backend     bookchat.Searcher
	Limiter     bookchat.DomainLimiter
	Concurrency int
	Logger      *slog.Logger
}

// CheckBackend asks the search backend for its health status.
func (c *Checker) CheckBackend(ctx context.Context) BackendCheck {
	result := BackendCheck{URL: c.SearchURL}
	if c.Backend == nil {
		result.Err = bookchat.Errorf(bookchat.EINVALID, "no search backend configured")
		return result
	}

	if u, err := url.Parse(c.SearchURL); err == nil && u.Host != "" && c.Limiter != nil {
		if err := c.Limiter.Wait(ctx, u.Host); err != nil {
			result.Err = err
			return result
		}
	}

	health, err := c.Backend.Health(ctx)
	if err != nil {
		result.Err = err
		return result
	}
	result.Health = health
	return result
}

// Check verifies each suggestion and returns one Check per suggestion, in
// input order. The error is non-nil only when the checks could not run.
func (c *Checker) Check(ctx context.Context, suggestions []bookchat.Suggestion) ([]Check, error) {
	base, err := url.Parse(c.BaseURL)
	if err != nil || base.Host == "" {
		return nil, bookchat.Errorf(bookchat.EINVALID, "invalid site URL %q", c.BaseURL)
	}

	listed := c.sitemapPaths(ctx)

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	checks := make([]Check, len(suggestions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, s := range suggestions {
		g.Go(func() error {
			checks[i] = c.check(gctx, s, listed)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return checks, nil
}

func (c *Checker) check(ctx context.Context, s bookchat.Suggestion, listed map[string]bool) Check {
	result := Check{Suggestion: s}

	pageURL, err := resolve(c.BaseURL, s.Path)
	if err != nil {
		result.Err = err
		return result
	}
	result.URL = pageURL

	if listed[normalizePath(s.Path)] {
		result.Source = SourceSitemap
		return result
	}

	u, _ := url.Parse(pageURL)
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx, u.Host); err != nil {
			result.Err = err
			return result
		}
	}

	if _, err := c.Fetcher.Fetch(ctx, pageURL); err != nil {
		result.Err = fmt.Errorf("fetching %s: %w", pageURL, err)
		return result
	}
	result.Source = SourceFetch
	return result
}

// sitemapPaths returns the set of normalized paths the sitemap lists.
// A missing or unreadable sitemap yields an empty set.
func (c *Checker) sitemapPaths(ctx context.Context) map[string]bool {
	paths := make(map[string]bool)
	if c.Sitemaps == nil {
		return paths
	}

	urls, err := c.Sitemaps.DiscoverURLs(ctx, c.BaseURL)
	if err != nil {
		if c.Logger != nil {
			c.Logger.Warn("sitemap unavailable", "url", c.BaseURL, "err", err)
		}
		return paths
	}

	for _, raw := range urls {
		u, err := url.Parse(raw)
		if err != nil {
			continue
		}
		paths[normalizePath(u.Path)] = true
	}
	return paths
}
