package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bookchat"
)

// Ensure LoggingSearcher implements bookchat.Searcher.
var _ bookchat.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with logging.
type LoggingSearcher struct {
	next   bookchat.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next bookchat.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the query.
func (s *LoggingSearcher) Search(ctx context.Context, req bookchat.SearchRequest) (resp *bookchat.SearchResponse, err error) {
	defer func(begin time.Time) {
		results := 0
		if resp != nil {
			results = len(resp.Results)
		}
		s.logger.Info("search",
			"query", req.Query,
			"limit", req.Limit,
			"results", results,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, req)
}

// Health delegates to the wrapped searcher and logs the backend status.
func (s *LoggingSearcher) Health(ctx context.Context) (health *bookchat.Health, err error) {
	defer func(begin time.Time) {
		status := ""
		if health != nil {
			status = health.Status
		}
		s.logger.Info("health",
			"status", status,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Health(ctx)
}
