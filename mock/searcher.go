package mock

import (
	"context"

	"github.com/fwojciec/bookchat"
)

var _ bookchat.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of bookchat.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, req bookchat.SearchRequest) (*bookchat.SearchResponse, error)
	HealthFn func(ctx context.Context) (*bookchat.Health, error)
}

func (s *Searcher) Search(ctx context.Context, req bookchat.SearchRequest) (*bookchat.SearchResponse, error) {
	return s.SearchFn(ctx, req)
}

func (s *Searcher) Health(ctx context.Context) (*bookchat.Health, error) {
	return s.HealthFn(ctx)
}
