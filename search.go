package bookchat

import (
	"context"
	"math"
)

// DefaultSearchLimit is the number of passages requested per query.
const DefaultSearchLimit = 3

// SearchResult is a passage matched by the search backend.
// The widget treats it as opaque display data.
type SearchResult struct {
	Title string `json:"title"`

	// Content is display text and may contain embedded newlines.
	Content string `json:"content"`

	// Score is the similarity of the passage to the query, in [0,1].
	Score float64 `json:"score"`
}

// Percent returns the score as a rounded integer percentage.
func (r SearchResult) Percent() int {
	return int(math.Round(r.Score * 100))
}

// SearchRequest is the body sent to the search backend.
type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// SearchResponse is the body returned by the search backend.
// A missing or empty Results field means no matches.
type SearchResponse struct {
	Results []SearchResult `json:"results,omitempty"`
}

// Health is the body returned by the backend's health endpoint.
type Health struct {
	Status string `json:"status"`
	Model  string `json:"model,omitempty"`
}

// Searcher queries the external search backend.
type Searcher interface {
	// Search sends one query to the backend and returns its decoded response.
	// It does not retry. Transport and decoding failures are returned as errors.
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)

	// Health reports whether the backend is up.
	// Returns EUNAVAILABLE when it cannot be reached or answers non-200.
	Health(ctx context.Context) (*Health, error)
}
