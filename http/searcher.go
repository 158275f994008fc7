package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/bookchat"
)

// Ensure Searcher implements bookchat.Searcher at compile time.
var _ bookchat.Searcher = (*Searcher)(nil)

// Searcher posts queries to the search backend.
//
// It sends no authentication, never retries, and by default sets no
// timeout: a backend that never answers blocks Search until ctx is done.
type Searcher struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
}

// SearcherOption configures a Searcher.
type SearcherOption func(*Searcher)

// WithSearchTimeout bounds each search request. Zero means no timeout.
func WithSearchTimeout(d time.Duration) SearcherOption {
	return func(s *Searcher) {
		s.timeout = d
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(c *http.Client) SearcherOption {
	return func(s *Searcher) {
		s.client = c
	}
}

// NewSearcher creates a Searcher that posts to endpoint.
func NewSearcher(endpoint string, opts ...SearcherOption) *Searcher {
	s := &Searcher{endpoint: endpoint}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		s.client = &http.Client{}
	}

	return s
}

// Search posts req as JSON and decodes the backend's response.
//
// The status code is not inspected. A body that is valid JSON without
// results, including a non-object value, is a "no matches" answer.
// Transport failures return EUNAVAILABLE; a body that is not a single
// JSON value returns EINVALID.
func (s *Searcher) Search(ctx context.Context, req bookchat.SearchRequest) (*bookchat.SearchResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, bookchat.Errorf(bookchat.EUNAVAILABLE, "search backend unreachable: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, bookchat.Errorf(bookchat.EUNAVAILABLE, "reading search response: %v", err)
	}

	out, err := decodeSearchResponse(data)
	if err != nil {
		return nil, bookchat.Errorf(bookchat.EINVALID, "malformed search response (HTTP %d): %v", resp.StatusCode, err)
	}
	return out, nil
}

// decodeSearchResponse parses the whole body. Trailing data after the JSON
// value is an error. Only an object can carry results; any other JSON value
// decodes to an empty response.
func decodeSearchResponse(data []byte) (*bookchat.SearchResponse, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	out := &bookchat.SearchResponse{}
	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return out, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Health calls GET /health on the search backend's host.
// Any non-200 answer returns EUNAVAILABLE. A 200 answer whose body is not
// a JSON object still counts as healthy.
func (s *Searcher) Health(ctx context.Context) (*bookchat.Health, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	healthURL, err := HealthURL(s.endpoint)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, bookchat.Errorf(bookchat.EUNAVAILABLE, "search backend unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, bookchat.Errorf(bookchat.EUNAVAILABLE, "search backend unhealthy: HTTP %d from %s", resp.StatusCode, healthURL)
	}

	var health bookchat.Health
	if data, err := io.ReadAll(resp.Body); err == nil {
		_ = json.Unmarshal(data, &health)
	}
	return &health, nil
}

// HealthURL returns the health endpoint on the search endpoint's host.
func HealthURL(searchURL string) (string, error) {
	u, err := url.Parse(searchURL)
	if err != nil || u.Host == "" {
		return "", bookchat.Errorf(bookchat.EINVALID, "invalid search URL %q", searchURL)
	}
	endpoint := url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/health"}
	return endpoint.String(), nil
}

// withTimeout bounds ctx by the configured timeout, if any.
func (s *Searcher) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return context.WithCancel(ctx)
}
