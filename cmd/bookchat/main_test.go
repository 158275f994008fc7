package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/fwojciec/bookchat"
	main "github.com/fwojciec/bookchat/cmd/bookchat"
	"github.com/fwojciec/bookchat/mock"
)

// testContext returns a background context for tests.
func testContext() context.Context {
	return context.Background()
}

const introPage = `<!DOCTYPE html>
<html>
<head>
<meta name="generator" content="Docusaurus v3.5.2">
<title>Introduction | Physical AI Book</title>
</head>
<body>
<main>
<article>
<div class="theme-doc-markdown markdown">
<header><h1>Introduction</h1></header>
<p>Welcome to the book on humanoid robotics.</p>
</div>
</article>
</main>
</body>
</html>`

// bookServer serves the documentation site and the search endpoint from
// one host. It records every search request it receives.
type bookServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []bookchat.SearchRequest
	results  []bookchat.SearchResult
	listed   []string
}

func newBookServer(t *testing.T) *bookServer {
	t.Helper()

	s := &bookServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		var req bookchat.SearchRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		s.mu.Lock()
		s.requests = append(s.requests, req)
		results := s.results
		s.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(bookchat.SearchResponse{Results: results})
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"ok"}`)
	})
	mux.HandleFunc("/docs/intro", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, introPage)
	})
	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		s.mu.Lock()
		listed := s.listed
		s.mu.Unlock()
		fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?><urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
		for _, path := range listed {
			fmt.Fprintf(w, "<url><loc>http://%s%s</loc></url>", r.Host, path)
		}
		fmt.Fprint(w, `</urlset>`)
	})
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func (s *bookServer) setResults(results ...bookchat.SearchResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = results
}

func (s *bookServer) setListed(paths ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listed = paths
}

func (s *bookServer) searchRequests() []bookchat.SearchRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]bookchat.SearchRequest(nil), s.requests...)
}

// newDeps returns dependencies around a widget built from the given mocks.
func newDeps(searcher bookchat.Searcher, navigator bookchat.Navigator) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    testContext(),
		Stdout: stdout,
		Stderr: stderr,
		Widget: bookchat.NewWidget(searcher, navigator),
	}, stdout, stderr
}

func noResults() *mock.Searcher {
	return &mock.Searcher{
		SearchFn: func(ctx context.Context, req bookchat.SearchRequest) (*bookchat.SearchResponse, error) {
			return &bookchat.SearchResponse{}, nil
		},
		HealthFn: func(ctx context.Context) (*bookchat.Health, error) {
			return &bookchat.Health{Status: "ok"}, nil
		},
	}
}
