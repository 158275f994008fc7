package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/bookchat"
	bchttp "github.com/fwojciec/bookchat/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("posts JSON query and decodes results", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/search", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]any{"query": "what is ZMP?", "limit": float64(3)}, body)

			_, _ = w.Write([]byte(`{"results":[{"title":"Movement Dynamics","content":"The zero moment point...\nsecond line","score":0.912,"filename":"movement-dynamics.md"}]}`))
		}))
		defer server.Close()

		searcher := bchttp.NewSearcher(server.URL + "/search")
		resp, err := searcher.Search(context.Background(), bookchat.SearchRequest{Query: "what is ZMP?", Limit: 3})

		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "Movement Dynamics", resp.Results[0].Title)
		assert.Equal(t, "The zero moment point...\nsecond line", resp.Results[0].Content)
		assert.Equal(t, 91, resp.Results[0].Percent())
	})

	t.Run("treats missing results as no matches", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		resp, err := bchttp.NewSearcher(server.URL).Search(context.Background(), bookchat.SearchRequest{Query: "x", Limit: 3})

		require.NoError(t, err)
		assert.Empty(t, resp.Results)
	})

	t.Run("treats null results as no matches", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"results":null}`))
		}))
		defer server.Close()

		resp, err := bchttp.NewSearcher(server.URL).Search(context.Background(), bookchat.SearchRequest{Query: "x", Limit: 3})

		require.NoError(t, err)
		assert.Empty(t, resp.Results)
	})

	t.Run("treats JSON error body as no matches", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"detail":"Search engine not initialized"}`))
		}))
		defer server.Close()

		resp, err := bchttp.NewSearcher(server.URL).Search(context.Background(), bookchat.SearchRequest{Query: "x", Limit: 3})

		require.NoError(t, err)
		assert.Empty(t, resp.Results)
	})

	t.Run("treats non-object JSON as no matches", func(t *testing.T) {
		t.Parallel()

		for _, body := range []string{`[]`, `"busy"`, `null`, ` 42 `} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))

			resp, err := bchttp.NewSearcher(server.URL).Search(context.Background(), bookchat.SearchRequest{Query: "x", Limit: 3})
			server.Close()

			require.NoError(t, err, body)
			assert.Empty(t, resp.Results, body)
		}
	})

	t.Run("returns EINVALID for trailing data after JSON", func(t *testing.T) {
		t.Parallel()

		bodies := []string{
			`{"results":[{"title":"A","content":"a","score":0.5}]}trailing`,
			`{"results":[]} <html>502</html>`,
		}
		for _, body := range bodies {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))

			resp, err := bchttp.NewSearcher(server.URL).Search(context.Background(), bookchat.SearchRequest{Query: "x", Limit: 3})
			server.Close()

			assert.Nil(t, resp, body)
			assert.Equal(t, bookchat.EINVALID, bookchat.ErrorCode(err), body)
		}
	})

	t.Run("returns EINVALID for unparseable body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>Bad Gateway</html>"))
		}))
		defer server.Close()

		_, err := bchttp.NewSearcher(server.URL).Search(context.Background(), bookchat.SearchRequest{Query: "x", Limit: 3})

		assert.Equal(t, bookchat.EINVALID, bookchat.ErrorCode(err))
	})

	t.Run("returns EUNAVAILABLE when backend is unreachable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := bchttp.NewSearcher(url).Search(context.Background(), bookchat.SearchRequest{Query: "x", Limit: 3})

		assert.Equal(t, bookchat.EUNAVAILABLE, bookchat.ErrorCode(err))
	})

	t.Run("applies optional timeout", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)

		searcher := bchttp.NewSearcher(server.URL, bchttp.WithSearchTimeout(20*time.Millisecond))
		_, err := searcher.Search(context.Background(), bookchat.SearchRequest{Query: "x", Limit: 3})

		assert.Equal(t, bookchat.EUNAVAILABLE, bookchat.ErrorCode(err))
	})

	t.Run("issues one request per call", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := bchttp.NewSearcher(server.URL).Search(context.Background(), bookchat.SearchRequest{Query: "x", Limit: 3})

		require.Error(t, err)
		assert.Equal(t, int32(1), hits.Load())
	})
}

func TestSearcher_Health(t *testing.T) {
	t.Parallel()

	t.Run("calls health endpoint on search host", func(t *testing.T) {
		t.Parallel()

		var gotMethod, gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod, gotPath = r.Method, r.URL.Path
			_, _ = w.Write([]byte(`{"status":"healthy","model":"gemini-2.0-flash"}`))
		}))
		defer server.Close()

		health, err := bchttp.NewSearcher(server.URL + "/search").Health(context.Background())

		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, gotMethod)
		assert.Equal(t, "/health", gotPath)
		assert.Equal(t, &bookchat.Health{Status: "healthy", Model: "gemini-2.0-flash"}, health)
	})

	t.Run("accepts non-JSON body on 200", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`ok`))
		}))
		defer server.Close()

		health, err := bchttp.NewSearcher(server.URL + "/search").Health(context.Background())

		require.NoError(t, err)
		assert.Empty(t, health.Status)
	})

	t.Run("returns EUNAVAILABLE for non-200", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := bchttp.NewSearcher(server.URL + "/search").Health(context.Background())

		assert.Equal(t, bookchat.EUNAVAILABLE, bookchat.ErrorCode(err))
		assert.Contains(t, bookchat.ErrorMessage(err), "HTTP 503")
	})

	t.Run("returns EUNAVAILABLE when backend is unreachable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := bchttp.NewSearcher(url + "/search").Health(context.Background())

		assert.Equal(t, bookchat.EUNAVAILABLE, bookchat.ErrorCode(err))
	})
}

func TestHealthURL(t *testing.T) {
	t.Parallel()

	got, err := bchttp.HealthURL("http://book.example.com:8000/search")
	require.NoError(t, err)
	assert.Equal(t, "http://book.example.com:8000/health", got)

	got, err = bchttp.HealthURL("https://book.example.com/api/chat?x=1")
	require.NoError(t, err)
	assert.Equal(t, "https://book.example.com/health", got)

	_, err = bchttp.HealthURL("not a url")
	assert.Equal(t, bookchat.EINVALID, bookchat.ErrorCode(err))
}

func TestSearchURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pageURL string
		want    string
	}{
		{name: "uses page hostname", pageURL: "https://book.example.com/docs/intro", want: "http://book.example.com:8000/search"},
		{name: "replaces page port", pageURL: "http://localhost:3000/", want: "http://localhost:8000/search"},
		{name: "falls back to localhost", pageURL: "", want: "http://localhost:8000/search"},
		{name: "brackets IPv6 host", pageURL: "http://[::1]:3000/", want: "http://[::1]:8000/search"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := bchttp.SearchURL(tt.pageURL)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
