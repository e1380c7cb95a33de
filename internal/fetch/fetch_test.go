package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pepscan/pepscan/internal/cache"
)

// TestFetcherGet tests network fetches, error reporting, and body limits.
func TestFetcherGet(t *testing.T) {
	t.Parallel()

	t.Run("fetches a page and returns its body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			if _, err := w.Write([]byte("<html><body>hello</body></html>")); err != nil {
				t.Errorf("failed to write response: %v", err)
			}
		}))
		defer srv.Close()

		f := New(nil)
		resp, err := f.Get(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected 200, got %d", resp.StatusCode)
		}
		if !strings.Contains(string(resp.Body), "hello") {
			t.Errorf("body missing expected content: %q", resp.Body)
		}
		if resp.Cached {
			t.Error("fresh fetch should not be marked cached")
		}
	})

	t.Run("sends the configured user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := New(nil, WithUserAgent("pepscan-test/0.1"))
		if _, err := f.Get(context.Background(), srv.URL); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotUA != "pepscan-test/0.1" {
			t.Errorf("expected custom user agent, got %q", gotUA)
		}
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		f := New(nil)
		if _, err := f.Get(context.Background(), srv.URL); err == nil {
			t.Error("expected error for 404 response")
		}
	})

	t.Run("transport failure is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // server already gone

		f := New(nil)
		if _, err := f.Get(context.Background(), srv.URL); err == nil {
			t.Error("expected error for unreachable server")
		}
	})

	t.Run("body is capped at max body size", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/octet-stream")
			if _, err := w.Write(make([]byte, 4096)); err != nil {
				t.Errorf("failed to write response: %v", err)
			}
		}))
		defer srv.Close()

		f := New(nil, WithMaxBodySize(1024))
		resp, err := f.Get(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Body) != 1024 {
			t.Errorf("expected capped body of 1024 bytes, got %d", len(resp.Body))
		}
	})

	t.Run("decodes non-UTF-8 HTML to UTF-8", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
			// 0xE9 is "é" in ISO-8859-1.
			if _, err := w.Write([]byte{'c', 'a', 'f', 0xE9}); err != nil {
				t.Errorf("failed to write response: %v", err)
			}
		}))
		defer srv.Close()

		f := New(nil)
		resp, err := f.Get(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(resp.Body) != "café" {
			t.Errorf("expected decoded body %q, got %q", "café", resp.Body)
		}
	})
}

// TestFetcherCache tests cache interaction: hits avoid the network and
// survive server shutdown.
func TestFetcherCache(t *testing.T) {
	t.Parallel()

	t.Run("second fetch is served from the cache", func(t *testing.T) {
		t.Parallel()

		var hits int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			if _, err := w.Write([]byte("<html><body>cached</body></html>")); err != nil {
				t.Errorf("failed to write response: %v", err)
			}
		}))
		defer srv.Close()

		store, err := cache.Open(t.TempDir())
		if err != nil {
			t.Fatalf("failed to open cache: %v", err)
		}
		defer store.Close()

		f := New(store)
		ctx := context.Background()

		first, err := f.Get(ctx, srv.URL)
		if err != nil {
			t.Fatalf("first fetch failed: %v", err)
		}
		second, err := f.Get(ctx, srv.URL)
		if err != nil {
			t.Fatalf("second fetch failed: %v", err)
		}

		if hits != 1 {
			t.Errorf("expected 1 network hit, got %d", hits)
		}
		if !second.Cached {
			t.Error("second response should be marked cached")
		}
		if string(first.Body) != string(second.Body) {
			t.Error("cached body differs from fetched body")
		}
	})

	t.Run("cached response outlives the server", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			if _, err := w.Write([]byte("<html><body>gone</body></html>")); err != nil {
				t.Errorf("failed to write response: %v", err)
			}
		}))

		store, err := cache.Open(t.TempDir())
		if err != nil {
			t.Fatalf("failed to open cache: %v", err)
		}
		defer store.Close()

		f := New(store)
		ctx := context.Background()

		if _, err := f.Get(ctx, srv.URL); err != nil {
			t.Fatalf("first fetch failed: %v", err)
		}
		srv.Close()

		resp, err := f.Get(ctx, srv.URL)
		if err != nil {
			t.Fatalf("fetch after shutdown failed: %v", err)
		}
		if !strings.Contains(string(resp.Body), "gone") {
			t.Errorf("expected cached body, got %q", resp.Body)
		}
	})
}
