package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/pepscan/pepscan/internal/cache"
)

// Default fetcher settings, overridable via options.
const (
	defaultTimeout     = 30 * time.Second
	defaultMaxBodySize = 20 * 1024 * 1024 // 20MB
	defaultUserAgent   = "pepscan/1.0 (+https://github.com/pepscan/pepscan)"
)

// Response is the result of one successful fetch, either from the network
// or from the cache.
type Response struct {
	// URL is the request URL.
	URL string

	// StatusCode is the HTTP response status code.
	StatusCode int

	// ContentType is the value of the Content-Type response header.
	ContentType string

	// Body is the response body. HTML bodies are decoded to UTF-8.
	Body []byte

	// Cached reports whether the response was served from the cache
	// without a network request.
	Cached bool
}

// Fetcher performs GET requests with on-disk response caching.
//
// Design decision: The cache sits inside the Fetcher rather than in the
// handlers because caching is a property of the session, not of any one
// scrape mode. Handlers only see "give me this URL".
type Fetcher struct {
	// client is the underlying HTTP client.
	client *http.Client

	// store is the response cache. May be nil, in which case every
	// fetch goes to the network.
	store *cache.Store

	// userAgent is the User-Agent header sent with every request.
	userAgent string

	// maxBodySize limits the size of response bodies to read.
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum response body size.
func WithMaxBodySize(size int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = size
	}
}

// New creates a Fetcher backed by the given response cache.
// Pass a nil store to disable caching.
func New(store *cache.Store, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:      &http.Client{Timeout: defaultTimeout},
		store:       store,
		userAgent:   defaultUserAgent,
		maxBodySize: defaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Get fetches a URL, serving from the cache when possible. On a cache miss
// it issues the request, decodes HTML bodies to UTF-8, stores the result,
// and returns it. Any transport failure or non-2xx status is returned as
// an error; the caller decides whether that ends the run.
func (f *Fetcher) Get(ctx context.Context, rawURL string) (*Response, error) {
	if f.store != nil {
		entry, err := f.store.Get(ctx, rawURL)
		if err == nil {
			slog.DebugContext(ctx, "cache hit", "url", rawURL)
			return &Response{
				URL:         entry.URL,
				StatusCode:  entry.StatusCode,
				ContentType: entry.ContentType,
				Body:        entry.Body,
				Cached:      true,
			}, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			// A broken cache should not fail the run; fall through
			// to the network.
			slog.WarnContext(ctx, "cache read failed", "url", rawURL, "error", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, rawURL)
	}

	contentType := resp.Header.Get("Content-Type")
	body, err := f.readBody(resp.Body, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", rawURL, err)
	}

	if f.store != nil {
		entry := &cache.Entry{
			URL:         rawURL,
			StatusCode:  resp.StatusCode,
			ContentType: contentType,
			Body:        body,
		}
		if err := f.store.Put(ctx, entry); err != nil {
			// Caching is best effort; the fetched response is still good.
			slog.WarnContext(ctx, "cache write failed", "url", rawURL, "error", err)
		}
	}

	return &Response{
		URL:         rawURL,
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        body,
	}, nil
}

// readBody reads the response body up to maxBodySize, transcoding HTML
// content to UTF-8 based on the Content-Type charset.
func (f *Fetcher) readBody(r io.Reader, contentType string) ([]byte, error) {
	limited := io.LimitReader(r, f.maxBodySize)

	if strings.Contains(contentType, "text/html") {
		decoded, err := charset.NewReader(limited, contentType)
		if err != nil {
			return nil, err
		}
		return io.ReadAll(decoded)
	}

	return io.ReadAll(limited)
}
