package scan

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pepscan/pepscan/internal/config"
	"github.com/pepscan/pepscan/internal/fetch"
	"github.com/pepscan/pepscan/internal/parse"
)

const whatsNewOverview = `<html><body>
<section id="what-s-new-in-python">
  <div class="toctree-wrapper">
    <ul>
      <li class="toctree-l1"><a href="3.12.html">What's New In Python 3.12</a></li>
      <li class="toctree-l1"><a href="3.11.html">What's New In Python 3.11</a></li>
      <li class="toctree-l1"><a href="broken.html">What's New In Python 3.10</a></li>
    </ul>
  </div>
</section>
</body></html>`

func whatsNewArticle(title, editors string) string {
	return `<html><body>
<h1>` + title + `</h1>
<dl><dt>Editor</dt>
<dd>` + editors + `</dd></dl>
</body></html>`
}

// newWhatsNewServer serves the overview plus two articles; broken.html
// always returns 404.
func newWhatsNewServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	serve := func(path, body string) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			if _, err := w.Write([]byte(body)); err != nil {
				t.Errorf("failed to write response: %v", err)
			}
		})
	}
	serve("/whatsnew/", whatsNewOverview)
	serve("/whatsnew/3.12.html", whatsNewArticle("What's New In Python 3.12", "Adam\nTurner"))
	serve("/whatsnew/3.11.html", whatsNewArticle("What's New In Python 3.11", "Pablo Galindo Salgado"))
	mux.HandleFunc("/whatsnew/broken.html", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// TestWhatsNew tests article collection and the skip-on-failure behavior.
func TestWhatsNew(t *testing.T) {
	t.Parallel()

	t.Run("collects one row per reachable article", func(t *testing.T) {
		t.Parallel()

		srv := newWhatsNewServer(t)
		cfg := config.NewConfig()
		cfg.BaseDocURL = srv.URL + "/"

		table, err := WhatsNew(context.Background(), fetch.New(nil), cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if table == nil {
			t.Fatal("expected a table")
		}

		// broken.html fails to fetch: its row is omitted, not replaced
		// by a placeholder.
		if table.Len() != 2 {
			t.Fatalf("expected 2 rows, got %d", table.Len())
		}

		first := table.Rows[0]
		if first[0] != srv.URL+"/whatsnew/3.12.html" {
			t.Errorf("unexpected link in first row: %q", first[0])
		}
		if first[1] != "What's New In Python 3.12" {
			t.Errorf("unexpected title in first row: %q", first[1])
		}
		// Embedded line breaks in the definition block collapse to spaces.
		if first[2] != "Editor Adam Turner" {
			t.Errorf("unexpected editors in first row: %q", first[2])
		}

		second := table.Rows[1]
		if second[1] != "What's New In Python 3.11" {
			t.Errorf("unexpected title in second row: %q", second[1])
		}
	})

	t.Run("unreachable overview produces no result", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		cfg := config.NewConfig()
		cfg.BaseDocURL = srv.URL + "/"

		table, err := WhatsNew(context.Background(), fetch.New(nil), cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if table != nil {
			t.Errorf("expected no table, got %d rows", table.Len())
		}
	})

	t.Run("missing overview section is fatal", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			if _, err := w.Write([]byte("<html><body><p>reorganized</p></body></html>")); err != nil {
				t.Errorf("failed to write response: %v", err)
			}
		}))
		defer srv.Close()

		cfg := config.NewConfig()
		cfg.BaseDocURL = srv.URL + "/"

		_, err := WhatsNew(context.Background(), fetch.New(nil), cfg)
		if !errors.Is(err, parse.ErrTagNotFound) {
			t.Errorf("expected ErrTagNotFound, got %v", err)
		}
	})
}
