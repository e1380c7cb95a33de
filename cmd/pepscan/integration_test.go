package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

const sidebarPage = `<html><body>
<div class="sphinxsidebarwrapper">
  <ul>
    <li><a href="https://docs.python.org/3.13/">Python 3.13 (in development)</a></li>
    <li><a href="https://docs.python.org/3.12/">Python 3.12 (stable)</a></li>
    <li><a href="https://www.python.org/doc/versions/">All versions</a></li>
  </ul>
</div>
</body></html>`

// writeTestConfig writes a .pepscan file pointing every directory the run
// touches into tmpDir, so tests never reach the real cache or results dirs.
func writeTestConfig(t *testing.T, tmpDir string, extra string) string {
	t.Helper()

	content := "cache_dir: " + filepath.Join(tmpDir, "cache") + "\n" +
		"results_dir: " + filepath.Join(tmpDir, "results") + "\n" +
		"downloads_dir: " + filepath.Join(tmpDir, "downloads") + "\n" +
		extra

	path := filepath.Join(tmpDir, ".pepscan")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// TestIntegrationLatestVersionsCSV runs the latest-versions command
// end-to-end with file output and checks the CSV on disk.
func TestIntegrationLatestVersionsCSV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(sidebarPage))
	}))
	defer srv.Close()

	tmpDir := t.TempDir()
	cfgPath := writeTestConfig(t, tmpDir, "base_url: "+srv.URL+"/\n")

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"latest-versions", "--config", cfgPath, "-o", "file"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(tmpDir, "results", "latest-versions_*.csv"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected one CSV file, got %v", matches)
	}

	content, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("failed to read CSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if lines[0] != "Documentation link,Version,Status" {
		t.Errorf("unexpected CSV header: %q", lines[0])
	}
	// Header plus three versions.
	if len(lines) != 4 {
		t.Errorf("expected 4 CSV lines, got %d: %v", len(lines), lines)
	}
}

// TestIntegrationPEPPlain runs the pep command end-to-end and checks the
// plain output on stdout.
func TestIntegrationPEPPlain(t *testing.T) {
	index := `<html><body><section id="numerical-index"><table><tbody>
		<tr><td>A</td><td><a href="pep-0001/">1</a></td></tr>
		<tr><td>F</td><td><a href="pep-0008/">8</a></td></tr>
		<tr><td>F</td><td><a href="pep-0020/">20</a></td></tr>
	</tbody></table></section></body></html>`
	detail := func(status string) string {
		return `<html><body><dl class="rfc2822 field-list simple">
			<dt>Status</dt><dd>` + status + `</dd>
		</dl></body></html>`
	}

	mux := http.NewServeMux()
	pages := map[string]string{
		"/":          index,
		"/pep-0001/": detail("Active"),
		"/pep-0008/": detail("Final"),
		"/pep-0020/": detail("Final"),
	}
	for path, body := range pages {
		body := body
		mux.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(body))
		})
	}
	srv := httptest.NewServer(mux)
	defer srv.Close()

	tmpDir := t.TempDir()
	cfgPath := writeTestConfig(t, tmpDir, "pep_url: "+srv.URL+"/\n")

	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"pep", "--config", cfgPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := buf.String()
	for _, want := range []string{"Status\tQuantity", "Active\t1", "Final\t2", "Total\t3"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

// TestIntegrationCacheAvoidsRefetch runs the same command twice against
// one server and checks the second run is served from the cache.
func TestIntegrationCacheAvoidsRefetch(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(sidebarPage))
	}))
	defer srv.Close()

	tmpDir := t.TempDir()
	cfgPath := writeTestConfig(t, tmpDir, "base_url: "+srv.URL+"/\n")

	run := func() {
		t.Helper()
		cmd := NewRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"latest-versions", "--config", cfgPath})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	run()
	first := requests.Load()
	if first == 0 {
		t.Fatal("expected at least one request on the first run")
	}

	run()
	if got := requests.Load(); got != first {
		t.Errorf("expected second run to hit the cache, requests went from %d to %d", first, got)
	}
}
