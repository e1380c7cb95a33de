package scan

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/pepscan/pepscan/internal/config"
	"github.com/pepscan/pepscan/internal/fetch"
	"github.com/pepscan/pepscan/internal/parse"
)

// pdfA4Pattern matches the archive link for the A4 PDF documentation.
var pdfA4Pattern = regexp.MustCompile(`.+pdf-a4\.zip$`)

// Download fetches the PDF documentation archive linked from the downloads
// page and writes it to the downloads directory, named after the final
// path segment of the archive URL.
//
// A fetch failure at any step logs the error and returns without writing;
// a missing table or archive link is a structural error that aborts the run.
func Download(ctx context.Context, f *fetch.Fetcher, cfg *config.Config) error {
	downloadsURL := resolveURL(cfg.BaseDocURL, "download.html")
	resp, err := f.Get(ctx, downloadsURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch downloads page", "url", downloadsURL, "error", err)
		return nil
	}

	doc, err := parse.NewDocument(resp.Body)
	if err != nil {
		return err
	}

	tableTag, err := parse.FindTag(doc.Selection, "table.docutils")
	if err != nil {
		return err
	}

	archiveAnchor := tableTag.Find("a").FilterFunction(func(_ int, a *goquery.Selection) bool {
		return pdfA4Pattern.MatchString(a.AttrOr("href", ""))
	}).First()
	if archiveAnchor.Length() == 0 {
		return fmt.Errorf(`no link matching "pdf-a4.zip" in documentation table: %w`, parse.ErrTagNotFound)
	}

	archiveURL := resolveURL(downloadsURL, archiveAnchor.AttrOr("href", ""))
	archiveResp, err := f.Get(ctx, archiveURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch archive", "url", archiveURL, "error", err)
		return nil
	}

	u, err := url.Parse(archiveURL)
	if err != nil {
		return fmt.Errorf("invalid archive URL %s: %w", archiveURL, err)
	}

	if err := os.MkdirAll(cfg.DownloadsDir, 0750); err != nil {
		return fmt.Errorf("failed to create downloads directory: %w", err)
	}

	archivePath := filepath.Join(cfg.DownloadsDir, path.Base(u.Path))
	if err := os.WriteFile(archivePath, archiveResp.Body, 0600); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}

	slog.InfoContext(ctx, "archive saved", "path", archivePath, "bytes", len(archiveResp.Body))
	return nil
}
