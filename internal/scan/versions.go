package scan

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pepscan/pepscan/internal/config"
	"github.com/pepscan/pepscan/internal/fetch"
	"github.com/pepscan/pepscan/internal/model"
	"github.com/pepscan/pepscan/internal/parse"
)

// ErrNoVersionList is returned when no sidebar list contains the
// "All versions" marker. Like a missing tag, this is a structural
// assumption about the page that cannot be recovered from.
var ErrNoVersionList = errors.New(`no "All versions" list found in sidebar`)

// versionPattern extracts the version number and parenthesized status
// from sidebar entries of the form "Python 3.12 (stable)".
var versionPattern = regexp.MustCompile(`Python (\d\.\d+) \((.*)\)`)

// LatestVersions lists every Python version linked from the sidebar of the
// main documentation page, with its status when the link text carries one.
// This mode makes exactly one HTTP request.
func LatestVersions(ctx context.Context, f *fetch.Fetcher, cfg *config.Config) (*model.Table, error) {
	resp, err := f.Get(ctx, cfg.BaseDocURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch main documentation page", "url", cfg.BaseDocURL, "error", err)
		return nil, nil
	}

	doc, err := parse.NewDocument(resp.Body)
	if err != nil {
		return nil, err
	}

	sidebar, err := parse.FindTag(doc.Selection, "div.sphinxsidebarwrapper")
	if err != nil {
		return nil, err
	}

	// The sidebar holds several lists; only the one mentioning
	// "All versions" enumerates every release.
	var anchors *goquery.Selection
	sidebar.Find("ul").EachWithBreak(func(_ int, ul *goquery.Selection) bool {
		if strings.Contains(ul.Text(), "All versions") {
			anchors = ul.Find("a")
			return false
		}
		return true
	})
	if anchors == nil {
		return nil, ErrNoVersionList
	}

	table := model.NewTable("Documentation link", "Version", "Status")
	anchors.Each(func(_ int, a *goquery.Selection) {
		text := parse.CollapseSpace(a.Text())
		version, status := text, ""
		if m := versionPattern.FindStringSubmatch(text); m != nil {
			version, status = m[1], m[2]
		}
		table.Append(a.AttrOr("href", ""), version, status)
	})

	return table, nil
}
