package scan

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pepscan/pepscan/internal/config"
	"github.com/pepscan/pepscan/internal/fetch"
	"github.com/pepscan/pepscan/internal/model"
	"github.com/pepscan/pepscan/internal/parse"
)

// numericPattern identifies PEP-number cells in the numerical index table.
var numericPattern = regexp.MustCompile(`^\d+$`)

// PEP visits every PEP detail page linked from the numerical index, reads
// the status from its metadata definition list, and aggregates occurrence
// counts per status. Statuses absent from the expected-status registry are
// logged with the accepted set and excluded from both the table and the
// final total.
//
// Detail pages that fail to fetch are skipped; a missing index table,
// status label, or metadata list aborts the run.
func PEP(ctx context.Context, f *fetch.Fetcher, cfg *config.Config) (*model.Table, error) {
	resp, err := f.Get(ctx, cfg.PEPIndexURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch PEP index", "url", cfg.PEPIndexURL, "error", err)
		return nil, nil
	}

	doc, err := parse.NewDocument(resp.Body)
	if err != nil {
		return nil, err
	}

	section, err := parse.FindTag(doc.Selection, "section#numerical-index")
	if err != nil {
		return nil, err
	}
	tbody, err := parse.FindTag(section, "tbody")
	if err != nil {
		return nil, err
	}

	var cells []*goquery.Selection
	tbody.Find("td").Each(func(_ int, td *goquery.Selection) {
		if numericPattern.MatchString(parse.CollapseSpace(td.Text())) {
			cells = append(cells, td)
		}
	})

	tally := model.NewStatusTally()
	for i, cell := range cells {
		anchor, err := parse.FindTag(cell, "a")
		if err != nil {
			return nil, err
		}

		detailURL := resolveURL(cfg.PEPIndexURL, anchor.AttrOr("href", ""))
		detailResp, err := f.Get(ctx, detailURL)
		if err != nil {
			slog.WarnContext(ctx, "skipping PEP page", "url", detailURL, "error", err)
			continue
		}

		page, err := parse.NewDocument(detailResp.Body)
		if err != nil {
			return nil, err
		}

		status, err := extractStatus(page, detailURL)
		if err != nil {
			return nil, err
		}
		tally.Add(status)
		slog.DebugContext(ctx, "PEP processed", "url", detailURL, "status", status, "done", i+1, "total", len(cells))
	}

	expected := cfg.ExpectedStatus.Flatten()
	table := model.NewTable("Status", "Quantity")
	total := 0
	for _, status := range tally.Statuses() {
		count := tally.Count(status)
		if _, ok := expected[status]; !ok {
			slog.WarnContext(ctx, "unexpected PEP status",
				"status", status,
				"count", count,
				"expected", cfg.ExpectedStatus.Accepted(),
			)
			continue
		}
		table.Append(status, strconv.Itoa(count))
		total += count
	}
	table.Append("Total", strconv.Itoa(total))

	return table, nil
}

// extractStatus reads the status value from a PEP detail page: the dd node
// following the "Status" label in the metadata definition list.
func extractStatus(page *goquery.Document, pageURL string) (string, error) {
	dl, err := parse.FindTag(page.Selection, "dl.rfc2822.field-list.simple")
	if err != nil {
		return "", fmt.Errorf("PEP metadata list missing on %s: %w", pageURL, err)
	}

	label := dl.Find("dt").FilterFunction(func(_ int, dt *goquery.Selection) bool {
		return strings.TrimSpace(dt.Text()) == "Status"
	}).First()
	if label.Length() == 0 {
		return "", fmt.Errorf(`no "Status" label on %s: %w`, pageURL, parse.ErrTagNotFound)
	}

	value := label.NextAllFiltered("dd").First()
	if value.Length() == 0 {
		return "", fmt.Errorf(`no status value on %s: %w`, pageURL, parse.ErrTagNotFound)
	}

	return parse.CollapseSpace(value.Text()), nil
}
