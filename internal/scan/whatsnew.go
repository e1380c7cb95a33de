package scan

import (
	"context"
	"log/slog"

	"github.com/PuerkitoBio/goquery"

	"github.com/pepscan/pepscan/internal/config"
	"github.com/pepscan/pepscan/internal/fetch"
	"github.com/pepscan/pepscan/internal/model"
	"github.com/pepscan/pepscan/internal/parse"
)

// WhatsNew collects the per-version "What's New in Python" articles.
// For every article listed on the overview page it fetches the article
// itself and extracts the title heading and the authors/editors block.
//
// Articles that fail to fetch are skipped without a placeholder row.
// If the overview page itself cannot be fetched, the mode produces no
// result at all (nil table, nil error).
func WhatsNew(ctx context.Context, f *fetch.Fetcher, cfg *config.Config) (*model.Table, error) {
	whatsNewURL := resolveURL(cfg.BaseDocURL, "whatsnew/")
	resp, err := f.Get(ctx, whatsNewURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch what's-new overview", "url", whatsNewURL, "error", err)
		return nil, nil
	}

	doc, err := parse.NewDocument(resp.Body)
	if err != nil {
		return nil, err
	}

	section, err := parse.FindTag(doc.Selection, "section#what-s-new-in-python")
	if err != nil {
		return nil, err
	}
	wrapper, err := parse.FindTag(section, "div.toctree-wrapper")
	if err != nil {
		return nil, err
	}

	var items []*goquery.Selection
	wrapper.Find("li.toctree-l1").Each(func(_ int, s *goquery.Selection) {
		items = append(items, s)
	})

	table := model.NewTable("Article link", "Title", "Editor, Author")
	for i, item := range items {
		anchor, err := parse.FindTag(item, "a")
		if err != nil {
			return nil, err
		}
		href, ok := anchor.Attr("href")
		if !ok {
			slog.WarnContext(ctx, "article entry has no href, skipping", "index", i)
			continue
		}

		link := resolveURL(whatsNewURL, href)
		articleResp, err := f.Get(ctx, link)
		if err != nil {
			slog.WarnContext(ctx, "skipping article", "url", link, "error", err)
			continue
		}

		page, err := parse.NewDocument(articleResp.Body)
		if err != nil {
			return nil, err
		}
		h1, err := parse.FindTag(page.Selection, "h1")
		if err != nil {
			return nil, err
		}
		dl, err := parse.FindTag(page.Selection, "dl")
		if err != nil {
			return nil, err
		}

		table.Append(link, parse.CollapseSpace(h1.Text()), parse.CollapseSpace(dl.Text()))
		slog.DebugContext(ctx, "article processed", "url", link, "done", i+1, "total", len(items))
	}

	return table, nil
}
