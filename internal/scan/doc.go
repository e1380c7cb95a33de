// Package scan implements the four scrape modes of pepscan.
//
// Each mode owns one fetch->parse->extract->accumulate pipeline against a
// specific page structure:
//   - WhatsNew: per-version release articles with their authors and editors
//   - LatestVersions: the "All versions" sidebar list with version and status
//   - Download: the PDF documentation archive
//   - PEP: status counts aggregated over all PEP detail pages
//
// Error handling follows two tiers. A fetch failure inside a loop body is
// logged and the item is skipped; the mode continues with whatever it has
// accumulated. A missing structural element (parse.ErrTagNotFound, or
// ErrNoVersionList) means the page shape no longer matches the scraper's
// assumptions and aborts the whole mode.
package scan
