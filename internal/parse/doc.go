// Package parse provides HTML selection helpers shared by the scan handlers.
//
// The central helper is FindTag: locate the first node matching a selector
// or fail with ErrTagNotFound. A missing tag means the page structure no
// longer matches the scraper's assumptions, which the handlers treat as an
// unrecoverable condition for the whole mode rather than a per-page skip.
package parse
