package scan

import (
	"net/url"
)

// resolveURL resolves href against base. If either URL fails to parse,
// href is returned unchanged; a malformed link then fails at fetch time
// with a descriptive error instead of silently disappearing.
func resolveURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	h, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(h).String()
}
