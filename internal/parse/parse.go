package parse

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrTagNotFound is returned when a selector matches nothing. It indicates
// a page-structure mismatch the caller cannot recover from; handlers
// propagate it upward to abort the enclosing mode.
var ErrTagNotFound = errors.New("tag not found")

// NewDocument parses an HTML document from raw bytes.
//
// Design decision: We use goquery rather than walking x/net/html nodes by
// hand because the extraction code is dominated by "first element matching
// this selector" lookups, which CSS selectors express directly and the
// equivalent manual traversals obscure.
func NewDocument(body []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// FindTag returns the first descendant of sel matching the CSS selector.
// If nothing matches, it returns an error wrapping ErrTagNotFound that
// names the selector sought.
func FindTag(sel *goquery.Selection, selector string) (*goquery.Selection, error) {
	found := sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, fmt.Errorf("no element matches %q: %w", selector, ErrTagNotFound)
	}
	return found, nil
}

// CollapseSpace folds all runs of whitespace, including embedded line
// breaks, into single spaces and trims the result. Definition-list blocks
// in the documentation wrap author lists across many lines; collapsed text
// is what ends up in output rows.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
