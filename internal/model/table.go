package model

// Row is an ordered tuple of text fields. The meaning of each field depends
// on the scrape mode that produced it (e.g. link/title/editors for the
// what's-new mode, or status/count for the PEP mode).
//
// Rows carry no identity beyond their position: they are appended in
// discovery order and never mutated after creation.
type Row []string

// Table is the accumulated result of one scrape mode: a header row followed
// by zero or more data rows, in discovery order.
//
// Design decision: We keep the header separate from the data rows rather
// than storing it as row zero because output sinks treat them differently
// (CSV writes both, the pretty printer renders the header as a table head).
type Table struct {
	// Header names the columns. Always non-empty for modes that produce output.
	Header Row

	// Rows holds the data rows in the order they were discovered.
	Rows []Row
}

// NewTable creates a Table with the given column names and no data rows.
func NewTable(columns ...string) *Table {
	return &Table{
		Header: Row(columns),
		Rows:   make([]Row, 0),
	}
}

// Append adds a data row built from the given fields.
func (t *Table) Append(fields ...string) {
	t.Rows = append(t.Rows, Row(fields))
}

// Len returns the number of data rows, excluding the header.
func (t *Table) Len() int {
	return len(t.Rows)
}
