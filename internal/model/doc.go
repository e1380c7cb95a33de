// Package model defines the core data structures used throughout pepscan.
//
// This package contains the following main types:
//   - Table: An ordered collection of rows with a header, the result of a scrape
//   - Row: A single ordered tuple of text fields
//   - StatusTally: An insertion-ordered counter of PEP status strings
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Both the scan handlers and the output sinks need these types,
// so centralizing them prevents import cycles.
package model
