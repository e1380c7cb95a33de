// Package main provides the entry point for the pepscan CLI.
//
// pepscan crawls a fixed set of pages on the Python documentation sites
// and extracts structured records: release-note authorship, version and
// status tables, and PEP status counts.
//
// Usage:
//
//	pepscan whats-new
//	pepscan latest-versions
//	pepscan download
//	pepscan pep
//
// See --help for all available options.
package main

// main is the entry point for pepscan.
func main() {
	Execute()
}
