// Package cache provides the SQLite-backed HTTP response cache for pepscan.
//
// Successful responses are persisted keyed by URL so that repeated runs
// against the same pages reuse prior results until the cache is explicitly
// cleared with the --clear-cache flag.
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of a
// directory of flat files because:
//  1. No external dependencies - the cache is a single file
//  2. CGO-free implementation allows easy cross-compilation
//  3. UPSERT gives atomic replace semantics for refreshed responses
//  4. Clearing the cache is a single DELETE statement
package cache
