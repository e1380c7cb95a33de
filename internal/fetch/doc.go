// Package fetch performs HTTP GET requests through the response cache.
//
// The Fetcher is the only component that touches the network. Every fetch
// is sequential and blocking; a cache hit short-circuits the request
// entirely. Fetch failures are plain errors - the scan handlers decide
// whether a failure is recoverable (skip the page) or ends the run.
package fetch
