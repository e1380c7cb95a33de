// Package output renders accumulated scrape tables.
//
// Three sinks are available, selected by the --output flag:
//   - PlainWriter: tab-separated rows to a stream (the default)
//   - PrettyWriter: a bordered table to a stream
//   - CSVWriter: a CSV file in the results directory, named by mode
//     and timestamp
//
// Design decision: We use an interface so the CLI driver can pick the
// sink once and hand every mode's table to the same Write call.
package output
