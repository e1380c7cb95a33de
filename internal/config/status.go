package config

import "sort"

// ExpectedStatus maps the status abbreviation shown in the PEP numerical
// index to the set of raw status strings a PEP detail page may legitimately
// carry for that abbreviation. The empty key covers index entries with no
// abbreviation at all.
//
// The registry is used only to validate and filter tally keys during PEP
// aggregation. It is loaded once at process start and never mutated.
type ExpectedStatus map[string][]string

// DefaultExpectedStatus returns the registry of acceptable PEP statuses
// as defined by the PEP index legend.
func DefaultExpectedStatus() ExpectedStatus {
	return ExpectedStatus{
		"A": {"Active", "Accepted"},
		"D": {"Deferred"},
		"F": {"Final"},
		"P": {"Provisional"},
		"R": {"Rejected"},
		"S": {"Superseded"},
		"W": {"Withdrawn"},
		"":  {"Draft", "Active"},
	}
}

// Flatten collapses the registry into a single set of acceptable raw
// status strings. A tallied status absent from this set is reported as a
// mismatch and excluded from output.
func (e ExpectedStatus) Flatten() map[string]struct{} {
	set := make(map[string]struct{})
	for _, statuses := range e {
		for _, s := range statuses {
			set[s] = struct{}{}
		}
	}
	return set
}

// Accepted returns the flat list of acceptable raw statuses, sorted so
// that mismatch log messages are stable across runs.
func (e ExpectedStatus) Accepted() []string {
	set := e.Flatten()
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
