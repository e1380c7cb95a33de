package model

// StatusTally counts occurrences of PEP status strings while remembering
// the order in which each status was first seen.
//
// Design decision: We track insertion order explicitly instead of relying
// on map iteration because the output table must list statuses in the order
// the PEP detail pages were visited. Go map iteration order is randomized,
// which would make reruns non-deterministic.
type StatusTally struct {
	// counts maps a status string to its occurrence count.
	counts map[string]int

	// order holds status strings in first-occurrence order.
	order []string
}

// NewStatusTally creates an empty tally.
func NewStatusTally() *StatusTally {
	return &StatusTally{
		counts: make(map[string]int),
		order:  make([]string, 0),
	}
}

// Add records one occurrence of the given status.
func (t *StatusTally) Add(status string) {
	if _, ok := t.counts[status]; !ok {
		t.order = append(t.order, status)
	}
	t.counts[status]++
}

// Count returns the number of occurrences recorded for the given status.
func (t *StatusTally) Count(status string) int {
	return t.counts[status]
}

// Statuses returns all recorded statuses in first-occurrence order.
func (t *StatusTally) Statuses() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of distinct statuses recorded.
func (t *StatusTally) Len() int {
	return len(t.order)
}
