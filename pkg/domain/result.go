package domain

import "fmt"

// Ambiguity is a transition key with more than one destination.
type Ambiguity struct {
	Key          Key     `json:"key"`
	Destinations []State `json:"destinations"`
}

func (a Ambiguity) String() string {
	return fmt.Sprintf("%s, %s has multiple states: %v", a.Key.State, a.Key.Symbol, a.Destinations)
}

// DeterminismReport is the outcome of a determinism check.
// Ambiguities lists every offending key in insertion order.
type DeterminismReport struct {
	Deterministic bool        `json:"deterministic"`
	Ambiguities   []Ambiguity `json:"ambiguities,omitempty"`
}

// First returns the first offending key, if any.
func (r DeterminismReport) First() (Ambiguity, bool) {
	if len(r.Ambiguities) == 0 {
		return Ambiguity{}, false
	}
	return r.Ambiguities[0], true
}

// Result is the full outcome of evaluating one sequence.
type Result struct {
	Input   string      `json:"input"`
	Trace   []TraceStep `json:"trace"`
	Verdict Verdict     `json:"verdict"`
	// FailedAt is the index of the symbol that stopped evaluation
	// (invalid symbol or missing transition), or -1.
	FailedAt    int         `json:"failed_at"`
	Ambiguities []Ambiguity `json:"ambiguities,omitempty"`
}

// Accepted reports whether the verdict is VerdictAccepted.
func (r Result) Accepted() bool {
	return r.Verdict == VerdictAccepted
}
