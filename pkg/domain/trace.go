package domain

import "fmt"

// Verdict is the outcome of evaluating a sequence.
type Verdict string

const (
	VerdictAccepted         Verdict = "accepted"
	VerdictRejected         Verdict = "rejected"
	VerdictInvalidSymbol    Verdict = "invalid_symbol"
	VerdictNonDeterministic Verdict = "non_deterministic"
)

// Message returns the line shown to a user for the verdict.
func (v Verdict) Message() string {
	switch v {
	case VerdictAccepted:
		return "Accepted!"
	case VerdictRejected:
		return "Not accepted!"
	case VerdictInvalidSymbol:
		return "Sequence contains elements that are not in the alphabet!"
	case VerdictNonDeterministic:
		return "Non deterministic!"
	}
	return string(v)
}

// TraceStep records one transition applied during evaluation.
// The last step of a completed run has Suffix and To set to Epsilon.
type TraceStep struct {
	From   State  `json:"from"`
	Suffix string `json:"suffix"`
	To     State  `json:"to"`
}

// Terminal reports whether the step is the closing Epsilon step.
func (s TraceStep) Terminal() bool {
	return s.Suffix == Epsilon && s.To == Epsilon
}

func (s TraceStep) String() string {
	return FormatDelta(s.From, s.Suffix, s.To)
}

// FormatDelta renders delta(state, input) -> destination.
func FormatDelta(from State, input string, to State) string {
	return fmt.Sprintf("delta(%s, %s) -> %s", from, input, to)
}

// FormatRow renders a transition-table row using its first destination,
// or Epsilon when the row is empty.
func FormatRow(key Key, dests []State) string {
	to := State(Epsilon)
	if len(dests) > 0 {
		to = dests[0]
	}
	return FormatDelta(key.State, string(key.Symbol), to)
}
