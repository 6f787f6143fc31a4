package validator

import (
	"fmt"

	"github.com/aretw0/automata/pkg/domain"
)

// Violation is a single structural problem found in an automaton.
type Violation struct {
	Rule   string
	Detail string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Rule, v.Detail)
}

// AggregateError collects every violation found in one pass.
// It unwraps to domain.ErrInvalidAutomaton.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("%v: %s", domain.ErrInvalidAutomaton, e.Errors[0].Error())
	}
	msg := fmt.Sprintf("%v: %d violations:\n", domain.ErrInvalidAutomaton, len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

func (e *AggregateError) Unwrap() error {
	return domain.ErrInvalidAutomaton
}

// Violations returns all violations if err is an AggregateError.
// Otherwise returns nil.
func Violations(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}

// Validate checks the structural invariants of an automaton:
// the initial state and every final state are declared, every transition
// endpoint is declared, every transition symbol belongs to the alphabet,
// and neither the states nor the alphabet contain the Epsilon marker.
func Validate(a *domain.Automaton) error {
	var errs []error
	add := func(rule, format string, args ...any) {
		errs = append(errs, &Violation{Rule: rule, Detail: fmt.Sprintf(format, args...)})
	}

	if !a.HasState(a.Initial()) {
		add("initial", "initial state %q is not a declared state", a.Initial())
	}
	for _, f := range a.FinalStates() {
		if !a.HasState(f) {
			add("finals", "final state %q is not a declared state", f)
		}
	}
	if a.HasState(domain.Epsilon) {
		add("states", "%q is reserved and cannot be a state name", domain.Epsilon)
	}
	if a.InAlphabet(domain.Epsilon) {
		add("alphabet", "%q is reserved and cannot be an alphabet symbol", domain.Epsilon)
	}
	for _, tr := range a.Triples() {
		if !a.HasState(tr.From) {
			add("transition", "%s: source %q is not a declared state", tr, tr.From)
		}
		if !a.HasState(tr.To) {
			add("transition", "%s: destination %q is not a declared state", tr, tr.To)
		}
		if !a.InAlphabet(tr.Symbol) {
			add("transition", "%s: symbol %q is not in the alphabet", tr, tr.Symbol)
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
