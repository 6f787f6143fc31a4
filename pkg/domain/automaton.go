package domain

// State is an opaque state identifier.
type State string

// Symbol is an opaque alphabet member. Comparison is exact-match only.
type Symbol string

// Epsilon is the display marker for "no further input" and "no destination".
// It is never a member of an alphabet.
const Epsilon = "Epsilon"

// Automaton is a finite automaton loaded from a description.
// It is never mutated after construction; accessors return copies.
type Automaton struct {
	initial     State
	states      []State
	finals      []State
	alphabet    []Symbol
	stateSet    map[State]struct{}
	finalSet    map[State]struct{}
	alphabetSet map[Symbol]struct{}
	transitions *TransitionTable
}

// NewAutomaton assembles an automaton. Duplicate states and symbols are collapsed
// keeping declaration order. A nil table is treated as an empty relation.
// Structural invariants are not checked here; see the validator package.
func NewAutomaton(initial State, states, finals []State, alphabet []Symbol, transitions *TransitionTable) *Automaton {
	if transitions == nil {
		transitions = NewTransitionTable()
	}
	a := &Automaton{
		initial:     initial,
		stateSet:    make(map[State]struct{}, len(states)),
		finalSet:    make(map[State]struct{}, len(finals)),
		alphabetSet: make(map[Symbol]struct{}, len(alphabet)),
		transitions: transitions,
	}
	for _, s := range states {
		if _, ok := a.stateSet[s]; !ok {
			a.stateSet[s] = struct{}{}
			a.states = append(a.states, s)
		}
	}
	for _, s := range finals {
		if _, ok := a.finalSet[s]; !ok {
			a.finalSet[s] = struct{}{}
			a.finals = append(a.finals, s)
		}
	}
	for _, sym := range alphabet {
		if _, ok := a.alphabetSet[sym]; !ok {
			a.alphabetSet[sym] = struct{}{}
			a.alphabet = append(a.alphabet, sym)
		}
	}
	return a
}

// Initial returns the initial state.
func (a *Automaton) Initial() State { return a.initial }

// States returns the declared states in declaration order.
func (a *Automaton) States() []State { return append([]State(nil), a.states...) }

// FinalStates returns the final states in declaration order.
func (a *Automaton) FinalStates() []State { return append([]State(nil), a.finals...) }

// Alphabet returns the alphabet in declaration order.
func (a *Automaton) Alphabet() []Symbol { return append([]Symbol(nil), a.alphabet...) }

// HasState reports whether s is a declared state.
func (a *Automaton) HasState(s State) bool {
	_, ok := a.stateSet[s]
	return ok
}

// IsFinal reports whether s is a final state.
func (a *Automaton) IsFinal(s State) bool {
	_, ok := a.finalSet[s]
	return ok
}

// InAlphabet reports whether sym belongs to the alphabet.
func (a *Automaton) InAlphabet(sym Symbol) bool {
	_, ok := a.alphabetSet[sym]
	return ok
}

// Destinations returns the destinations for (s, sym); empty when no transition exists.
func (a *Automaton) Destinations(s State, sym Symbol) []State {
	return a.transitions.Destinations(s, sym)
}

// Keys returns the transition keys in insertion order.
func (a *Automaton) Keys() []Key {
	return a.transitions.Keys()
}

// Triples returns every transition triple, grouped by key in key insertion order.
func (a *Automaton) Triples() []Transition {
	return a.transitions.Triples()
}
