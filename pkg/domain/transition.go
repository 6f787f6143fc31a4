package domain

import "fmt"

// Transition is a single raw (from, symbol, to) triple as read from a description.
type Transition struct {
	From   State  `json:"from" yaml:"from" mapstructure:"from"`
	Symbol Symbol `json:"symbol" yaml:"symbol" mapstructure:"symbol"`
	To     State  `json:"to" yaml:"to" mapstructure:"to"`
}

func (t Transition) String() string {
	return fmt.Sprintf("%s %s %s", t.From, t.Symbol, t.To)
}

// Key identifies a row of the transition relation.
type Key struct {
	State  State  `json:"state"`
	Symbol Symbol `json:"symbol"`
}

func (k Key) String() string {
	return fmt.Sprintf("(%s, %s)", k.State, k.Symbol)
}

// TransitionTable maps (state, symbol) to an ordered list of distinct destinations.
// Keys and destinations keep the order in which they were first added.
// The zero value is not usable; call NewTransitionTable.
type TransitionTable struct {
	rows map[Key][]State
	keys []Key
}

// NewTransitionTable creates an empty table.
func NewTransitionTable() *TransitionTable {
	return &TransitionTable{
		rows: make(map[Key][]State),
	}
}

// BuildTransitionTable creates a table from raw triples, dropping duplicates.
func BuildTransitionTable(triples ...Transition) *TransitionTable {
	t := NewTransitionTable()
	for _, tr := range triples {
		t.Add(tr)
	}
	return t
}

// Add records a triple. It reports false if the exact triple was already present,
// in which case the table is left unchanged.
func (t *TransitionTable) Add(tr Transition) bool {
	key := Key{State: tr.From, Symbol: tr.Symbol}
	dests, exists := t.rows[key]
	if !exists {
		t.keys = append(t.keys, key)
	}
	for _, d := range dests {
		if d == tr.To {
			return false
		}
	}
	t.rows[key] = append(dests, tr.To)
	return true
}

// Destinations returns a copy of the destinations for (state, symbol).
// An absent key yields an empty slice, never an error.
func (t *TransitionTable) Destinations(state State, symbol Symbol) []State {
	dests := t.rows[Key{State: state, Symbol: symbol}]
	out := make([]State, len(dests))
	copy(out, dests)
	return out
}

// Keys returns the keys of the table in insertion order.
func (t *TransitionTable) Keys() []Key {
	out := make([]Key, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of distinct keys.
func (t *TransitionTable) Len() int {
	return len(t.keys)
}

// Triples flattens the table back into triples, grouped by key, keys in
// insertion order and destinations in insertion order within a key.
func (t *TransitionTable) Triples() []Transition {
	var out []Transition
	for _, k := range t.keys {
		for _, d := range t.rows[k] {
			out = append(out, Transition{From: k.State, Symbol: k.Symbol, To: d})
		}
	}
	return out
}
