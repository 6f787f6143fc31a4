package compiler

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// Description is the structured (YAML/JSON/frontmatter) form of an automaton.
// Transitions may be written as "from symbol to" strings or as
// {from, symbol, to} objects.
type Description struct {
	States      []string `json:"states" yaml:"states" mapstructure:"states"`
	Initial     string   `json:"initial,omitempty" yaml:"initial,omitempty" mapstructure:"initial"`
	Finals      []string `json:"finals" yaml:"finals" mapstructure:"finals"`
	Alphabet    []string `json:"alphabet" yaml:"alphabet" mapstructure:"alphabet"`
	Transitions []any    `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
}

// Empty reports whether no field was populated.
func (d Description) Empty() bool {
	return len(d.States) == 0 && d.Initial == "" && len(d.Finals) == 0 &&
		len(d.Alphabet) == 0 && len(d.Transitions) == 0
}

// Build converts the description into an Automaton.
func (d Description) Build() (*domain.Automaton, error) {
	if len(d.States) == 0 {
		return nil, fmt.Errorf("%w: no states declared", domain.ErrMalformedDescription)
	}
	initial := d.Initial
	if initial == "" {
		initial = d.States[0]
	}

	table := domain.NewTransitionTable()
	for i, raw := range d.Transitions {
		tr, err := decodeTransition(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: transition %d: %v", domain.ErrMalformedDescription, i+1, err)
		}
		table.Add(tr)
	}

	return domain.NewAutomaton(
		domain.State(initial),
		toStates(d.States),
		toStates(d.Finals),
		toSymbols(d.Alphabet),
		table,
	), nil
}

// Describe converts an Automaton into its structured form.
func Describe(a *domain.Automaton) Description {
	d := Description{
		Initial:     string(a.Initial()),
		States:      make([]string, 0),
		Finals:      make([]string, 0),
		Alphabet:    make([]string, 0),
		Transitions: make([]any, 0),
	}
	for _, s := range a.States() {
		d.States = append(d.States, string(s))
	}
	for _, s := range a.FinalStates() {
		d.Finals = append(d.Finals, string(s))
	}
	for _, s := range a.Alphabet() {
		d.Alphabet = append(d.Alphabet, string(s))
	}
	for _, tr := range a.Triples() {
		d.Transitions = append(d.Transitions, tr.String())
	}
	return d
}

func decodeTransition(raw any) (domain.Transition, error) {
	switch v := raw.(type) {
	case string:
		fields := strings.Fields(v)
		if len(fields) != 3 {
			return domain.Transition{}, fmt.Errorf("expected '<state> <symbol> <state>', got %q", v)
		}
		return domain.Transition{
			From:   domain.State(fields[0]),
			Symbol: domain.Symbol(fields[1]),
			To:     domain.State(fields[2]),
		}, nil
	case map[string]any:
		return transitionFromMap(func(k string) (any, bool) {
			val, ok := v[k]
			return val, ok
		})
	case map[any]any:
		return transitionFromMap(func(k string) (any, bool) {
			val, ok := v[k]
			return val, ok
		})
	}
	return domain.Transition{}, fmt.Errorf("unsupported transition entry %T", raw)
}

func transitionFromMap(get func(string) (any, bool)) (domain.Transition, error) {
	var parts [3]string
	for i, key := range []string{"from", "symbol", "to"} {
		val, ok := get(key)
		if !ok {
			return domain.Transition{}, fmt.Errorf("missing %q", key)
		}
		s, ok := val.(string)
		if !ok && val != nil {
			// YAML resolves tokens like 0 or true to non-string scalars.
			s = fmt.Sprint(val)
		}
		if s == "" {
			return domain.Transition{}, fmt.Errorf("field %q must be a non-empty token", key)
		}
		parts[i] = s
	}
	return domain.Transition{
		From:   domain.State(parts[0]),
		Symbol: domain.Symbol(parts[1]),
		To:     domain.State(parts[2]),
	}, nil
}
