package dsl

import "github.com/aretw0/automata/pkg/domain"

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	id      domain.State
	final   bool
	builder *Builder
}

// Initial marks the state as the initial state, replacing any previous choice.
func (s *StateBuilder) Initial() *StateBuilder {
	s.builder.initial = s.id
	return s
}

// Final marks the state as accepting.
func (s *StateBuilder) Final() *StateBuilder {
	s.final = true
	return s
}

// On adds a transition reading symbol to target. The target state is declared
// if it does not exist yet. Adding the same transition twice has no effect.
func (s *StateBuilder) On(symbol, target string) *StateBuilder {
	s.builder.Add(target)
	s.builder.addSymbol(domain.Symbol(symbol))
	s.builder.table.Add(domain.Transition{
		From:   s.id,
		Symbol: domain.Symbol(symbol),
		To:     domain.State(target),
	})
	return s
}

// Loop adds a self transition for every symbol.
func (s *StateBuilder) Loop(symbols ...string) *StateBuilder {
	for _, sym := range symbols {
		s.On(sym, string(s.id))
	}
	return s
}

// ID returns the state name.
func (s *StateBuilder) ID() domain.State {
	return s.id
}
