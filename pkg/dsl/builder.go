package dsl

import (
	"fmt"

	"github.com/aretw0/automata/internal/validator"
	"github.com/aretw0/automata/pkg/adapters/memory"
	"github.com/aretw0/automata/pkg/domain"
)

// Builder manages the automaton construction.
type Builder struct {
	order    []domain.State
	states   map[domain.State]*StateBuilder
	initial  domain.State
	alphabet []domain.Symbol
	table    *domain.TransitionTable
}

// New creates a new automaton builder.
func New() *Builder {
	return &Builder{
		states: make(map[domain.State]*StateBuilder),
		table:  domain.NewTransitionTable(),
	}
}

// Add declares a state.
// If the state already exists, it returns the existing builder.
func (b *Builder) Add(state string) *StateBuilder {
	id := domain.State(state)
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder{id: id, builder: b}
	b.states[id] = sb
	b.order = append(b.order, id)
	return sb
}

// Alphabet declares symbols up front. Symbols used by On are added automatically.
func (b *Builder) Alphabet(symbols ...string) *Builder {
	for _, s := range symbols {
		b.addSymbol(domain.Symbol(s))
	}
	return b
}

func (b *Builder) addSymbol(sym domain.Symbol) {
	for _, s := range b.alphabet {
		if s == sym {
			return
		}
	}
	b.alphabet = append(b.alphabet, sym)
}

// Automaton assembles and validates the automaton.
// The initial state is the one marked Initial, or the first state added.
func (b *Builder) Automaton() (*domain.Automaton, error) {
	if len(b.order) == 0 {
		return nil, fmt.Errorf("%w: no states declared", domain.ErrInvalidAutomaton)
	}
	initial := b.initial
	if initial == "" {
		initial = b.order[0]
	}

	var finals []domain.State
	for _, id := range b.order {
		if b.states[id].final {
			finals = append(finals, id)
		}
	}

	a := domain.NewAutomaton(initial, b.order, finals, b.alphabet, b.table)
	if err := validator.Validate(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Build compiles the automaton into a memory Loader.
func (b *Builder) Build() (*memory.Loader, error) {
	a, err := b.Automaton()
	if err != nil {
		return nil, fmt.Errorf("failed to build automaton: %w", err)
	}
	return memory.NewFromAutomaton(a), nil
}
