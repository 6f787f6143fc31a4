package dsl_test

import (
	"context"
	"testing"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/validator"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Parity(t *testing.T) {
	b := dsl.New()
	b.Alphabet("0", "1")
	b.Add("even").Initial().Final().
		On("0", "even").
		On("1", "odd")
	b.Add("odd").
		On("0", "odd").
		On("1", "even")

	loader, err := b.Build()
	require.NoError(t, err)

	sim, err := automata.New(context.Background(), loader)
	require.NoError(t, err)

	assert.Equal(t, []domain.State{"even", "odd"}, sim.States())
	assert.Equal(t, []domain.State{"even"}, sim.FinalStates())
	assert.True(t, sim.IsDeterministic())
	assert.True(t, sim.Evaluate(context.Background(), "0110").Accepted())
	assert.False(t, sim.Evaluate(context.Background(), "010").Accepted())
}

func TestBuilder_Defaults(t *testing.T) {
	b := dsl.New()
	b.Add("q0").On("a", "q1")
	b.Add("q1").Final().Loop("a", "b")

	a, err := b.Automaton()
	require.NoError(t, err)

	assert.Equal(t, domain.State("q0"), a.Initial(), "first state is initial by default")
	assert.Equal(t, []domain.Symbol{"a", "b"}, a.Alphabet())
	assert.Equal(t, []domain.State{"q1"}, a.Destinations("q1", "b"))
}

func TestBuilder_DuplicateTransition(t *testing.T) {
	b := dsl.New()
	b.Add("q0").On("a", "q0").On("a", "q0")

	a, err := b.Automaton()
	require.NoError(t, err)
	assert.Equal(t, []domain.State{"q0"}, a.Destinations("q0", "a"))
}

func TestBuilder_Empty(t *testing.T) {
	_, err := dsl.New().Build()
	assert.ErrorIs(t, err, domain.ErrInvalidAutomaton)
}

func TestBuilder_ReservedSymbol(t *testing.T) {
	b := dsl.New()
	b.Add("q0").On(domain.Epsilon, "q0")

	_, err := b.Automaton()
	assert.ErrorIs(t, err, domain.ErrInvalidAutomaton)
	assert.NotEmpty(t, validator.Violations(err))
}
