package automata_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/adapters/memory"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const abDescription = `q0 q1 q2
q2
a b
q0 a q1
q1 b q2
`

const ambiguousDescription = `q0 q1 q2
q2
a b
q0 a q1
q0 a q2
`

func newSimulator(t *testing.T, description string, opts ...automata.Option) *automata.Simulator {
	t.Helper()
	sim, err := automata.New(context.Background(), memory.NewLoader(description), opts...)
	require.NoError(t, err)
	return sim
}

func TestSimulator_Scenarios(t *testing.T) {
	ctx := context.Background()
	sim := newSimulator(t, abDescription)

	t.Run("Accepts ab", func(t *testing.T) {
		result := sim.Evaluate(ctx, "ab")
		assert.Equal(t, domain.VerdictAccepted, result.Verdict)
		require.Len(t, result.Trace, 3)
		assert.Equal(t, "delta(q0, ab) -> q1", result.Trace[0].String())
		assert.Equal(t, "delta(q1, b) -> q2", result.Trace[1].String())
		assert.Equal(t, "delta(q2, Epsilon) -> Epsilon", result.Trace[2].String())
	})

	t.Run("Rejects ba Silently", func(t *testing.T) {
		result := sim.Evaluate(ctx, "ba")
		assert.Equal(t, domain.VerdictRejected, result.Verdict)
		assert.Empty(t, result.Trace)
	})

	t.Run("Invalid Symbol", func(t *testing.T) {
		result := sim.Evaluate(ctx, "ac")
		assert.Equal(t, domain.VerdictInvalidSymbol, result.Verdict)
		assert.Equal(t, 1, result.FailedAt)
		// Only the step consuming "a" is recorded.
		assert.Equal(t, []domain.TraceStep{{From: "q0", Suffix: "ac", To: "q1"}}, result.Trace)
	})

	t.Run("Empty Sequence", func(t *testing.T) {
		result := sim.Evaluate(ctx, "")
		assert.Equal(t, domain.VerdictRejected, result.Verdict)
		assert.Equal(t, []domain.TraceStep{{From: "q0", Suffix: domain.Epsilon, To: domain.Epsilon}}, result.Trace)
	})
}

func TestSimulator_NonDeterministic(t *testing.T) {
	ctx := context.Background()
	sim := newSimulator(t, ambiguousDescription)

	assert.False(t, sim.IsDeterministic())

	report := sim.CheckDeterminism(ctx)
	first, ok := report.First()
	require.True(t, ok)
	assert.Equal(t, domain.Key{State: "q0", Symbol: "a"}, first.Key)
	assert.Equal(t, []domain.State{"q1", "q2"}, first.Destinations)

	result := sim.Evaluate(ctx, "ab")
	assert.Equal(t, domain.VerdictNonDeterministic, result.Verdict)
	assert.Empty(t, result.Trace)
}

func TestSimulator_Accessors(t *testing.T) {
	sim := newSimulator(t, ambiguousDescription+"q1 b q2\n")

	assert.Equal(t, []domain.State{"q0", "q1", "q2"}, sim.States())
	assert.Equal(t, []domain.State{"q2"}, sim.FinalStates())
	assert.Equal(t, []domain.Symbol{"a", "b"}, sim.Alphabet())
	assert.Equal(t, []string{
		"delta(q0, a) -> q1",
		"delta(q1, b) -> q2",
	}, sim.Transitions())
}

func TestSimulator_StrictValidation(t *testing.T) {
	invalid := "q0 q1\nq9\na\nq0 a q1\n"

	_, err := automata.New(context.Background(), memory.NewLoader(invalid))
	assert.ErrorIs(t, err, domain.ErrInvalidAutomaton)

	sim, err := automata.New(context.Background(), memory.NewLoader(invalid), automata.WithStrict(false))
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictRejected, sim.Evaluate(context.Background(), "a").Verdict)
}

func TestSimulator_LoadErrors(t *testing.T) {
	_, err := automata.New(context.Background(), memory.NewLoader("q0 q1\n"))
	assert.ErrorIs(t, err, domain.ErrMalformedDescription)

	_, err = automata.New(context.Background(), nil)
	assert.Error(t, err)

	failing := ports.LoaderFunc(func(ctx context.Context) (*domain.Automaton, error) {
		return nil, domain.ErrDescriptionNotFound
	})
	_, err = automata.New(context.Background(), failing)
	assert.ErrorIs(t, err, domain.ErrDescriptionNotFound)
}

func TestSimulator_Steps(t *testing.T) {
	sim := newSimulator(t, abDescription)

	steps, verdict := sim.Steps(domain.ParseSequence("ab"))

	var lines []string
	for step := range steps {
		lines = append(lines, step.String())
	}
	assert.Len(t, lines, 3)
	assert.Equal(t, domain.VerdictAccepted, verdict())
}

func TestSimulator_Hooks(t *testing.T) {
	var verdicts []domain.Verdict
	hooks := domain.LifecycleHooks{
		OnVerdict: func(ctx context.Context, e *domain.VerdictEvent) {
			verdicts = append(verdicts, e.Verdict)
		},
	}
	sim := newSimulator(t, abDescription, automata.WithLifecycleHooks(hooks), automata.WithName("ab"))

	sim.Evaluate(context.Background(), "ab")
	sim.Evaluate(context.Background(), "b")

	assert.Equal(t, []domain.Verdict{domain.VerdictAccepted, domain.VerdictRejected}, verdicts)
}

func TestSimulator_ConcurrentReaders(t *testing.T) {
	sim := newSimulator(t, abDescription)
	want := sim.Evaluate(context.Background(), "ab")

	var wg sync.WaitGroup
	results := make([]domain.Result, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = sim.Evaluate(context.Background(), "ab")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
