package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/automata/internal/runtime"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// abAutomaton accepts exactly "ab".
func abAutomaton() *domain.Automaton {
	return newAutomaton([]domain.State{"q2"},
		domain.Transition{From: "q0", Symbol: "a", To: "q1"},
		domain.Transition{From: "q1", Symbol: "b", To: "q2"},
	)
}

func TestEvaluator_Evaluate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		verdict  domain.Verdict
		trace    []domain.TraceStep
		failedAt int
	}{
		{
			name:    "Accepted",
			input:   "ab",
			verdict: domain.VerdictAccepted,
			trace: []domain.TraceStep{
				{From: "q0", Suffix: "ab", To: "q1"},
				{From: "q1", Suffix: "b", To: "q2"},
				{From: "q2", Suffix: domain.Epsilon, To: domain.Epsilon},
			},
			failedAt: -1,
		},
		{
			name:     "Missing Transition",
			input:    "ba",
			verdict:  domain.VerdictRejected,
			trace:    []domain.TraceStep{},
			failedAt: 0,
		},
		{
			name:    "Invalid Symbol",
			input:   "ac",
			verdict: domain.VerdictInvalidSymbol,
			trace: []domain.TraceStep{
				{From: "q0", Suffix: "ac", To: "q1"},
			},
			failedAt: 1,
		},
		{
			name:    "Consumed To Non Final",
			input:   "a",
			verdict: domain.VerdictRejected,
			trace: []domain.TraceStep{
				{From: "q0", Suffix: "a", To: "q1"},
				{From: "q1", Suffix: domain.Epsilon, To: domain.Epsilon},
			},
			failedAt: -1,
		},
		{
			name:    "Missing Transition Mid Sequence",
			input:   "aa",
			verdict: domain.VerdictRejected,
			trace: []domain.TraceStep{
				{From: "q0", Suffix: "aa", To: "q1"},
			},
			failedAt: 1,
		},
		{
			name:    "Empty Input Rejected",
			input:   "",
			verdict: domain.VerdictRejected,
			trace: []domain.TraceStep{
				{From: "q0", Suffix: domain.Epsilon, To: domain.Epsilon},
			},
			failedAt: -1,
		},
	}

	evaluator := runtime.NewEvaluator()
	a := abAutomaton()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := evaluator.Evaluate(context.Background(), a, domain.ParseSequence(tt.input))
			assert.Equal(t, tt.verdict, result.Verdict)
			assert.Equal(t, tt.trace, result.Trace)
			assert.Equal(t, tt.failedAt, result.FailedAt)
			assert.Equal(t, tt.input, result.Input)
		})
	}
}

func TestEvaluator_EmptyInputAccepted(t *testing.T) {
	a := newAutomaton([]domain.State{"q0"})

	result := runtime.NewEvaluator().Evaluate(context.Background(), a, domain.ParseSequence(""))

	assert.Equal(t, domain.VerdictAccepted, result.Verdict)
	assert.Equal(t, []domain.TraceStep{{From: "q0", Suffix: domain.Epsilon, To: domain.Epsilon}}, result.Trace)
}

func TestEvaluator_NonDeterministic(t *testing.T) {
	a := newAutomaton([]domain.State{"q2"},
		domain.Transition{From: "q0", Symbol: "a", To: "q1"},
		domain.Transition{From: "q0", Symbol: "a", To: "q2"},
	)

	for _, input := range []string{"", "a", "ab", "zz"} {
		result := runtime.NewEvaluator().Evaluate(context.Background(), a, domain.ParseSequence(input))
		assert.Equal(t, domain.VerdictNonDeterministic, result.Verdict, "input %q", input)
		assert.Empty(t, result.Trace)
		require.Len(t, result.Ambiguities, 1)
		assert.Equal(t, []domain.State{"q1", "q2"}, result.Ambiguities[0].Destinations)
	}
}

func TestEvaluator_AlphabetCheckedBeforeLookup(t *testing.T) {
	// (q0, c) has a transition but c is not declared in the alphabet.
	a := newAutomaton([]domain.State{"q1"},
		domain.Transition{From: "q0", Symbol: "c", To: "q1"},
	)

	result := runtime.NewEvaluator().Evaluate(context.Background(), a, domain.ParseSequence("c"))

	assert.Equal(t, domain.VerdictInvalidSymbol, result.Verdict)
	assert.Empty(t, result.Trace)
	assert.Equal(t, 0, result.FailedAt)
}

func TestEvaluator_Idempotent(t *testing.T) {
	evaluator := runtime.NewEvaluator()
	a := abAutomaton()
	seq := domain.ParseSequence("ab")

	first := evaluator.Evaluate(context.Background(), a, seq)
	second := evaluator.Evaluate(context.Background(), a, seq)

	assert.Equal(t, first, second)
}

func TestEvaluator_MultiCharacterSymbols(t *testing.T) {
	a := domain.NewAutomaton("start",
		[]domain.State{"start", "id", "done"},
		[]domain.State{"done"},
		[]domain.Symbol{"let", "x", ";"},
		domain.BuildTransitionTable(
			domain.Transition{From: "start", Symbol: "let", To: "id"},
			domain.Transition{From: "id", Symbol: "x", To: "id"},
			domain.Transition{From: "id", Symbol: ";", To: "done"},
		),
	)

	result := runtime.NewEvaluator().Evaluate(context.Background(), a, domain.ParseSequence("let x x ;"))

	assert.Equal(t, domain.VerdictAccepted, result.Verdict)
	require.Len(t, result.Trace, 5)
	assert.Equal(t, "delta(start, let x x ;) -> id", result.Trace[0].String())
	assert.Equal(t, "delta(id, ;) -> done", result.Trace[3].String())
	assert.True(t, result.Trace[4].Terminal())
}

func TestEvaluator_LifecycleHooks(t *testing.T) {
	var (
		started  []string
		steps    []int
		verdicts []domain.Verdict
		checks   []bool
	)
	hooks := domain.LifecycleHooks{
		OnEvaluationStart: func(ctx context.Context, e *domain.EvaluationEvent) {
			started = append(started, e.Input)
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			steps = append(steps, e.Index)
		},
		OnVerdict: func(ctx context.Context, e *domain.VerdictEvent) {
			verdicts = append(verdicts, e.Verdict)
			assert.Equal(t, 3, e.Steps)
		},
		OnDeterminism: func(ctx context.Context, e *domain.DeterminismEvent) {
			checks = append(checks, e.Deterministic)
		},
	}

	evaluator := runtime.NewEvaluator(runtime.WithLifecycleHooks(hooks))
	evaluator.Evaluate(context.Background(), abAutomaton(), domain.ParseSequence("ab"))

	assert.Equal(t, []string{"ab"}, started)
	assert.Equal(t, []int{0, 1, 2}, steps)
	assert.Equal(t, []domain.Verdict{domain.VerdictAccepted}, verdicts)
	assert.Equal(t, []bool{true}, checks)
}

func TestSteps_Lazy(t *testing.T) {
	run := runtime.Steps(abAutomaton(), domain.ParseSequence("ab"))

	var first domain.TraceStep
	for step := range run.All() {
		first = step
		break
	}
	assert.Equal(t, domain.TraceStep{From: "q0", Suffix: "ab", To: "q1"}, first)

	// Verdict drains the remaining steps.
	assert.Equal(t, domain.VerdictAccepted, run.Verdict())
	assert.Equal(t, -1, run.FailedAt())
}

func TestSteps_MatchesEvaluate(t *testing.T) {
	a := abAutomaton()
	for _, input := range []string{"ab", "ba", "ac", "", "abab"} {
		seq := domain.ParseSequence(input)
		run := runtime.Steps(a, seq)

		var trace []domain.TraceStep
		for step := range run.All() {
			trace = append(trace, step)
		}

		result := runtime.NewEvaluator().Evaluate(context.Background(), a, seq)
		assert.Equal(t, result.Verdict, run.Verdict(), "input %q", input)
		assert.Equal(t, result.FailedAt, run.FailedAt(), "input %q", input)
		assert.ElementsMatch(t, result.Trace, trace, "input %q", input)
	}
}

func TestSteps_NonDeterministic(t *testing.T) {
	a := newAutomaton(nil,
		domain.Transition{From: "q0", Symbol: "a", To: "q1"},
		domain.Transition{From: "q0", Symbol: "a", To: "q2"},
	)

	run := runtime.Steps(a, domain.ParseSequence("a"))
	count := 0
	for range run.All() {
		count++
	}

	assert.Zero(t, count)
	assert.Equal(t, domain.VerdictNonDeterministic, run.Verdict())
}
