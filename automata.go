package automata

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/aretw0/automata/internal/runtime"
	"github.com/aretw0/automata/internal/validator"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
)

// Simulator is the high-level entry point for the automata library.
// It holds one immutable Automaton loaded once from a DescriptionLoader and is
// safe for concurrent use by multiple readers.
type Simulator struct {
	automaton *domain.Automaton
	evaluator *runtime.Evaluator
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	strict    bool
	Name      string
}

// Option defines a functional option for configuring the Simulator.
type Option func(*Simulator)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Simulator) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the simulator.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		s.logger = logger
	}
}

// WithStrict toggles structural validation after loading (default: enabled).
func WithStrict(strict bool) Option {
	return func(s *Simulator) {
		s.strict = strict
	}
}

// WithName sets a descriptive label attached to log records.
func WithName(name string) Option {
	return func(s *Simulator) {
		s.Name = name
	}
}

// New loads the automaton once through loader and prepares the simulator.
// Loading fails fast on malformed descriptions and, in strict mode, on
// automata violating structural invariants.
func New(ctx context.Context, loader ports.DescriptionLoader, opts ...Option) (*Simulator, error) {
	if loader == nil {
		return nil, fmt.Errorf("a description loader is required")
	}

	sim := &Simulator{strict: true}
	for _, opt := range opts {
		opt(sim)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if sim.logger == nil {
		sim.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if sim.Name != "" {
		sim.logger = sim.logger.With("automaton", sim.Name)
	}

	a, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load automaton: %w", err)
	}
	if sim.strict {
		if err := validator.Validate(a); err != nil {
			return nil, err
		}
	}
	sim.automaton = a

	sim.evaluator = runtime.NewEvaluator(
		runtime.WithLogger(sim.logger),
		runtime.WithLifecycleHooks(sim.hooks),
	)

	sim.logger.Debug("automaton loaded",
		"states", len(a.States()),
		"finals", len(a.FinalStates()),
		"alphabet", len(a.Alphabet()),
		"keys", len(a.Keys()),
	)
	return sim, nil
}

// Automaton returns the loaded automaton.
func (s *Simulator) Automaton() *domain.Automaton {
	return s.automaton
}

// States returns the declared states.
func (s *Simulator) States() []domain.State {
	return s.automaton.States()
}

// FinalStates returns the final states.
func (s *Simulator) FinalStates() []domain.State {
	return s.automaton.FinalStates()
}

// Alphabet returns the alphabet symbols.
func (s *Simulator) Alphabet() []domain.Symbol {
	return s.automaton.Alphabet()
}

// Transitions returns one formatted line per transition key, in insertion order:
// delta(state, symbol) -> destination, showing the first destination or Epsilon.
func (s *Simulator) Transitions() []string {
	keys := s.automaton.Keys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, domain.FormatRow(k, s.automaton.Destinations(k.State, k.Symbol)))
	}
	return out
}

// CheckDeterminism reports every (state, symbol) key with more than one destination.
func (s *Simulator) CheckDeterminism(ctx context.Context) domain.DeterminismReport {
	return s.evaluator.Check(ctx, s.automaton)
}

// IsDeterministic reports whether the automaton is deterministic.
func (s *Simulator) IsDeterministic() bool {
	return runtime.IsDeterministic(s.automaton)
}

// Evaluate parses input into symbols and evaluates it.
// Input containing whitespace is split into fields; otherwise each character is a symbol.
func (s *Simulator) Evaluate(ctx context.Context, input string) domain.Result {
	return s.EvaluateSequence(ctx, domain.ParseSequence(input))
}

// EvaluateSequence evaluates an explicit symbol sequence.
func (s *Simulator) EvaluateSequence(ctx context.Context, seq domain.Sequence) domain.Result {
	return s.evaluator.Evaluate(ctx, s.automaton, seq)
}

// Steps returns the trace of seq lazily, and a function yielding the verdict
// once the steps have been consumed (it drains any remaining steps).
// Lifecycle hooks are not invoked for lazy runs.
func (s *Simulator) Steps(seq domain.Sequence) (iter.Seq[domain.TraceStep], func() domain.Verdict) {
	run := runtime.Steps(s.automaton, seq)
	return run.All(), run.Verdict
}
