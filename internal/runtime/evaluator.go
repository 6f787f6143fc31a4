package runtime

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/pkg/domain"
)

// Evaluator walks input sequences through a deterministic automaton.
// It holds no per-evaluation state and is safe for concurrent use.
type Evaluator struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// Option configures the Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Evaluator) {
		e.hooks = hooks
	}
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs seq through a and collects the trace and verdict.
func (e *Evaluator) Evaluate(ctx context.Context, a *domain.Automaton, seq domain.Sequence) domain.Result {
	started := time.Now()
	input := seq.String()

	if e.hooks.OnEvaluationStart != nil {
		e.hooks.OnEvaluationStart(ctx, &domain.EvaluationEvent{
			EventBase: domain.EventBase{Timestamp: started, Type: domain.EventEvaluationStart},
			Input:     input,
		})
	}

	result := domain.Result{
		Input:    input,
		Trace:    []domain.TraceStep{},
		FailedAt: -1,
	}

	report := CheckDeterminism(a)
	e.emitDeterminism(ctx, report)

	if !report.Deterministic {
		result.Verdict = domain.VerdictNonDeterministic
		result.Ambiguities = report.Ambiguities
		e.logger.Debug("evaluation refused", "input", input, "ambiguities", len(report.Ambiguities))
	} else {
		result.Verdict, result.FailedAt, _ = walk(a, seq, func(step domain.TraceStep) bool {
			if e.hooks.OnStep != nil {
				e.hooks.OnStep(ctx, &domain.StepEvent{
					EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStep},
					Index:     len(result.Trace),
					Step:      step,
				})
			}
			result.Trace = append(result.Trace, step)
			return true
		})
	}

	e.logger.Debug("evaluation finished",
		"input", input,
		"verdict", result.Verdict,
		"steps", len(result.Trace),
		"failed_at", result.FailedAt,
	)

	if e.hooks.OnVerdict != nil {
		e.hooks.OnVerdict(ctx, &domain.VerdictEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventVerdict},
			Input:     input,
			Verdict:   result.Verdict,
			Steps:     len(result.Trace),
			Duration:  time.Since(started),
		})
	}

	return result
}

// Check runs the determinism check and reports it through the hooks.
func (e *Evaluator) Check(ctx context.Context, a *domain.Automaton) domain.DeterminismReport {
	report := CheckDeterminism(a)
	e.emitDeterminism(ctx, report)
	return report
}

func (e *Evaluator) emitDeterminism(ctx context.Context, report domain.DeterminismReport) {
	if e.hooks.OnDeterminism == nil {
		return
	}
	e.hooks.OnDeterminism(ctx, &domain.DeterminismEvent{
		EventBase:     domain.EventBase{Timestamp: time.Now(), Type: domain.EventDeterminism},
		Deterministic: report.Deterministic,
		Ambiguities:   len(report.Ambiguities),
	})
}

// Run is a lazy evaluation of one sequence. Steps are produced on demand;
// the verdict is known once the steps have been fully consumed.
type Run struct {
	automaton *domain.Automaton
	seq       domain.Sequence
	verdict   domain.Verdict
	failedAt  int
	done      bool
}

// Steps returns a lazy evaluation of seq. No work happens until the run is iterated.
func Steps(a *domain.Automaton, seq domain.Sequence) *Run {
	return &Run{automaton: a, seq: seq, failedAt: -1}
}

// All yields the trace steps in order. Breaking out of the loop early leaves
// the verdict undetermined. Iterating again replays the same steps.
func (r *Run) All() iter.Seq[domain.TraceStep] {
	return func(yield func(domain.TraceStep) bool) {
		if !IsDeterministic(r.automaton) {
			r.verdict, r.failedAt, r.done = domain.VerdictNonDeterministic, -1, true
			return
		}
		verdict, failedAt, complete := walk(r.automaton, r.seq, yield)
		if complete {
			r.verdict, r.failedAt, r.done = verdict, failedAt, true
		}
	}
}

// Verdict drains any unconsumed steps and returns the verdict.
func (r *Run) Verdict() domain.Verdict {
	if !r.done {
		for range r.All() {
		}
	}
	return r.verdict
}

// FailedAt returns the index of the symbol that stopped evaluation, or -1.
func (r *Run) FailedAt() int {
	r.Verdict()
	return r.failedAt
}

// walk steps through seq assuming a is deterministic. It reports the verdict,
// the index of the failing symbol (or -1), and whether the walk ran to a verdict
// without the consumer stopping it.
func walk(a *domain.Automaton, seq domain.Sequence, yield func(domain.TraceStep) bool) (domain.Verdict, int, bool) {
	current := a.Initial()

	for i := 0; i < seq.Len(); i++ {
		symbol := seq.At(i)
		if !a.InAlphabet(symbol) {
			return domain.VerdictInvalidSymbol, i, true
		}

		dests := a.Destinations(current, symbol)
		if len(dests) == 0 {
			// No step is recorded for the failed position.
			return domain.VerdictRejected, i, true
		}

		if !yield(domain.TraceStep{From: current, Suffix: seq.Suffix(i), To: dests[0]}) {
			return "", -1, false
		}
		current = dests[0]
	}

	if !yield(domain.TraceStep{From: current, Suffix: domain.Epsilon, To: domain.Epsilon}) {
		return "", -1, false
	}

	if a.IsFinal(current) {
		return domain.VerdictAccepted, -1, true
	}
	return domain.VerdictRejected, -1, true
}
