package observability

import (
	"context"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by lifecycle hooks.
type Metrics struct {
	Evaluations *prometheus.CounterVec
	Steps       prometheus.Counter
	Duration    prometheus.Histogram
	Checks      *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil registerer leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_evaluations_total",
				Help: "Total number of evaluated sequences by verdict",
			},
			[]string{"verdict"},
		),
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "automata_trace_steps_total",
			Help: "Total number of trace steps produced",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "automata_evaluation_duration_seconds",
			Help:    "Duration of sequence evaluations",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		Checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_determinism_checks_total",
				Help: "Total number of determinism checks by outcome",
			},
			[]string{"deterministic"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Evaluations, m.Steps, m.Duration, m.Checks)
	}
	return m
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			m.Steps.Inc()
		},
		OnVerdict: func(ctx context.Context, e *domain.VerdictEvent) {
			m.Evaluations.WithLabelValues(string(e.Verdict)).Inc()
			m.Duration.Observe(e.Duration.Seconds())
		},
		OnDeterminism: func(ctx context.Context, e *domain.DeterminismEvent) {
			label := "false"
			if e.Deterministic {
				label = "true"
			}
			m.Checks.WithLabelValues(label).Inc()
		},
	}
}

// Chain combines several hook sets; each callback runs in order.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEvaluationStart: func(ctx context.Context, e *domain.EvaluationEvent) {
			for _, h := range hooks {
				if h.OnEvaluationStart != nil {
					h.OnEvaluationStart(ctx, e)
				}
			}
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			for _, h := range hooks {
				if h.OnStep != nil {
					h.OnStep(ctx, e)
				}
			}
		},
		OnVerdict: func(ctx context.Context, e *domain.VerdictEvent) {
			for _, h := range hooks {
				if h.OnVerdict != nil {
					h.OnVerdict(ctx, e)
				}
			}
		},
		OnDeterminism: func(ctx context.Context, e *domain.DeterminismEvent) {
			for _, h := range hooks {
				if h.OnDeterminism != nil {
					h.OnDeterminism(ctx, e)
				}
			}
		},
	}
}
