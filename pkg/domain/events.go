package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventEvaluationStart EventType = "evaluation_start"
	EventStep            EventType = "step"
	EventVerdict         EventType = "verdict"
	EventDeterminism     EventType = "determinism_check"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// EvaluationEvent marks the start of an evaluation.
type EvaluationEvent struct {
	EventBase
	Input string `json:"input"`
}

// StepEvent is emitted for every trace step.
type StepEvent struct {
	EventBase
	Index int       `json:"index"`
	Step  TraceStep `json:"step"`
}

// VerdictEvent closes an evaluation.
type VerdictEvent struct {
	EventBase
	Input    string        `json:"input"`
	Verdict  Verdict       `json:"verdict"`
	Steps    int           `json:"steps"`
	Duration time.Duration `json:"duration"`
}

// DeterminismEvent reports the outcome of a determinism check.
type DeterminismEvent struct {
	EventBase
	Deterministic bool `json:"deterministic"`
	Ambiguities   int  `json:"ambiguities"`
}

// LifecycleHooks defines callbacks for simulator observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnEvaluationStart func(context.Context, *EvaluationEvent)
	OnStep            func(context.Context, *StepEvent)
	OnVerdict         func(context.Context, *VerdictEvent)
	OnDeterminism     func(context.Context, *DeterminismEvent)
}
