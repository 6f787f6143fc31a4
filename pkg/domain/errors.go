package domain

import "errors"

// ErrMalformedDescription is returned when a description is missing header lines
// or contains transition lines with the wrong number of tokens.
var ErrMalformedDescription = errors.New("malformed description")

// ErrInvalidAutomaton is returned when a loaded automaton violates a structural invariant
// (e.g. the initial state is not a declared state).
var ErrInvalidAutomaton = errors.New("invalid automaton")

// ErrDescriptionNotFound is returned when a loader cannot locate the requested description.
var ErrDescriptionNotFound = errors.New("description not found")

// ErrNonDeterministic is returned by callers that require a deterministic automaton.
var ErrNonDeterministic = errors.New("automaton is non-deterministic")
