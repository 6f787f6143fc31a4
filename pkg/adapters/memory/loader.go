package memory

import (
	"context"
	"fmt"

	"github.com/aretw0/automata/internal/compiler"
	"github.com/aretw0/automata/pkg/domain"
)

// Loader implements ports.DescriptionLoader from an in-memory description.
type Loader struct {
	data      []byte
	format    compiler.Format
	automaton *domain.Automaton
}

// Option configures the Loader.
type Option func(*Loader)

// WithFormat sets the encoding of the description (default: text).
func WithFormat(format compiler.Format) Option {
	return func(l *Loader) {
		l.format = format
	}
}

// NewLoader creates a Loader serving the given raw description.
func NewLoader(description string, opts ...Option) *Loader {
	l := &Loader{
		data:   []byte(description),
		format: compiler.FormatText,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewFromAutomaton creates a Loader that serves an already-built automaton.
// This improves DX for tests that assemble automata programmatically.
func NewFromAutomaton(a *domain.Automaton) *Loader {
	return &Loader{automaton: a}
}

// Load parses the description, or returns the prebuilt automaton.
func (l *Loader) Load(ctx context.Context) (*domain.Automaton, error) {
	if l.automaton != nil {
		return l.automaton, nil
	}
	if len(l.data) == 0 {
		return nil, fmt.Errorf("%w: empty in-memory description", domain.ErrDescriptionNotFound)
	}
	return compiler.NewParser(l.format).Parse(l.data)
}
