package ports

import (
	"context"

	"github.com/aretw0/automata/pkg/domain"
)

// DescriptionLoader produces an Automaton from an external description.
// Implementations parse the description but do not validate structural
// invariants; the simulator does that after loading.
type DescriptionLoader interface {
	// Load reads and parses the description.
	// Returns an error wrapping domain.ErrDescriptionNotFound when the source is missing
	// and domain.ErrMalformedDescription when it cannot be parsed.
	Load(ctx context.Context) (*domain.Automaton, error)
}

// LoaderFunc adapts a function to the DescriptionLoader interface.
type LoaderFunc func(ctx context.Context) (*domain.Automaton, error)

// Load calls f(ctx).
func (f LoaderFunc) Load(ctx context.Context) (*domain.Automaton, error) {
	return f(ctx)
}
