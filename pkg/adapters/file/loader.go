package file

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/automata/internal/compiler"
	"github.com/aretw0/automata/pkg/domain"
)

// Loader implements ports.DescriptionLoader by reading a description file.
// The format is chosen from the file extension unless set explicitly.
type Loader struct {
	path   string
	format compiler.Format
}

// Option configures the Loader.
type Option func(*Loader)

// WithFormat forces the description format regardless of the extension.
func WithFormat(format compiler.Format) Option {
	return func(l *Loader) {
		l.format = format
	}
}

// New creates a file loader for path.
func New(path string, opts ...Option) *Loader {
	l := &Loader{
		path:   path,
		format: compiler.FormatFromPath(path),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the description path.
func (l *Loader) Path() string {
	return l.path
}

// Load reads and parses the file.
func (l *Loader) Load(ctx context.Context) (*domain.Automaton, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDescriptionNotFound, l.path)
		}
		return nil, fmt.Errorf("failed to read description: %w", err)
	}

	a, err := compiler.NewParser(l.format).Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	return a, nil
}
