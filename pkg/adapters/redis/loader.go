package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/automata/internal/compiler"
	"github.com/aretw0/automata/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultKey is the key read when none is configured.
const DefaultKey = "automata:description"

// Loader implements ports.DescriptionLoader by reading a description string from Redis.
type Loader struct {
	client *backend.Client
	key    string
	format compiler.Format
}

type Option func(*Loader)

// WithKey sets the key holding the description.
func WithKey(key string) Option {
	return func(l *Loader) {
		l.key = key
	}
}

// WithFormat sets the encoding of the stored description (default: text).
func WithFormat(format compiler.Format) Option {
	return func(l *Loader) {
		l.format = format
	}
}

// New creates a new Redis loader with options.
func New(address, password string, db int, opts ...Option) *Loader {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis loader from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Loader {
	l := &Loader{
		client: client,
		key:    DefaultKey,
		format: compiler.FormatText,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches the description with a single GET and parses it.
func (l *Loader) Load(ctx context.Context) (*domain.Automaton, error) {
	val, err := l.client.Get(ctx, l.key).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, fmt.Errorf("%w: redis key %q", domain.ErrDescriptionNotFound, l.key)
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	a, err := compiler.NewParser(l.format).Parse([]byte(val))
	if err != nil {
		return nil, fmt.Errorf("redis key %q: %w", l.key, err)
	}
	return a, nil
}

// Publish stores a description under the loader key, replacing any previous value.
// It is the write side used to seed a shared description for other simulators.
func (l *Loader) Publish(ctx context.Context, description string) error {
	if err := l.client.Set(ctx, l.key, description, 0).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (l *Loader) Close() error {
	return l.client.Close()
}
