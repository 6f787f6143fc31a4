package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/compiler"
	"github.com/aretw0/automata/internal/config"
	"github.com/aretw0/automata/pkg/adapters/file"
	loamAdapter "github.com/aretw0/automata/pkg/adapters/loam"
	redisAdapter "github.com/aretw0/automata/pkg/adapters/redis"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/observability"
	"github.com/aretw0/automata/pkg/ports"
)

// Source names the backend a description is loaded from.
type Source string

const (
	SourceFile  Source = "file"
	SourceRedis Source = "redis"
	SourceLoam  Source = "loam"
)

// selectSource picks the description backend. Redis wins over Loam, Loam over a file.
func selectSource(cfg config.Config) (Source, error) {
	switch {
	case cfg.Redis.Addr != "":
		return SourceRedis, nil
	case cfg.Loam.Dir != "":
		return SourceLoam, nil
	case cfg.Description != "":
		return SourceFile, nil
	}
	return "", fmt.Errorf("%w: set --file, --redis-addr or --loam-dir", domain.ErrDescriptionNotFound)
}

// createLoader builds the DescriptionLoader selected by cfg.
// The returned close function releases backend connections.
func createLoader(cfg config.Config) (ports.DescriptionLoader, func() error, error) {
	noop := func() error { return nil }

	source, err := selectSource(cfg)
	if err != nil {
		return nil, noop, err
	}

	switch source {
	case SourceRedis:
		format, err := compiler.ParseFormat(cfg.Redis.Format)
		if err != nil {
			return nil, noop, err
		}
		opts := []redisAdapter.Option{redisAdapter.WithFormat(format)}
		if cfg.Redis.Key != "" {
			opts = append(opts, redisAdapter.WithKey(cfg.Redis.Key))
		}
		l := redisAdapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		return l, l.Close, nil
	case SourceLoam:
		l, err := loamAdapter.Open(cfg.Loam.Dir, cfg.Loam.Doc)
		if err != nil {
			return nil, noop, err
		}
		return l, noop, nil
	}

	var opts []file.Option
	if cfg.Format != "" {
		format, err := compiler.ParseFormat(cfg.Format)
		if err != nil {
			return nil, noop, err
		}
		opts = append(opts, file.WithFormat(format))
	}
	return file.New(cfg.Description, opts...), noop, nil
}

// Env is everything a command needs once the automaton is loaded.
type Env struct {
	Config    config.Config
	Logger    *slog.Logger
	Simulator *automata.Simulator
	Metrics   *observability.Metrics
	closers   []func() error
}

// Close releases the logger file and backend connections.
func (e *Env) Close() error {
	var firstErr error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Setup resolves the configuration and loads the simulator with standard CLI conventions.
// metrics may be nil.
func Setup(ctx context.Context, opts Options, metrics *observability.Metrics) (*Env, error) {
	cfg, err := ResolveConfig(opts)
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := createLogger(cfg)
	if err != nil {
		return nil, err
	}
	env := &Env{Config: cfg, Logger: logger, Metrics: metrics, closers: []func() error{closeLog}}

	loader, closeLoader, err := createLoader(cfg)
	if err != nil {
		env.Close()
		return nil, err
	}
	env.closers = append(env.closers, closeLoader)

	hooks := []domain.LifecycleHooks{createDebugHooks(logger)}
	if metrics != nil {
		hooks = append(hooks, metrics.Hooks())
	}

	sim, err := automata.New(ctx, loader,
		automata.WithLogger(logger),
		automata.WithLifecycleHooks(observability.Chain(hooks...)),
		automata.WithStrict(cfg.Strict),
	)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("error initializing simulator: %w", err)
	}
	env.Simulator = sim
	return env, nil
}

// Publish validates the description file at path and uploads it to the
// configured Redis key in the line-oriented text format, whatever its source format.
func Publish(ctx context.Context, opts Options, path string) (string, error) {
	cfg, err := ResolveConfig(opts)
	if err != nil {
		return "", err
	}
	if cfg.Redis.Addr == "" {
		return "", fmt.Errorf("publish requires --redis-addr")
	}

	// Parse locally first so a malformed description is never published.
	a, err := file.New(path).Load(ctx)
	if err != nil {
		return "", err
	}

	key := cfg.Redis.Key
	if key == "" {
		key = redisAdapter.DefaultKey
	}
	l := redisAdapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, redisAdapter.WithKey(key))
	defer l.Close()
	if err := l.Publish(ctx, compiler.Render(a)); err != nil {
		return "", err
	}
	return key, nil
}
