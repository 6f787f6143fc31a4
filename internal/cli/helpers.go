package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/automata/internal/config"
	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/pkg/domain"
)

// Options carries the persistent CLI flags. Empty values leave the config file untouched.
type Options struct {
	ConfigPath string
	File       string
	Format     string
	Strict     *bool
	Debug      bool
	RedisAddr  string
	RedisKey   string
	LoamDir    string
	Doc        string
}

// ResolveConfig loads the config file and applies flag overrides.
func ResolveConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if opts.File != "" {
		cfg.Description = opts.File
	}
	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if opts.Strict != nil {
		cfg.Strict = *opts.Strict
	}
	if opts.Debug {
		cfg.LogLevel = "debug"
	}
	if opts.RedisAddr != "" {
		cfg.Redis.Addr = opts.RedisAddr
	}
	if opts.RedisKey != "" {
		cfg.Redis.Key = opts.RedisKey
	}
	if opts.LoamDir != "" {
		cfg.Loam.Dir = opts.LoamDir
	}
	if opts.Doc != "" {
		cfg.Loam.Doc = opts.Doc
	}
	return cfg, nil
}

// createLogger configures the application logger from the config.
// It writes to Stderr to keep Stdout for listings and JSON output.
func createLogger(cfg config.Config) (*slog.Logger, func() error, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.LogFile != "" {
		return logging.NewWithFile(level, cfg.LogFile)
	}
	return logging.New(level), func() error { return nil }, nil
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEvaluationStart: func(ctx context.Context, e *domain.EvaluationEvent) {
			logger.Debug("Evaluation Start", "input", e.Input)
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			logger.Debug("Step", "index", e.Index, "from", e.Step.From, "suffix", e.Step.Suffix, "to", e.Step.To)
		},
		OnVerdict: func(ctx context.Context, e *domain.VerdictEvent) {
			logger.Debug("Verdict", "input", e.Input, "verdict", e.Verdict, "steps", e.Steps, "duration", e.Duration)
		},
		OnDeterminism: func(ctx context.Context, e *domain.DeterminismEvent) {
			logger.Debug("Determinism Check", "deterministic", e.Deterministic, "ambiguities", e.Ambiguities)
		},
	}
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
