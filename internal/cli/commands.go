package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/internal/presentation/tui"
	httpAdapter "github.com/aretw0/automata/pkg/adapters/http"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/session"
)

// PrintListing writes the output of a listing command (states, finals, alphabet, transitions).
func PrintListing(ctx context.Context, w io.Writer, sim *automata.Simulator, cmd session.Command) error {
	out, err := session.New(sim).Handle(ctx, cmd, "")
	if err != nil {
		return err
	}
	if out != "" {
		fmt.Fprintln(w, out)
	}
	return nil
}

// Check prints the determinism report. It returns domain.ErrNonDeterministic for an NFA.
func Check(ctx context.Context, w io.Writer, sim *automata.Simulator) error {
	report := sim.CheckDeterminism(ctx)
	if report.Deterministic {
		fmt.Fprintln(w, "Deterministic!")
		return nil
	}
	for _, amb := range report.Ambiguities {
		fmt.Fprintln(w, amb.String())
	}
	fmt.Fprintln(w, domain.VerdictNonDeterministic.Message())
	return domain.ErrNonDeterministic
}

// EvalOptions selects the output format of Eval.
type EvalOptions struct {
	JSON  bool
	Color bool // colors the verdict line; ignored in JSON mode
}

// Eval evaluates every sequence in inputs. In JSON mode one result object is
// written per line; otherwise the trace and verdict, separated by a blank line.
func Eval(ctx context.Context, w io.Writer, sim *automata.Simulator, inputs []string, opts EvalOptions) error {
	enc := json.NewEncoder(w)
	for i, input := range inputs {
		result := sim.Evaluate(ctx, input)
		if opts.JSON {
			if err := enc.Encode(result); err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			continue
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		if opts.Color {
			fmt.Fprintln(w, formatColored(result))
			continue
		}
		fmt.Fprintln(w, session.FormatResult(result))
	}
	return nil
}

func formatColored(result domain.Result) string {
	text := session.FormatResult(result)
	plain := result.Verdict.Message()
	return strings.TrimSuffix(text, plain) + tui.Verdict(result.Verdict)
}

// Graph writes the Mermaid diagram, highlighting the trace of sequence when it is not empty.
func Graph(ctx context.Context, w io.Writer, sim *automata.Simulator, sequence string) {
	var overlay *graph.GraphOverlay
	if sequence != "" {
		overlay = graph.OverlayFromTrace(sim.Evaluate(ctx, sequence).Trace)
	}
	fmt.Fprint(w, graph.GenerateMermaid(sim.Automaton(), overlay))
}

// ReplOptions configures the interactive menu loop.
type ReplOptions struct {
	Input       io.Reader
	Output      io.Writer
	Interactive bool
}

// Repl runs the menu loop. Interactive sessions get the banner and rendered output;
// otherwise menu and prompts are suppressed.
func Repl(ctx context.Context, sim *automata.Simulator, opts ReplOptions) error {
	r := &session.Runner{
		Input:    opts.Input,
		Output:   opts.Output,
		Headless: !opts.Interactive,
	}
	if opts.Interactive {
		tui.PrintBanner(opts.Output, automata.Version)
		r.Renderer = tui.NewRenderer()
	}
	err := r.Run(ctx, session.New(sim))
	if err != nil && ctx.Err() != nil {
		if opts.Interactive {
			printSystemMessage(opts.Output, "Interrupted.")
		}
		return nil
	}
	return err
}

// Serve runs the HTTP API until ctx is done.
func Serve(ctx context.Context, env *Env, addr string, metrics http.Handler) error {
	var handlerOpts []httpAdapter.Option
	handlerOpts = append(handlerOpts, httpAdapter.WithLogger(env.Logger))
	if metrics != nil {
		handlerOpts = append(handlerOpts, httpAdapter.WithMetricsHandler(metrics))
	}
	handler, err := httpAdapter.NewHandler(env.Simulator, handlerOpts...)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	serverErrors := make(chan error, 1)
	go func() {
		env.Logger.Info("HTTP server listening", "address", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			if cerr := srv.Close(); cerr != nil {
				env.Logger.Error("error killing server", "error", cerr)
			}
			return fmt.Errorf("graceful shutdown did not complete: %w", err)
		}
		env.Logger.Info("HTTP server stopped")
		return nil
	}
}

// Version returns the printable version line.
func Version() string {
	return fmt.Sprintf("automata version %s", strings.TrimSpace(automata.Version))
}
