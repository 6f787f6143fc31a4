package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ContentRenderer transforms output before it is written (e.g. markdown to ANSI).
type ContentRenderer func(string) (string, error)

// Runner handles the menu loop of a Session using the provided IO.
// This allows for easy testing and integration with different frontends.
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool // suppresses the menu and prompts
	Renderer ContentRenderer
}

// Run loops until the exit command, end of input or context cancellation.
// Input is read on a separate goroutine so that cancellation is observed
// even while waiting for a line.
func (r *Runner) Run(ctx context.Context, s *Session) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := pumpLines(ctx, r.Input)

	next := func() (string, error) {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-lines:
			if !ok {
				return "", io.EOF
			}
			return res.text, res.err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !r.Headless {
			fmt.Fprintln(r.Output, Menu())
		}
		line, err := next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return inputError(ctx, err)
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			fmt.Fprintln(r.Output, WrongCommandMessage)
			continue
		}

		var input string
		if cmd.NeedsInput() {
			if msg, ok := s.Ready(ctx); !ok {
				r.print(msg)
				continue
			}
			if !r.Headless {
				fmt.Fprint(r.Output, "Sequence = ")
			}
			input, err = next()
			if err != nil && !errors.Is(err, io.EOF) {
				return inputError(ctx, err)
			}
			input, err = SanitizeInput(strings.TrimSpace(input))
			if err != nil {
				fmt.Fprintf(r.Output, "Input rejected: %v\n", err)
				continue
			}
		}

		out, err := s.Handle(ctx, cmd, input)
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(r.Output, WrongCommandMessage)
			continue
		}
		r.print(out)
	}
}

func inputError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return fmt.Errorf("input error: %w", err)
}

type lineResult struct {
	text string
	err  error
}

// pumpLines reads r line by line until it fails or ctx is done.
// The channel is closed after the first read error has been delivered.
func pumpLines(ctx context.Context, r io.Reader) <-chan lineResult {
	out := make(chan lineResult)
	go func() {
		defer close(out)
		br := bufio.NewReader(r)
		for {
			text, err := readLine(br)
			select {
			case out <- lineResult{text: text, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return out
}

func (r *Runner) print(out string) {
	if r.Renderer != nil {
		if rendered, err := r.Renderer(out); err == nil {
			out = strings.TrimRight(rendered, "\n")
		}
	}
	fmt.Fprintln(r.Output, out)
}

// readLine returns the next line without its terminator. A final line without
// a newline is returned with a nil error; io.EOF is reported only when nothing was read.
func readLine(r *bufio.Reader) (string, error) {
	text, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && text != "" {
			return strings.TrimRight(text, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(text, "\r\n"), nil
}
