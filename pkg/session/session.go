package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/domain"
)

// Command is a menu entry.
type Command int

const (
	CommandExit Command = iota
	CommandStates
	CommandFinalStates
	CommandAlphabet
	CommandTransitions
	CommandSequence
)

// ErrUnknownCommand is returned for input that does not name a menu entry.
var ErrUnknownCommand = errors.New("wrong command")

// WrongCommandMessage is shown to the user for ErrUnknownCommand.
const WrongCommandMessage = "Wrong command!"

// ErrExit is returned by Handle for CommandExit.
var ErrExit = errors.New("exit")

var menu = []struct {
	cmd   Command
	label string
}{
	{CommandStates, "Show states"},
	{CommandFinalStates, "Show final states"},
	{CommandAlphabet, "Show alphabet"},
	{CommandTransitions, "Show transitions"},
	{CommandSequence, "Check if sequence is accepted by the FA"},
	{CommandExit, "Exit"},
}

// Menu renders the list of commands.
func Menu() string {
	var sb strings.Builder
	for i, entry := range menu {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%d. %s", entry.cmd, entry.label)
	}
	return sb.String()
}

// ParseCommand converts a menu choice into a Command.
func ParseCommand(input string) (Command, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < int(CommandExit) || n > int(CommandSequence) {
		return 0, ErrUnknownCommand
	}
	return Command(n), nil
}

// NeedsInput reports whether the command reads a sequence from the user.
func (c Command) NeedsInput() bool {
	return c == CommandSequence
}

// Session binds menu commands to one Simulator.
type Session struct {
	sim *automata.Simulator
}

// New creates a Session over sim.
func New(sim *automata.Simulator) *Session {
	return &Session{sim: sim}
}

// Simulator returns the bound simulator.
func (s *Session) Simulator() *automata.Simulator {
	return s.sim
}

// Ready reports whether a sequence can be evaluated. When the automaton is
// non-deterministic it returns the diagnostic lines to show instead of prompting.
func (s *Session) Ready(ctx context.Context) (string, bool) {
	if s.sim.IsDeterministic() {
		return "", true
	}
	report := s.sim.CheckDeterminism(ctx)
	lines := make([]string, 0, len(report.Ambiguities)+1)
	for _, amb := range report.Ambiguities {
		lines = append(lines, amb.String())
	}
	lines = append(lines, domain.VerdictNonDeterministic.Message())
	return strings.Join(lines, "\n"), false
}

// Handle executes cmd. input is the sequence for CommandSequence and is ignored otherwise.
func (s *Session) Handle(ctx context.Context, cmd Command, input string) (string, error) {
	switch cmd {
	case CommandStates:
		return FormatStates(s.sim.States()), nil
	case CommandFinalStates:
		return FormatStates(s.sim.FinalStates()), nil
	case CommandAlphabet:
		return FormatSymbols(s.sim.Alphabet()), nil
	case CommandTransitions:
		return strings.Join(s.sim.Transitions(), "\n"), nil
	case CommandSequence:
		return FormatResult(s.sim.Evaluate(ctx, input)), nil
	case CommandExit:
		return "", ErrExit
	}
	return "", ErrUnknownCommand
}

// FormatStates renders a set of states as {a, b, c}.
func FormatStates(states []domain.State) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = string(s)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FormatSymbols renders the alphabet as {a, b, c}.
func FormatSymbols(symbols []domain.Symbol) string {
	parts := make([]string, len(symbols))
	for i, s := range symbols {
		parts[i] = string(s)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FormatResult renders the trace, one delta line per step, followed by the verdict.
// Ambiguities are listed first for non-deterministic automata.
func FormatResult(result domain.Result) string {
	lines := make([]string, 0, len(result.Trace)+len(result.Ambiguities)+1)
	for _, amb := range result.Ambiguities {
		lines = append(lines, amb.String())
	}
	for _, step := range result.Trace {
		lines = append(lines, step.String())
	}
	lines = append(lines, result.Verdict.Message())
	return strings.Join(lines, "\n")
}
