package compiler

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of an automaton description.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension. Unknown extensions are text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	}
	return FormatText
}

// ParseFormat validates a format name. Empty input yields FormatText.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown description format %q", name)
}

// Parser converts raw description bytes into an Automaton.
type Parser struct {
	format Format
}

// NewParser creates a parser for the given format.
func NewParser(format Format) *Parser {
	if format == "" {
		format = FormatText
	}
	return &Parser{format: format}
}

// Parse decodes data according to the parser format.
// Structural invariants are not checked; see the validator package.
func (p *Parser) Parse(data []byte) (*domain.Automaton, error) {
	switch p.format {
	case FormatYAML:
		var desc Description
		if err := yaml.Unmarshal(data, &desc); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDescription, err)
		}
		return desc.Build()
	case FormatJSON:
		var desc Description
		if err := json.Unmarshal(data, &desc); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDescription, err)
		}
		return desc.Build()
	}
	return ParseText(data)
}

// ParseText reads the line-oriented description:
//
//	q0 q1 q2      states, the first one is initial
//	q2            final states
//	a b           alphabet
//	q0 a q1       transitions, one per line, until EOF or a blank line
func ParseText(data []byte) (*domain.Automaton, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))

	var header [3][]string
	for i := range header {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("failed to read description: %w", err)
			}
			return nil, fmt.Errorf("%w: missing header line %d", domain.ErrMalformedDescription, i+1)
		}
		header[i] = strings.Fields(scanner.Text())
	}
	if len(header[0]) == 0 {
		return nil, fmt.Errorf("%w: line 1: no states declared", domain.ErrMalformedDescription)
	}

	table := domain.NewTransitionTable()
	line := 3
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			break
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: expected '<state> <symbol> <state>', got %d tokens",
				domain.ErrMalformedDescription, line, len(fields))
		}
		table.Add(domain.Transition{
			From:   domain.State(fields[0]),
			Symbol: domain.Symbol(fields[1]),
			To:     domain.State(fields[2]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read description: %w", err)
	}

	return domain.NewAutomaton(
		domain.State(header[0][0]),
		toStates(header[0]),
		toStates(header[1]),
		toSymbols(header[2]),
		table,
	), nil
}

// Render writes an automaton back into the line-oriented text format.
func Render(a *domain.Automaton) string {
	var sb strings.Builder

	states := []string{string(a.Initial())}
	for _, s := range a.States() {
		if s != a.Initial() {
			states = append(states, string(s))
		}
	}
	sb.WriteString(strings.Join(states, " "))
	sb.WriteString("\n")

	finals := make([]string, 0)
	for _, s := range a.FinalStates() {
		finals = append(finals, string(s))
	}
	sb.WriteString(strings.Join(finals, " "))
	sb.WriteString("\n")

	symbols := make([]string, 0)
	for _, s := range a.Alphabet() {
		symbols = append(symbols, string(s))
	}
	sb.WriteString(strings.Join(symbols, " "))
	sb.WriteString("\n")

	for _, tr := range a.Triples() {
		sb.WriteString(tr.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func toStates(tokens []string) []domain.State {
	out := make([]domain.State, len(tokens))
	for i, t := range tokens {
		out[i] = domain.State(t)
	}
	return out
}

func toSymbols(tokens []string) []domain.Symbol {
	out := make([]domain.Symbol, len(tokens))
	for i, t := range tokens {
		out[i] = domain.Symbol(t)
	}
	return out
}
