package domain

import (
	"strings"
	"unicode"
)

// Sequence is an ordered list of input symbols.
type Sequence struct {
	symbols []Symbol
	sep     string
}

// NewSequence creates a sequence from explicit symbols. Suffixes are rendered
// without a separator when every symbol is a single rune, else space-separated.
func NewSequence(symbols ...Symbol) Sequence {
	sep := ""
	for _, s := range symbols {
		if len([]rune(string(s))) != 1 {
			sep = " "
			break
		}
	}
	return Sequence{symbols: append([]Symbol(nil), symbols...), sep: sep}
}

// ParseSequence splits raw input into symbols.
// Input containing whitespace is split into fields; otherwise every rune is a symbol.
func ParseSequence(raw string) Sequence {
	if strings.IndexFunc(raw, unicode.IsSpace) >= 0 {
		fields := strings.Fields(raw)
		symbols := make([]Symbol, len(fields))
		for i, f := range fields {
			symbols[i] = Symbol(f)
		}
		return Sequence{symbols: symbols, sep: " "}
	}
	symbols := make([]Symbol, 0, len(raw))
	for _, r := range raw {
		symbols = append(symbols, Symbol(string(r)))
	}
	return Sequence{symbols: symbols}
}

// Len returns the number of symbols.
func (s Sequence) Len() int { return len(s.symbols) }

// At returns the symbol at position i.
func (s Sequence) At(i int) Symbol { return s.symbols[i] }

// Symbols returns a copy of the symbols.
func (s Sequence) Symbols() []Symbol { return append([]Symbol(nil), s.symbols...) }

// Suffix renders the symbols from position i to the end.
func (s Sequence) Suffix(i int) string {
	parts := make([]string, 0, len(s.symbols)-i)
	for _, sym := range s.symbols[i:] {
		parts = append(parts, string(sym))
	}
	return strings.Join(parts, s.sep)
}

func (s Sequence) String() string {
	return s.Suffix(0)
}
