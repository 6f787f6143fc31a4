package tui

import (
	"github.com/aretw0/automata/pkg/domain"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// NewRenderer returns a function that renders simulator output through glamour.
// Output is shown as a preformatted block so delta lines keep their alignment.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(0),
	)

	return func(text string) (string, error) {
		if err != nil {
			return text, err
		}
		return r.Render("```\n" + text + "\n```\n")
	}
}

// Verdict colors the verdict message for the terminal attached to stdout:
// green when accepted, red otherwise.
func Verdict(v domain.Verdict) string {
	return VerdictWithProfile(v, termenv.ColorProfile())
}

// VerdictWithProfile colors the verdict message using profile p.
func VerdictWithProfile(v domain.Verdict, p termenv.Profile) string {
	color := "#ef4444"
	if v == domain.VerdictAccepted {
		color = "#22c55e"
	}
	return termenv.String(v.Message()).Foreground(p.Color(color)).Bold().String()
}
