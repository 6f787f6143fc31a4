package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner with the version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	// Using a subtle gradient-like color scheme (Teal/Indigo)
	lines := []struct {
		text  string
		color string
	}{
		{`    _         _                        _        `, "#2dd4bf"},
		{`   / \  _   _| |_ ___  _ __ ___   __ _| |_ __ _ `, "#22d3ee"},
		{`  / _ \| | | | __/ _ \| '_ ' _ \ / _' | __/ _' |`, "#38bdf8"},
		{` / ___ \ |_| | || (_) | | | | | | (_| | || (_| |`, "#60a5fa"},
		{`/_/   \_\__,_|\__\___/|_| |_| |_|\__,_|\__\__,_|`, "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintf(w, "  v%s\n\n", strings.TrimSpace(version))
}
