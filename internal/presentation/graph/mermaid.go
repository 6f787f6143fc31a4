package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// GraphOverlay contains trace data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []domain.State
	CurrentState  domain.State
}

// OverlayFromTrace builds an overlay highlighting the states a trace passed through.
// The current state is the state of the last step.
func OverlayFromTrace(trace []domain.TraceStep) *GraphOverlay {
	overlay := &GraphOverlay{}
	for _, step := range trace {
		overlay.VisitedStates = append(overlay.VisitedStates, step.From)
		overlay.CurrentState = step.From
		if !step.Terminal() {
			overlay.CurrentState = step.To
		}
	}
	return overlay
}

// GenerateMermaid produces a Mermaid flowchart syntax string for an automaton.
// It applies semantic styling:
// - Initial: ((Circle)) with an entry arrow
// - Final: (((Double Circle)))
// - Default: (Rounded)
// Symbols sharing the same endpoints are merged into one edge label, and
// edges leaving an ambiguous (state, symbol) key are drawn dotted.
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(a *domain.Automaton, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	initialID := sanitizeMermaidID(string(a.Initial()))
	sb.WriteString(fmt.Sprintf("    __start__[ ]:::hidden --> %s\n", initialID))

	for _, s := range a.States() {
		safeID := sanitizeMermaidID(string(s))

		opener, closer := "(", ")"
		switch {
		case a.IsFinal(s):
			opener, closer = "(((", ")))" // Double circle
		case s == a.Initial():
			opener, closer = "((", "))" // Circle
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, s, closer))
	}

	ambiguous := make(map[domain.Key]bool)
	for _, k := range a.Keys() {
		if len(a.Destinations(k.State, k.Symbol)) > 1 {
			ambiguous[k] = true
		}
	}

	// Merge symbols per (from, to) edge, preserving insertion order.
	type edge struct {
		from, to domain.State
		dotted   bool
	}
	var order []edge
	labels := make(map[edge][]string)
	for _, tr := range a.Triples() {
		e := edge{from: tr.From, to: tr.To, dotted: ambiguous[domain.Key{State: tr.From, Symbol: tr.Symbol}]}
		if _, seen := labels[e]; !seen {
			order = append(order, e)
		}
		labels[e] = append(labels[e], string(tr.Symbol))
	}

	for _, e := range order {
		// Escape double quotes in the label for Mermaid
		label := strings.ReplaceAll(strings.Join(labels[e], ", "), "\"", "'")
		arrow := fmt.Sprintf("-- \"%s\" -->", label)
		if e.dotted {
			arrow = fmt.Sprintf("-. \"%s\" .->", label)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", sanitizeMermaidID(string(e.from)), arrow, sanitizeMermaidID(string(e.to))))
	}

	sb.WriteString("    classDef hidden display:none;\n")

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, s := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(string(s))
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		if overlay.CurrentState != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(string(overlay.CurrentState))))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return "s_" + s
}
