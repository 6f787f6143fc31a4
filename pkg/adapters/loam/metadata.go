package loam

import "github.com/aretw0/automata/internal/compiler"

// AutomatonMetadata represents the frontmatter of an automaton document.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type AutomatonMetadata struct {
	ID          string   `json:"id" mapstructure:"id"`
	Title       string   `json:"title,omitempty" mapstructure:"title"`
	States      []string `json:"states" mapstructure:"states"`
	Initial     string   `json:"initial,omitempty" mapstructure:"initial"`
	Finals      []string `json:"finals" mapstructure:"finals"`
	Alphabet    []string `json:"alphabet" mapstructure:"alphabet"`
	Transitions []any    `json:"transitions" mapstructure:"transitions"`
}

// Description converts the frontmatter into the compiler's structured form.
func (m AutomatonMetadata) Description() compiler.Description {
	return compiler.Description{
		States:      m.States,
		Initial:     m.Initial,
		Finals:      m.Finals,
		Alphabet:    m.Alphabet,
		Transitions: m.Transitions,
	}
}
