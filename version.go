package automata

import _ "embed"

// Version is the current release of the automata module.
//
//go:embed VERSION
var Version string
