/*
Package ports defines the driven ports (interfaces) for the automata simulator.

These interfaces decouple the core model from the places descriptions come from,
allowing the simulator to be fed from files, memory, Loam repositories or Redis.

# Key Interfaces

  - DescriptionLoader: Produces a parsed Automaton in a single one-shot load.
*/
package ports
