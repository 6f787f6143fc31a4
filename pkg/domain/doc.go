/*
Package domain contains the core models of the automata simulator.

It defines the fundamental entities of a finite automaton: states, symbols,
the transition relation and the trace records produced while a sequence is
evaluated. The package is kept pure and free of I/O, so that every loader,
adapter and presentation layer shares the same read-only model.

# Key Entities

  - Automaton: initial state, state set, final-state set, alphabet and transitions.
  - TransitionTable: the raw (state, symbol) -> destinations relation, in insertion order.
  - Sequence: the ordered input symbols fed to the evaluator.
  - TraceStep: one applied transition, rendered as delta(state, suffix) -> destination.
  - Verdict: the outcome of an evaluation (Accepted, Rejected, InvalidSymbol, NonDeterministic).
*/
package domain
