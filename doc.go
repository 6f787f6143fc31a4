/*
Package automata simulates finite automata loaded from textual descriptions.

A Simulator loads one Automaton through a DescriptionLoader (file, memory, Loam
or Redis), validates it, and evaluates input sequences against it, reporting at
each step which transition fired and whether the sequence is accepted.

# Concept

The automaton is a general transition relation: a (state, symbol) pair may map
to several destinations. Simulation is only attempted when the relation is
deterministic; otherwise the simulator reports exactly which keys are ambiguous.
Every evaluation produces a reproducible trace:

	delta(q0, ab) -> q1
	delta(q1, b) -> q2
	delta(q2, Epsilon) -> Epsilon

# Description Format

	q0 q1 q2      states, the first one is initial
	q2            final states
	a b           alphabet
	q0 a q1       transitions, one per line, until end of input or a blank line
	q1 b q2

YAML and JSON descriptions with the keys states, initial, finals, alphabet and
transitions are also accepted.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/automata"
		"github.com/aretw0/automata/pkg/adapters/file"
	)

	func main() {
		ctx := context.Background()

		sim, err := automata.New(ctx, file.New("identifier_FA.in"))
		if err != nil {
			log.Fatal(err)
		}

		if report := sim.CheckDeterminism(ctx); !report.Deterministic {
			for _, amb := range report.Ambiguities {
				fmt.Println(amb)
			}
			return
		}

		result := sim.Evaluate(ctx, "ab")
		for _, step := range result.Trace {
			fmt.Println(step)
		}
		fmt.Println(result.Verdict.Message())
	}
*/
package automata
