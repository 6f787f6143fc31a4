package tests

import (
	"context"
	"testing"

	"github.com/aretw0/automata/pkg/ports"
)

// LoaderFixture is the description every DescriptionLoader contract run must serve,
// written in the text format.
const LoaderFixture = `q0 q1 q2
q2
a b
q0 a q1
q1 b q2
q1 b q2
`

// DescriptionLoaderContractTest is a reusable test suite that verifies if an adapter
// complies with ports.DescriptionLoader. The loader must serve LoaderFixture
// (in any supported encoding).
func DescriptionLoaderContractTest(t *testing.T, loader ports.DescriptionLoader) {
	t.Helper()

	t.Run("Load_Structure", func(t *testing.T) {
		a, err := loader.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error loading description: %v", err)
		}
		if a.Initial() != "q0" {
			t.Errorf("initial state: got %q, want %q", a.Initial(), "q0")
		}
		if got := len(a.States()); got != 3 {
			t.Errorf("expected 3 states, got %d", got)
		}
		if !a.IsFinal("q2") || a.IsFinal("q0") {
			t.Errorf("unexpected final states: %v", a.FinalStates())
		}
		if !a.InAlphabet("a") || !a.InAlphabet("b") {
			t.Errorf("unexpected alphabet: %v", a.Alphabet())
		}
	})

	t.Run("Load_DedupesTriples", func(t *testing.T) {
		a, err := loader.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error loading description: %v", err)
		}
		if dests := a.Destinations("q1", "b"); len(dests) != 1 || dests[0] != "q2" {
			t.Errorf("(q1, b): got %v, want [q2]", dests)
		}
		if got := len(a.Keys()); got != 2 {
			t.Errorf("expected 2 transition keys, got %d", got)
		}
	})

	t.Run("Load_Repeatable", func(t *testing.T) {
		first, err := loader.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error loading description: %v", err)
		}
		second, err := loader.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error on second load: %v", err)
		}
		if len(first.Triples()) != len(second.Triples()) {
			t.Errorf("loads differ: %v vs %v", first.Triples(), second.Triples())
		}
	})
}
