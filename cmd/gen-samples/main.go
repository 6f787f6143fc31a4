package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/loam"

	loamAdapter "github.com/aretw0/automata/pkg/adapters/loam"
)

// samples are written as Loam documents; load one with
// `automata --loam-dir <dir> --doc <id> ...`.
var samples = []struct {
	meta loamAdapter.AutomatonMetadata
	body string
}{
	{
		meta: loamAdapter.AutomatonMetadata{
			ID:       "identifier",
			Title:    "Identifier recognizer",
			States:   []string{"q0", "q1", "q2"},
			Finals:   []string{"q2"},
			Alphabet: []string{"a", "b"},
			Transitions: []any{
				"q0 a q1",
				"q1 b q2",
			},
		},
		body: "Accepts exactly \"ab\".",
	},
	{
		meta: loamAdapter.AutomatonMetadata{
			ID:       "parity",
			Title:    "Even number of ones",
			States:   []string{"even", "odd"},
			Finals:   []string{"even"},
			Alphabet: []string{"0", "1"},
			Transitions: []any{
				"even 0 even",
				"even 1 odd",
				"odd 0 odd",
				"odd 1 even",
			},
		},
		body: "Accepts binary strings with an even number of 1s.",
	},
	{
		meta: loamAdapter.AutomatonMetadata{
			ID:       "ambiguous",
			Title:    "Non-deterministic example",
			States:   []string{"q0", "q1"},
			Finals:   []string{"q1"},
			Alphabet: []string{"a"},
			Transitions: []any{
				"q0 a q0",
				"q0 a q1",
			},
		},
		body: "Reading \"a\" from q0 has two destinations, so evaluation is refused.",
	},
}

func main() {
	targetDir := "examples/automata"
	if len(os.Args) > 1 {
		targetDir = os.Args[1]
	}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		panic(err)
	}

	fmt.Printf("Generating sample automata in: %s\n", targetDir)

	// No versioning: plain file generation.
	repo, err := loam.Init(targetDir, loam.WithVersioning(false))
	if err != nil {
		panic(err)
	}

	typedRepo := loam.NewTypedRepository[loamAdapter.AutomatonMetadata](repo)
	ctx := context.TODO()

	for _, s := range samples {
		err := typedRepo.Save(ctx, &loam.DocumentModel[loamAdapter.AutomatonMetadata]{
			ID:      s.meta.ID,
			Content: s.body,
			Data:    s.meta,
		})
		check(err)
		fmt.Printf("  %s\n", s.meta.ID)
	}
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
