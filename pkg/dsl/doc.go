/*
Package dsl provides a fluent builder for constructing automata in Go code.

It is an alternative to description files for tests, generated automata and
programs that embed a fixed recognizer.

Example usage:

	b := dsl.New()
	b.Alphabet("0", "1")

	b.Add("even").Initial().Final().
		On("0", "even").
		On("1", "odd")

	b.Add("odd").
		On("0", "odd").
		On("1", "even")

	loader, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}
	sim, err := automata.New(ctx, loader)
*/
package dsl
