package main

import (
	"bytes"
	"testing"

	"github.com/aretw0/automata/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	path := testutils.WriteFile(t, "fa.txt", "q0 q1\nq1\na\nq0 a q1\n")
	cfg := testutils.WriteFile(t, "automata.yaml", "log_level: error\n")

	out, err := execute(t, "states", "--file", path, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "{q0, q1}\n", out)

	out, err = execute(t, "eval", "a", "--file", path, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "delta(q0, a) -> q1\ndelta(q1, Epsilon) -> Epsilon\nAccepted!\n", out)

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "automata version")
}

func TestCheck_NonDeterministicFails(t *testing.T) {
	path := testutils.WriteFile(t, "nfa.txt", "q0 q1\nq1\na\nq0 a q0\nq0 a q1\n")
	cfg := testutils.WriteFile(t, "automata.yaml", "log_level: error\n")

	out, err := execute(t, "check", "--file", path, "--config", cfg)
	assert.Error(t, err)
	assert.Contains(t, out, "Non deterministic!")
}
