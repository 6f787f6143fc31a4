package session_test

import (
	"context"
	"testing"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/adapters/memory"
	"github.com/aretw0/automata/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const description = `q0 q1 q2
q2
a b
q0 a q1
q1 b q2
`

func newSession(t *testing.T, desc string) *session.Session {
	t.Helper()
	sim, err := automata.New(context.Background(), memory.NewLoader(desc))
	require.NoError(t, err)
	return session.New(sim)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  session.Command
		err   bool
	}{
		{input: "1", want: session.CommandStates},
		{input: " 4 ", want: session.CommandTransitions},
		{input: "0", want: session.CommandExit},
		{input: "6", err: true},
		{input: "-1", err: true},
		{input: "states", err: true},
	}

	for _, tt := range tests {
		got, err := session.ParseCommand(tt.input)
		if tt.err {
			assert.ErrorIs(t, err, session.ErrUnknownCommand, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestSession_Handle(t *testing.T) {
	ctx := context.Background()
	s := newSession(t, description)

	tests := []struct {
		name  string
		cmd   session.Command
		input string
		want  string
	}{
		{name: "States", cmd: session.CommandStates, want: "{q0, q1, q2}"},
		{name: "Final States", cmd: session.CommandFinalStates, want: "{q2}"},
		{name: "Alphabet", cmd: session.CommandAlphabet, want: "{a, b}"},
		{name: "Transitions", cmd: session.CommandTransitions, want: "delta(q0, a) -> q1\ndelta(q1, b) -> q2"},
		{
			name:  "Accepted Sequence",
			cmd:   session.CommandSequence,
			input: "ab",
			want:  "delta(q0, ab) -> q1\ndelta(q1, b) -> q2\ndelta(q2, Epsilon) -> Epsilon\nAccepted!",
		},
		{name: "Rejected Sequence", cmd: session.CommandSequence, input: "ba", want: "Not accepted!"},
		{
			name:  "Invalid Symbol",
			cmd:   session.CommandSequence,
			input: "ac",
			want:  "delta(q0, ac) -> q1\nSequence contains elements that are not in the alphabet!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Handle(ctx, tt.cmd, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := s.Handle(ctx, session.CommandExit, "")
	assert.ErrorIs(t, err, session.ErrExit)

	_, err = s.Handle(ctx, session.Command(42), "")
	assert.ErrorIs(t, err, session.ErrUnknownCommand)
}

func TestSession_Ready(t *testing.T) {
	ctx := context.Background()

	msg, ok := newSession(t, description).Ready(ctx)
	assert.True(t, ok)
	assert.Empty(t, msg)

	msg, ok = newSession(t, description+"q0 a q2\n").Ready(ctx)
	assert.False(t, ok)
	assert.Equal(t, "q0, a has multiple states: [q1 q2]\nNon deterministic!", msg)
}

func TestMenu(t *testing.T) {
	assert.Equal(t, `1. Show states
2. Show final states
3. Show alphabet
4. Show transitions
5. Check if sequence is accepted by the FA
0. Exit`, session.Menu())
}
