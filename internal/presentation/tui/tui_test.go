package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_KeepsContent(t *testing.T) {
	render := tui.NewRenderer()

	out, err := render("delta(q0, ab) -> q1")
	require.NoError(t, err)
	assert.Contains(t, out, "delta(q0, ab) -> q1")
}

func TestVerdict_ContainsMessage(t *testing.T) {
	assert.Contains(t, tui.Verdict(domain.VerdictAccepted), "Accepted!")
	assert.Contains(t, tui.Verdict(domain.VerdictRejected), "Not accepted!")
}

func TestVerdictWithProfile(t *testing.T) {
	colored := tui.VerdictWithProfile(domain.VerdictAccepted, termenv.TrueColor)
	assert.Contains(t, colored, "Accepted!")
	assert.Contains(t, colored, "\x1b[")

	assert.Equal(t, "Not accepted!", tui.VerdictWithProfile(domain.VerdictRejected, termenv.Ascii))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "1.2.3\n")
	assert.True(t, strings.HasSuffix(buf.String(), "v1.2.3\n\n"))
}
