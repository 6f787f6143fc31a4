package loam

import (
	"context"
	"testing"

	"github.com/aretw0/loam"

	"github.com/aretw0/automata/internal/testutils"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_FrontmatterContract(t *testing.T) {
	tmpDir, repo := testutils.SetupTestRepo(t)
	testutils.WriteFiles(t, tmpDir, map[string]string{
		"identifier.md": `---
id: identifier
title: Identifier recognizer
states: [q0, q1, q2]
finals: [q2]
alphabet: [a, b]
transitions:
  - q0 a q1
  - from: q1
    symbol: b
    to: q2
  - q1 b q2
---
Recognizes "ab".`,
	})

	typedRepo := loam.NewTypedRepository[AutomatonMetadata](repo)
	tests.DescriptionLoaderContractTest(t, New(typedRepo, "identifier"))
}

func TestLoader_BodyContract(t *testing.T) {
	tmpDir, repo := testutils.SetupTestRepo(t)
	testutils.WriteFiles(t, tmpDir, map[string]string{
		"plain.md": "---\nid: plain\n---\n" + tests.LoaderFixture,
	})

	typedRepo := loam.NewTypedRepository[AutomatonMetadata](repo)
	tests.DescriptionLoaderContractTest(t, New(typedRepo, "plain"))
}

func TestLoader_MissingDocument(t *testing.T) {
	_, repo := testutils.SetupTestRepo(t)

	loader := New(loam.NewTypedRepository[AutomatonMetadata](repo), "absent")
	_, err := loader.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrDescriptionNotFound)
}

func TestLoader_ListDocuments(t *testing.T) {
	tmpDir, repo := testutils.SetupTestRepo(t)
	testutils.WriteFiles(t, tmpDir, map[string]string{
		"binary.md": "---\nstates: [even, odd]\n---\n",
		"parity.md": "---\nid: parity\nstates: [p]\n---\n",
	})

	loader := New(loam.NewTypedRepository[AutomatonMetadata](repo), "")
	ids, err := loader.ListDocuments(context.Background())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"binary", "parity"}, ids)

	_, err = loader.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrDescriptionNotFound)
}
