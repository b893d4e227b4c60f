package session

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axion-project/axion/pkg/expr"
	"github.com/axion-project/axion/pkg/kernel"
	"github.com/axion-project/axion/pkg/parser"
	"github.com/axion-project/axion/pkg/theory"
)

func TestAddAndLookup(t *testing.T) {
	s := NewSession()
	proof := identityProof(t)
	//
	record, err := s.Add(proof)
	require.NoError(t, err)
	assert.Equal(t, "∀x: x = x", record.Theorem)
	assert.Equal(t, "Logic", record.Theory)
	assert.Equal(t, proof.Hash(), record.ProofHash)
	assert.True(t, record.Valid)
	//
	found, ok := s.ByHash(proof.Hash())
	require.True(t, ok)
	assert.Equal(t, record.ID, found.ID)
	//
	assert.True(t, s.Verify(proof.Hash()))
	assert.False(t, s.Verify("no such digest"))
}

func TestAddRequiresFinalized(t *testing.T) {
	s := NewSession()
	k := newKernel()
	//
	proof, err := k.CreateProof(mustParse(t, "∀x: x = x"), "Logic")
	require.NoError(t, err)
	//
	_, err = s.Add(proof)
	assert.Error(t, err)
}

func TestListByTheory(t *testing.T) {
	s := NewSession()
	_, err := s.Add(identityProof(t))
	require.NoError(t, err)
	//
	assert.Len(t, s.List(""), 1)
	assert.Len(t, s.List("Logic"), 1)
	assert.Empty(t, s.List("Peano"))
}

func TestTheoremsAndStatistics(t *testing.T) {
	s := NewSession()
	// Same theorem recorded twice counts once
	_, err := s.Add(identityProof(t))
	require.NoError(t, err)
	_, err = s.Add(identityProof(t))
	require.NoError(t, err)
	//
	assert.Equal(t, []string{"∀x: x = x"}, s.Theorems(""))
	//
	stats := s.Statistics()
	assert.Equal(t, 2, stats.TotalProofs)
	assert.Equal(t, 2, stats.ValidProofs)
	assert.Equal(t, 1, stats.UniqueTheorems)
	assert.Equal(t, []string{"Logic"}, stats.TheoriesUsed)
	assert.Equal(t, 2, stats.AxiomUsage["Logic.identity"])
}

func TestExportImportRoundTrip(t *testing.T) {
	s := NewSession()
	s.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	//
	record, err := s.Add(identityProof(t))
	require.NoError(t, err)
	//
	var buf bytes.Buffer
	require.NoError(t, s.Export(&buf))
	//
	restored := NewSession()
	require.NoError(t, restored.Import(&buf))
	//
	found, ok := restored.ByHash(record.ProofHash)
	require.True(t, ok)
	assert.Equal(t, record, found)
	assert.Equal(t, 1, restored.Statistics().UniqueTheorems)
}

func TestImportRejectsMalformed(t *testing.T) {
	s := NewSession()
	//
	assert.Error(t, s.Import(strings.NewReader("{not json")))
}

func TestProofRoundTrip(t *testing.T) {
	k := newKernel()
	proof := identityProof(t)
	//
	data, err := EncodeProof(proof)
	require.NoError(t, err)
	//
	restored, err := DecodeProof(data, k)
	require.NoError(t, err)
	assert.Equal(t, proof.Hash(), restored.Hash())
	assert.True(t, restored.IsValid())
}

func TestDecodeRejectsTamperedStatement(t *testing.T) {
	k := newKernel()
	data, err := EncodeProof(identityProof(t))
	require.NoError(t, err)
	// Forge the statements into something no axiom justifies
	forged := bytes.ReplaceAll(data, []byte("∀x: x = x"), []byte("∀x: x = 0"))
	//
	_, err = DecodeProof(forged, k)
	assert.Error(t, err)
}

func TestDecodeRejectsUnknownRule(t *testing.T) {
	k := newKernel()
	data, err := EncodeProof(identityProof(t))
	require.NoError(t, err)
	//
	forged := bytes.Replace(data, []byte("axiom_application"), []byte("wishful_thinking"), 1)
	//
	_, err = DecodeProof(forged, k)
	assert.ErrorContains(t, err, "unknown rule")
}

func TestEncodeRequiresFinalized(t *testing.T) {
	k := newKernel()
	proof, err := k.CreateProof(mustParse(t, "∀x: x = x"), "Logic")
	require.NoError(t, err)
	//
	_, err = EncodeProof(proof)
	assert.Error(t, err)
}

// ============================================================================
// Helpers
// ============================================================================

func newKernel() *kernel.Kernel {
	return kernel.New(theory.StandardLibrary())
}

func mustParse(t *testing.T, input string) expr.Expr {
	t.Helper()
	e, err := parser.Parse(input)
	require.NoError(t, err)

	return e
}

func identityProof(t *testing.T) *kernel.Proof {
	t.Helper()
	k := newKernel()
	//
	proof, err := k.CreateProof(mustParse(t, "∀x: x = x"), "Logic")
	require.NoError(t, err)
	//
	_, err = k.AddStep(proof, mustParse(t, "∀x: x = x"), kernel.AxiomApplication, nil, "")
	require.NoError(t, err)
	//
	result := k.Finalize(proof)
	require.True(t, result.Valid)

	return proof
}
