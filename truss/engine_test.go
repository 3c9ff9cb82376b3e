package truss_test

import (
	"testing"

	"github.com/katalvlaran/ktruss/csr"
	"github.com/katalvlaran/ktruss/truss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewEngine_NilIndex verifies the nil-index guard.
func TestNewEngine_NilIndex(t *testing.T) {
	_, err := truss.NewEngine(nil, diamond)
	assert.ErrorIs(t, err, truss.ErrNilIndex)
}

// TestNewEngine_EdgeMismatch covers the ways an edge list can diverge
// from the index it claims to describe.
func TestNewEngine_EdgeMismatch(t *testing.T) {
	idx := mustIndex(t, 4, diamond)

	// Wrong length.
	_, err := truss.NewEngine(idx, diamond[:4])
	assert.ErrorIs(t, err, truss.ErrEdgeMismatch, "truncated list")

	// Same edges, permuted positions.
	permuted := []csr.Edge{diamond[1], diamond[0], diamond[2], diamond[3], diamond[4]}
	_, err = truss.NewEngine(idx, permuted)
	assert.ErrorIs(t, err, truss.ErrEdgeMismatch, "permuted list")

	// Right length, one foreign edge.
	foreign := []csr.Edge{diamond[0], diamond[1], diamond[2], diamond[3], {U: 0, V: 3}}
	_, err = truss.NewEngine(idx, foreign)
	assert.ErrorIs(t, err, truss.ErrEdgeMismatch, "foreign edge")
}

// TestNewEngine_ReversedOrientationAccepted: endpoint orientation is
// irrelevant to edge identity, so a reversed pair at the right position
// is the same edge.
func TestNewEngine_ReversedOrientationAccepted(t *testing.T) {
	idx := mustIndex(t, 4, diamond)
	reversed := []csr.Edge{{U: 1, V: 0}, diamond[1], diamond[2], diamond[3], {U: 3, V: 2}}

	eng, err := truss.NewEngine(idx, reversed)
	require.NoError(t, err)

	sup, err := eng.InitialSupport()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 1, 1}, sup)
}

// TestNewEngine_OptionViolation surfaces bad option values eagerly.
func TestNewEngine_OptionViolation(t *testing.T) {
	idx := mustIndex(t, 4, diamond)

	_, err := truss.NewEngine(idx, diamond, truss.WithWorkers(0))
	assert.ErrorIs(t, err, truss.ErrOptionViolation)
	_, err = truss.NewEngine(idx, diamond, truss.WithWorkers(-3))
	assert.ErrorIs(t, err, truss.ErrOptionViolation)
}
