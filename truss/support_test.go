package truss_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ktruss/builder"
	"github.com/katalvlaran/ktruss/csr"
	"github.com/katalvlaran/ktruss/truss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitialSupport_Diamond verifies the per-edge triangle counts of the
// diamond fixture: {1,2} lies in both triangles, every other edge in one.
func TestInitialSupport_Diamond(t *testing.T) {
	eng, err := truss.NewEngine(mustIndex(t, 4, diamond), diamond)
	require.NoError(t, err)

	sup, err := eng.InitialSupport()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 1, 1}, sup)
}

// TestInitialSupport_TriangleFree checks that paths and cycles (length ≥ 4)
// have zero support everywhere.
func TestInitialSupport_TriangleFree(t *testing.T) {
	pathEdges, err := builder.Path(3)
	require.NoError(t, err)
	eng, err := truss.NewEngine(mustIndex(t, 3, pathEdges), pathEdges)
	require.NoError(t, err)
	sup, err := eng.InitialSupport()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, sup)

	cycleEdges, err := builder.Cycle(6)
	require.NoError(t, err)
	eng, err = truss.NewEngine(mustIndex(t, 6, cycleEdges), cycleEdges)
	require.NoError(t, err)
	sup, err = eng.InitialSupport()
	require.NoError(t, err)
	for i, s := range sup {
		assert.Zero(t, s, "edge %d of C6", i)
	}
}

// TestInitialSupport_Complete checks that every edge of K_n has support
// n-2 (every third vertex closes a triangle).
func TestInitialSupport_Complete(t *testing.T) {
	const n = 7
	edges, err := builder.Complete(n)
	require.NoError(t, err)
	eng, err := truss.NewEngine(mustIndex(t, n, edges), edges)
	require.NoError(t, err)

	sup, err := eng.InitialSupport()
	require.NoError(t, err)
	for i, s := range sup {
		assert.Equal(t, n-2, s, "edge %d of K%d", i, n)
	}
}

// TestInitialSupport_OrderIndependence verifies support depends only on
// topology: a shuffled edge list yields the same per-edge values.
func TestInitialSupport_OrderIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	edges, err := builder.RandomSparse(40, 0.3, rng)
	require.NoError(t, err)

	shuffled := make([]csr.Edge, len(edges))
	copy(shuffled, edges)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	engA, err := truss.NewEngine(mustIndex(t, 40, edges), edges)
	require.NoError(t, err)
	supA, err := engA.InitialSupport()
	require.NoError(t, err)

	engB, err := truss.NewEngine(mustIndex(t, 40, shuffled), shuffled)
	require.NoError(t, err)
	supB, err := engB.InitialSupport()
	require.NoError(t, err)

	assert.Equal(t, supportByEdge(edges, supA), supportByEdge(shuffled, supB))
}

// TestInitialSupport_WorkerInvariance verifies that the parallel and
// sequential computations agree exactly.
func TestInitialSupport_WorkerInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	edges, err := builder.RandomSparse(60, 0.2, rng)
	require.NoError(t, err)
	idx := mustIndex(t, 60, edges)

	seq, err := truss.NewEngine(idx, edges, truss.WithWorkers(1))
	require.NoError(t, err)
	par, err := truss.NewEngine(idx, edges, truss.WithWorkers(8))
	require.NoError(t, err)

	supSeq, err := seq.InitialSupport()
	require.NoError(t, err)
	supPar, err := par.InitialSupport()
	require.NoError(t, err)
	assert.Equal(t, supSeq, supPar)
}

// TestInitialSupport_Cancelled ensures a cancelled context aborts the
// computation with the context's error.
func TestInitialSupport_Cancelled(t *testing.T) {
	edges, err := builder.Complete(30)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng, err := truss.NewEngine(mustIndex(t, 30, edges), edges, truss.WithContext(ctx))
	require.NoError(t, err)

	_, err = eng.InitialSupport()
	assert.ErrorIs(t, err, context.Canceled)
}
