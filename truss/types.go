// Package truss provides tunable options, sentinel errors, and the result
// type for k-truss computation over a csr.Index.
package truss

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/ktruss/csr"
)

// Sentinel errors for engine construction and peeling.
var (
	// ErrNilIndex is returned if a nil adjacency index is passed.
	ErrNilIndex = errors.New("truss: adjacency index is nil")

	// ErrEdgeMismatch is returned when the edge list handed to NewEngine is
	// not the exact list the index was built from.
	ErrEdgeMismatch = errors.New("truss: edge list does not match index")

	// ErrInvalidK is returned by Peel for k < 2; the k-2 threshold would be
	// negative and no edge could ever fail it meaningfully.
	ErrInvalidK = errors.New("truss: k must be at least 2")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("truss: invalid option supplied")
)

// Option configures engine behavior via functional arguments. An invalid
// Option (e.g. non-positive worker count) is recorded internally and
// surfaced as ErrOptionViolation by NewEngine.
type Option func(*Options)

// Options holds parameters for support computation and peeling.
type Options struct {
	// Ctx allows cancellation and deadlines for long computations.
	Ctx context.Context

	// Workers is the number of goroutines used for the parallel-eligible
	// steps (initial support, per-round propagation). Defaults to
	// runtime.GOMAXPROCS(0). Workers == 1 runs fully sequentially; the
	// result is identical either way.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Workers = runtime.GOMAXPROCS(0)
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the goroutine count for parallel steps.
//
//	w ≥ 1: use w workers
//	w < 1: invalid option → ErrOptionViolation
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, w)
			return
		}
		o.Workers = w
	}
}

// Result holds the outcome of one Peel run.
//
// Edges and Support are aligned: Support[i] is the final triangle count of
// Edges[i], every value ≥ k-2. Edges appear in their original input
// enumeration order, so the result is deterministic for a given graph.
type Result struct {
	// Edges are the surviving edges of the k-truss.
	Edges []csr.Edge

	// Support[i] counts the triangles of Edges[i] among surviving edges.
	Support []int

	// Rounds is the number of peeling rounds until the fixed point.
	Rounds int

	// Removed is the number of edges peeled away.
	Removed int
}
