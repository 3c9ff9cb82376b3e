package truss

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/ktruss/csr"
)

// Peel runs the iterative peeling loop at threshold k-2 and returns the
// surviving edge set with final supports.
//
// Peel works on a private copy of the cached initial support, so the
// engine can peel repeatedly at different k. Rounds are barrier-separated
// (mark → propagate → collect, see doc.go); within a round the removal
// propagation runs parallel across the work set with atomic decrements,
// and the surviving set is identical for any worker count.
//
// Returns ErrInvalidK for k < 2. A graph with zero edges yields an empty
// result with no error.
func (e *Engine) Peel(k int) (*Result, error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	if err := e.ensureSupport(); err != nil {
		return nil, err
	}

	threshold := int32(k - 2)
	nEdges := len(e.edges)

	support := make([]int32, nEdges)
	copy(support, e.base)

	// removedAt[i] == 0 while edge i is alive; set to the round number on
	// removal, exactly once, never reset. queued guards one-time work-set
	// membership (a removed edge can never re-enter).
	removedAt := make([]int32, nEdges)
	queued := make([]bool, nEdges)

	var frontier []int32
	for i := 0; i < nEdges; i++ {
		if support[i] < threshold {
			queued[i] = true
			frontier = append(frontier, int32(i))
		}
	}

	var round int32
	removed := 0
	for len(frontier) > 0 {
		round++
		removed += len(frontier)

		// Phase A (mark): stamp every work-set edge removed at this round.
		// All phase-B reads of removedAt see one consistent snapshot.
		for _, id := range frontier {
			removedAt[id] = round
		}

		// Phase B (propagate): parallel over the removed edges; support
		// decrements are atomic, liveness is only read.
		touched := make([][]int32, len(chunkBounds(len(frontier), e.opts.Workers)))
		err := parallelFor(e.opts.Ctx, len(frontier), e.opts.Workers,
			func(ctx context.Context, chunk, lo, hi int) error {
				var local []int32
				for fi := lo; fi < hi; fi++ {
					// cancellation check (once per removed edge)
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
					local = e.propagate(frontier[fi], round, removedAt, support, local)
				}
				touched[chunk] = local
				return nil
			})
		if err != nil {
			return nil, err
		}

		// Phase C (collect): re-check only the edges that lost a triangle.
		var next []int32
		for _, local := range touched {
			for _, t := range local {
				if removedAt[t] == 0 && !queued[t] && support[t] < threshold {
					queued[t] = true
					next = append(next, t)
				}
			}
		}
		frontier = next
	}

	// Survivors, in input enumeration order.
	resEdges := make([]csr.Edge, 0, nEdges-removed)
	resSupport := make([]int, 0, nEdges-removed)
	for i := 0; i < nEdges; i++ {
		if removedAt[i] == 0 {
			resEdges = append(resEdges, e.edges[i])
			resSupport = append(resSupport, int(support[i]))
		}
	}

	return &Result{
		Edges:   resEdges,
		Support: resSupport,
		Rounds:  int(round),
		Removed: removed,
	}, nil
}

// propagate walks the common neighbors w of the endpoints of the removed
// edge id. For every triangle {u,v,w} that was intact at round start it
// decrements the surviving partner edges {u,w} and {v,w} once, and
// records them in touched for the phase-C threshold re-check.
//
// When several edges of one triangle were removed in the same round, only
// the smallest-id one performs the triangle's decrements; partners removed
// in earlier rounds mean the triangle is already gone and contributes
// nothing.
func (e *Engine) propagate(id, round int32, removedAt, support []int32, touched []int32) []int32 {
	ed := e.edges[id]
	nu, iu, _ := e.idx.IncidentEdges(ed.U)
	nv, iv, _ := e.idx.IncidentEdges(ed.V)

	i, j := 0, 0
	for i < len(nu) && j < len(nv) {
		if nu[i] == ed.V {
			i++
			continue
		}
		if nv[j] == ed.U {
			j++
			continue
		}
		switch {
		case nu[i] < nv[j]:
			i++
		case nu[i] > nv[j]:
			j++
		default:
			// common neighbor w: partner edges e1={u,w}, e2={v,w}
			e1, e2 := int32(iu[i]), int32(iv[j])
			r1, r2 := removedAt[e1], removedAt[e2]
			intact := (r1 == 0 || r1 == round) && (r2 == 0 || r2 == round)
			owner := !(r1 == round && e1 < id) && !(r2 == round && e2 < id)
			if intact && owner {
				if r1 == 0 {
					atomic.AddInt32(&support[e1], -1)
					touched = append(touched, e1)
				}
				if r2 == 0 {
					atomic.AddInt32(&support[e2], -1)
					touched = append(touched, e2)
				}
			}
			i++
			j++
		}
	}

	return touched
}
