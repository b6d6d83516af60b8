// SPDX-License-Identifier: MIT
// Package amg: the recursive V-cycle.

package amg

import "gonum.org/v1/gonum/floats"

// Apply runs one V-cycle on the finest level, refining x in place. With a
// zero initial x this is one application of the multigrid preconditioner;
// repeated calls with the running x iterate toward a⁻¹·b (Solve wraps
// exactly that loop with a convergence monitor).
//
// Errors:
//   - ErrDimensionMismatch when b or x does not match the operator.
//
// Complexity:
//   - Time O(Σ nnz) per cycle across levels, plus O(c²) for the dense
//     back-substitution on the coarsest level. No allocations.
func (h *Hierarchy) Apply(b, x []float64) error {
	if err := h.checkVectors(b, x); err != nil {
		return err
	}
	h.cycle(0, b, x)

	return nil
}

// cycle runs the V-cycle on level i. Vector shapes are fixed at setup, so
// the MulVec calls on hierarchy scratch cannot fail.
func (h *Hierarchy) cycle(i int, b, x []float64) {
	if i == len(h.levels)-1 {
		h.coarse.solve(b, x)

		return
	}
	lv, next := h.levels[i], h.levels[i+1]

	// Stage 1: presmooth the current guess.
	lv.smoother.Presmooth(b, x)

	// Stage 2: fine residual, res = b − a·x.
	_ = lv.a.MulVec(lv.res, x)
	floats.AddScaledTo(lv.res, b, -1, lv.res)

	// Stage 3: restrict the residual to the coarse level.
	_ = lv.r.MulVec(next.b, lv.res)

	// Stage 4: coarse-grid correction, always from a zero guess.
	clear(next.x)
	h.cycle(i+1, next.b, next.x)

	// Stage 5: interpolate the correction and apply it; res is free again
	// and carries the interpolated vector.
	_ = lv.p.MulVec(lv.res, next.x)
	floats.Add(x, lv.res)

	// Stage 6: postsmooth.
	lv.smoother.Postsmooth(b, x)
}

// checkVectors validates solve-vector lengths against the finest operator.
func (h *Hierarchy) checkVectors(b, x []float64) error {
	if n := h.levels[0].a.Rows; len(b) != n || len(x) != n {
		return ErrDimensionMismatch
	}

	return nil
}
