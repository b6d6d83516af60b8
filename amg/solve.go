// SPDX-License-Identifier: MIT
// Package amg: the outer fixed-point iteration.

package amg

import "gonum.org/v1/gonum/floats"

// Solve iterates V-cycles on a·x = b until the default stopping criteria
// are met, refining x in place from its initial value. It returns the number
// of outer iterations performed.
//
// Errors:
//   - ErrDimensionMismatch when b or x does not match the operator;
//   - ErrIterationLimit when DefaultIterationLimit iterations did not reach
//     the default relative tolerance (x still holds the best iterate).
//
// Complexity:
//   - Time O(iterations · Σ nnz). No allocations beyond the monitor.
func (h *Hierarchy) Solve(b, x []float64) (int, error) {
	m := NewMonitor(b, DefaultCriteria())
	if err := h.SolveMonitored(b, x, m); err != nil {
		return m.Iterations(), err
	}
	if !m.Converged() {
		return m.Iterations(), ErrIterationLimit
	}

	return m.Iterations(), nil
}

// SolveMonitored iterates V-cycles on a·x = b under the caller's stopping
// policy, refining x in place. The monitor sees the true residual b − a·x
// before every cycle, including the initial one, and fully owns termination:
// running out of iterations is not an error here, it is the monitor's call.
//
// The finest level's scratch serves as residual and update storage, so the
// hierarchy must not be shared between goroutines.
//
// Errors:
//   - ErrNilMonitor when m is nil;
//   - ErrDimensionMismatch when b or x does not match the operator.
//
// Complexity:
//   - Time O(iterations · Σ nnz). No allocations.
func (h *Hierarchy) SolveMonitored(b, x []float64, m Monitor) error {
	if m == nil {
		return ErrNilMonitor
	}
	if err := h.checkVectors(b, x); err != nil {
		return err
	}

	// Level-0 scratch is unused by cycle, which works on its arguments and
	// on lv.res; b and x here are the caller's slices, so r and upd are free.
	lv := h.levels[0]
	r, upd := lv.b, lv.x

	_ = lv.a.MulVec(r, x)
	floats.AddScaledTo(r, b, -1, r) // r = b − a·x

	for !m.Finished(r) {
		clear(upd)
		h.cycle(0, r, upd)
		floats.Add(x, upd)

		_ = lv.a.MulVec(r, x)
		floats.AddScaledTo(r, b, -1, r)
		m.Next()
	}

	return nil
}
