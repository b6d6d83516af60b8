// SPDX-License-Identifier: MIT
// Package amg: prolongator smoothing.

package amg

import (
	"math"

	"github.com/katalvlaran/lvlgrid/sparse"
)

// SmoothProlongator applies one damped-Jacobi step to a tentative
// prolongator:
//
//	P = (I − (damping/rho)·D⁻¹·A) · T
//
// where D is the diagonal of a and rho an estimate of ρ(D⁻¹A). Smoothing
// spreads each aggregate's column into its neighborhood, which is what turns
// piecewise-constant interpolation into the smoothed-aggregation kind.
//
// Returns ErrNilMatrix, ErrNotSquare, ErrDimensionMismatch (a.Cols != t.Rows),
// ErrBadDamping, ErrBadSpectralRadius or ErrZeroDiagonal.
// Complexity: one sparse product plus one elementwise combine.
func SmoothProlongator(a, t *sparse.CSR, damping, rho float64) (*sparse.CSR, error) {
	if a == nil || t == nil {
		return nil, ErrNilMatrix
	}
	if a.Rows != a.Cols {
		return nil, ErrNotSquare
	}
	if a.Cols != t.Rows {
		return nil, ErrDimensionMismatch
	}
	if math.IsNaN(damping) || math.IsInf(damping, 0) || damping <= 0 {
		return nil, ErrBadDamping
	}
	if math.IsNaN(rho) || math.IsInf(rho, 0) || rho <= 0 {
		return nil, ErrBadSpectralRadius
	}

	dinv, err := invertDiagonal(a)
	if err != nil {
		return nil, err
	}

	at, err := a.Mul(t)
	if err != nil {
		return nil, err
	}
	omega := damping / rho
	for i := range dinv {
		dinv[i] *= omega
	}
	_ = at.ScaleRows(dinv) // lengths agree by construction

	return sparse.Add(1, t, -1, at)
}
