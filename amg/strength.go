// SPDX-License-Identifier: MIT
// Package amg: symmetric strength-of-connection filtering.

package amg

import (
	"math"

	"github.com/katalvlaran/lvlgrid/sparse"
)

// SymmetricStrength filters a to its strong connections: entry (i,j) with
// i != j survives iff
//
//	|a_ij| ≥ theta·√(|a_ii|·|a_jj|)
//
// and diagonal entries always survive. The comparison is evaluated in squared
// form, which avoids a square root per entry and is exact for the same set of
// survivors. For a symmetric input the output is symmetric, and its pattern
// is a subset of the input's.
//
// Returns ErrNilMatrix, ErrNotSquare or ErrBadTheta.
// Complexity: O(nnz) time and memory.
func SymmetricStrength(a *sparse.CSR, theta float64) (*sparse.CSR, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.Rows != a.Cols {
		return nil, ErrNotSquare
	}
	if math.IsNaN(theta) || math.IsInf(theta, 0) || theta < 0 {
		return nil, ErrBadTheta
	}

	// Stage 1: per-row diagonal magnitudes and the squared threshold.
	diag := a.Diagonal()
	absDiag := make([]float64, a.Rows)
	for i, d := range diag {
		absDiag[i] = math.Abs(d)
	}
	thetaSq := theta * theta

	keep := func(i, k int) bool {
		j := a.ColIdx[k]
		if j == i {
			return true
		}
		v := a.Values[k]

		return v*v >= thetaSq*absDiag[i]*absDiag[j]
	}

	// Stage 2: count survivors per row.
	rowPtr := make([]int, a.Rows+1)
	for i := 0; i < a.Rows; i++ {
		count := 0
		for k := a.RowPtr[i]; k < a.RowPtr[i+1]; k++ {
			if keep(i, k) {
				count++
			}
		}
		rowPtr[i+1] = rowPtr[i] + count
	}

	// Stage 3: fill. Source rows are sorted, so the subset stays canonical.
	colIdx := make([]int, rowPtr[a.Rows])
	values := make([]float64, rowPtr[a.Rows])
	out := 0
	for i := 0; i < a.Rows; i++ {
		for k := a.RowPtr[i]; k < a.RowPtr[i+1]; k++ {
			if keep(i, k) {
				colIdx[out] = a.ColIdx[k]
				values[out] = a.Values[k]
				out++
			}
		}
	}

	return &sparse.CSR{Rows: a.Rows, Cols: a.Cols, RowPtr: rowPtr, ColIdx: colIdx, Values: values}, nil
}
