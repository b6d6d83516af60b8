// SPDX-License-Identifier: MIT
// Package amg: tentative prolongator from aggregates and a candidate vector.

package amg

import (
	"math"

	"github.com/katalvlaran/lvlgrid/sparse"
)

// FitCandidates builds the tentative prolongator T (n×numAgg, exactly one
// entry per row) and the coarse candidate Bc (length numAgg) from an
// aggregate map and the fine-level near-nullspace candidate b:
//
//	column J of T carries b restricted to aggregate J, scaled to unit 2-norm,
//	Bc[J] = ‖b restricted to J‖₂, so that T·Bc reproduces b exactly.
//
// An aggregate whose restricted candidate has zero norm yields a zero column
// and Bc[J] = 0; the reproduction property still holds on those rows.
//
// Returns ErrBadAggregates when numAgg <= 0 or an id falls outside
// [0, numAgg), ErrDimensionMismatch when len(agg) != len(b), ErrBadCandidate
// when b contains non-finite values.
// Complexity: O(n) time and memory.
func FitCandidates(agg []int, numAgg int, b []float64) (*sparse.CSR, []float64, error) {
	n := len(agg)
	if n == 0 || len(b) != n {
		return nil, nil, ErrDimensionMismatch
	}
	if numAgg <= 0 {
		return nil, nil, ErrBadAggregates
	}

	// Stage 1: accumulate per-aggregate squared norms.
	bc := make([]float64, numAgg)
	for i, id := range agg {
		if id < 0 || id >= numAgg {
			return nil, nil, ErrBadAggregates
		}
		v := b[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, ErrBadCandidate
		}
		bc[id] += v * v
	}
	for j := range bc {
		bc[j] = math.Sqrt(bc[j])
	}

	// Stage 2: one normalized entry per row. Zero-norm aggregates emit an
	// explicit zero so the column structure stays one-entry-per-row.
	rowPtr := make([]int, n+1)
	colIdx := make([]int, n)
	values := make([]float64, n)
	for i, id := range agg {
		rowPtr[i+1] = i + 1
		colIdx[i] = id
		if bc[id] > 0 {
			values[i] = b[i] / bc[id]
		}
	}

	t := &sparse.CSR{Rows: n, Cols: numAgg, RowPtr: rowPtr, ColIdx: colIdx, Values: values}

	return t, bc, nil
}
