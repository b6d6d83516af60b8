// SPDX-License-Identifier: MIT
// Package amg: greedy aggregation of the strength graph.

package amg

import "github.com/katalvlaran/lvlgrid/sparse"

// StandardAggregation partitions the rows of a strength matrix into
// aggregates — the future coarse unknowns. Two passes over ascending row
// order:
//
//	Pass 1 (seed):   a row with no aggregated strong neighbor founds a new
//	                 aggregate, absorbing itself and all its unaggregated
//	                 strong neighbors. A row with no strong neighbors at all
//	                 founds a singleton.
//	Pass 2 (attach): every remaining row joins the aggregate of its first
//	                 aggregated neighbor in column order. Such a neighbor
//	                 always exists: the row was left out of pass 1 precisely
//	                 because a neighbor was aggregated before it.
//
// The result is total — every row receives exactly one aggregate id in
// [0, numAgg) — and deterministic: ties break by ascending row index.
//
// Returns the per-row aggregate ids and the aggregate count, or
// ErrNilMatrix / ErrNotSquare.
// Complexity: O(nnz) time, O(Rows) memory.
func StandardAggregation(c *sparse.CSR) ([]int, int, error) {
	if c == nil {
		return nil, 0, ErrNilMatrix
	}
	if c.Rows != c.Cols {
		return nil, 0, ErrNotSquare
	}

	n := c.Rows
	agg := make([]int, n)
	for i := range agg {
		agg[i] = -1
	}

	// Pass 1: seed aggregates.
	numAgg := 0
	for i := 0; i < n; i++ {
		if agg[i] >= 0 {
			continue
		}
		blocked := false
		for k := c.RowPtr[i]; k < c.RowPtr[i+1]; k++ {
			if j := c.ColIdx[k]; j != i && agg[j] >= 0 {
				blocked = true

				break
			}
		}
		if blocked {
			continue
		}
		id := numAgg
		numAgg++
		agg[i] = id
		for k := c.RowPtr[i]; k < c.RowPtr[i+1]; k++ {
			if j := c.ColIdx[k]; j != i && agg[j] < 0 {
				agg[j] = id
			}
		}
	}

	// Pass 2: attach leftovers to the first aggregated neighbor.
	for i := 0; i < n; i++ {
		if agg[i] >= 0 {
			continue
		}
		for k := c.RowPtr[i]; k < c.RowPtr[i+1]; k++ {
			if j := c.ColIdx[k]; j != i && agg[j] >= 0 {
				agg[i] = agg[j]

				break
			}
		}
	}

	return agg, numAgg, nil
}
