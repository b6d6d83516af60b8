// SPDX-License-Identifier: MIT
// Package sparse: COO (triplet) assembly buffer and conversion to CSR.

package sparse

import "math"

// COO accumulates matrix entries in arbitrary order for later conversion to
// canonical CSR. Duplicate coordinates are legal and are summed by ToCSR,
// which makes COO the natural target for stencil or finite-element assembly.
type COO struct {
	rows, cols int
	row, col   []int
	val        []float64
}

// NewCOO returns an empty triplet buffer for a rows×cols matrix.
// Returns ErrBadShape when rows<=0 or cols<=0.
func NewCOO(rows, cols int) (*COO, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &COO{rows: rows, cols: cols}, nil
}

// Append records the entry (i, j, v). Appending the same coordinate twice is
// allowed; ToCSR sums duplicates.
// Returns ErrOutOfRange for indices outside the shape, ErrNaNInf for
// non-finite values.
// Complexity: amortized O(1).
func (c *COO) Append(i, j int, v float64) error {
	if i < 0 || i >= c.rows || j < 0 || j >= c.cols {
		return ErrOutOfRange
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	c.row = append(c.row, i)
	c.col = append(c.col, j)
	c.val = append(c.val, v)

	return nil
}

// NNZ returns the number of recorded triplets (before duplicate merging).
func (c *COO) NNZ() int { return len(c.val) }

// ToCSR converts the buffer into canonical CSR: entries sorted row-major with
// ascending columns, duplicates merged by summation. The buffer itself is
// left untouched and may keep accumulating.
// Complexity: O(nnz + rows) time plus the per-row sort, O(nnz) memory.
func (c *COO) ToCSR() *CSR {
	// Stage 1: counting sort by row.
	rowPtr := make([]int, c.rows+1)
	for _, i := range c.row {
		rowPtr[i+1]++
	}
	for i := 0; i < c.rows; i++ {
		rowPtr[i+1] += rowPtr[i]
	}
	nnz := len(c.val)
	colIdx := make([]int, nnz)
	values := make([]float64, nnz)
	next := make([]int, c.rows)
	copy(next, rowPtr[:c.rows])
	for k, i := range c.row {
		p := next[i]
		colIdx[p] = c.col[k]
		values[p] = c.val[k]
		next[i]++
	}

	// Stage 2: sort each row by column, then merge duplicates in place.
	out := 0
	for i := 0; i < c.rows; i++ {
		lo, hi := rowPtr[i], rowPtr[i+1]
		sortRowEntries(colIdx[lo:hi], values[lo:hi])
		rowPtr[i] = out // repurpose rowPtr as the compacted offsets
		for k := lo; k < hi; k++ {
			if out > rowPtr[i] && colIdx[out-1] == colIdx[k] {
				values[out-1] += values[k]

				continue
			}
			colIdx[out] = colIdx[k]
			values[out] = values[k]
			out++
		}
	}
	rowPtr[c.rows] = out

	return &CSR{
		Rows:   c.rows,
		Cols:   c.cols,
		RowPtr: rowPtr,
		ColIdx: colIdx[:out],
		Values: values[:out],
	}
}

// sortRowEntries sorts one row's (column, value) pairs by column.
// Insertion sort: assembly rows hold a handful of entries.
func sortRowEntries(cols []int, vals []float64) {
	for k := 1; k < len(cols); k++ {
		cj, vj := cols[k], vals[k]
		t := k - 1
		for t >= 0 && cols[t] > cj {
			cols[t+1], vals[t+1] = cols[t], vals[t]
			t--
		}
		cols[t+1], vals[t+1] = cj, vj
	}
}
