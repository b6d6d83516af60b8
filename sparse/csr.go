// SPDX-License-Identifier: MIT
// Package sparse: CSR storage type, ingestion validation and accessors.

package sparse

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// CSR is a matrix in compressed sparse row form.
//
// Storage invariants (canonical form):
//   - len(RowPtr) == Rows+1, RowPtr[0] == 0, RowPtr monotone non-decreasing
//   - RowPtr[Rows] == len(ColIdx) == len(Values)
//   - column indices strictly ascending within each row, all in [0, Cols)
//
// The fields are exported for zero-copy construction by kernels in this
// package; external producers should go through NewCSR, which validates the
// invariants once so every downstream kernel can rely on them.
type CSR struct {
	Rows, Cols int

	RowPtr []int     // row i occupies ColIdx[RowPtr[i]:RowPtr[i+1]]
	ColIdx []int     // ascending within each row
	Values []float64 // parallel to ColIdx
}

// NewCSR builds a CSR from raw compressed storage after validating canonical
// form. The slices are adopted, not copied; the caller must not mutate them
// afterwards.
// Returns ErrBadShape, ErrBadStructure, ErrOutOfRange or ErrNaNInf.
// Complexity: O(nnz) time, O(1) extra memory.
func NewCSR(rows, cols int, rowPtr, colIdx []int, values []float64) (*CSR, error) {
	// Stage 1: shape and pointer-array agreement.
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if len(rowPtr) != rows+1 || rowPtr[0] != 0 {
		return nil, ErrBadStructure
	}
	nnz := rowPtr[rows]
	if nnz != len(colIdx) || nnz != len(values) {
		return nil, ErrBadStructure
	}

	// Stage 2: per-row structure and value checks.
	for i := 0; i < rows; i++ {
		if rowPtr[i+1] < rowPtr[i] {
			return nil, ErrBadStructure
		}
		prev := -1
		for k := rowPtr[i]; k < rowPtr[i+1]; k++ {
			j := colIdx[k]
			if j < 0 || j >= cols {
				return nil, ErrOutOfRange
			}
			if j <= prev { // enforces both sortedness and no duplicates
				return nil, ErrBadStructure
			}
			prev = j
			if math.IsNaN(values[k]) || math.IsInf(values[k], 0) {
				return nil, ErrNaNInf
			}
		}
	}

	return &CSR{Rows: rows, Cols: cols, RowPtr: rowPtr, ColIdx: colIdx, Values: values}, nil
}

// NNZ returns the number of stored entries (structural, explicit zeros count).
// Complexity: O(1).
func (m *CSR) NNZ() int { return len(m.Values) }

// Clone returns a deep copy of m.
// Complexity: O(nnz) time and memory.
func (m *CSR) Clone() *CSR {
	c := &CSR{
		Rows:   m.Rows,
		Cols:   m.Cols,
		RowPtr: make([]int, len(m.RowPtr)),
		ColIdx: make([]int, len(m.ColIdx)),
		Values: make([]float64, len(m.Values)),
	}
	copy(c.RowPtr, m.RowPtr)
	copy(c.ColIdx, m.ColIdx)
	copy(c.Values, m.Values)

	return c
}

// Diagonal extracts the main diagonal into a dense slice of length
// min(Rows, Cols). Positions without a stored entry yield 0.
// Complexity: O(nnz).
func (m *CSR) Diagonal() []float64 {
	n := min(m.Rows, m.Cols)
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		for k := m.RowPtr[i]; k < m.RowPtr[i+1]; k++ {
			if m.ColIdx[k] == i {
				d[i] = m.Values[k]

				break
			}
			if m.ColIdx[k] > i { // sorted row: the diagonal cannot appear later
				break
			}
		}
	}

	return d
}

// ScaleRows multiplies every entry of row i by d[i], in place.
// Returns ErrDimensionMismatch when len(d) != Rows.
// Complexity: O(nnz).
func (m *CSR) ScaleRows(d []float64) error {
	if len(d) != m.Rows {
		return ErrDimensionMismatch
	}
	for i := 0; i < m.Rows; i++ {
		di := d[i]
		for k := m.RowPtr[i]; k < m.RowPtr[i+1]; k++ {
			m.Values[k] *= di
		}
	}

	return nil
}

// ToDense expands m into a gonum *mat.Dense. Intended for small operators
// (direct coarse solves, test oracles), not for production-size matrices.
// Complexity: O(Rows×Cols) memory.
func (m *CSR) ToDense() *mat.Dense {
	d := mat.NewDense(m.Rows, m.Cols, nil)
	for i := 0; i < m.Rows; i++ {
		for k := m.RowPtr[i]; k < m.RowPtr[i+1]; k++ {
			d.Set(i, m.ColIdx[k], m.Values[k])
		}
	}

	return d
}
