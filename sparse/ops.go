// SPDX-License-Identifier: MIT
// Package sparse: the kernel set — sparse matrix-vector and matrix-matrix
// products, transpose and elementwise combination. All outputs are canonical.

package sparse

import "sort"

// MulVec computes dst = m·x. dst and x must not alias.
// Rows are independent, so the product parallelizes over row ranges once the
// stored-entry count crosses the work threshold.
// Returns ErrNilMatrix or ErrDimensionMismatch.
// Complexity: O(nnz) time.
func (m *CSR) MulVec(dst, x []float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if len(x) != m.Cols || len(dst) != m.Rows {
		return ErrDimensionMismatch
	}
	parallelRows(m.Rows, m.NNZ(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			var sum float64
			for k := m.RowPtr[i]; k < m.RowPtr[i+1]; k++ {
				sum += m.Values[k] * x[m.ColIdx[k]]
			}
			dst[i] = sum
		}
	})

	return nil
}

// Mul computes C = m·b with Gustavson's algorithm: a symbolic pass counts the
// entries of every output row, a numeric pass fills them. Both passes run
// row-parallel with per-range scratch; output rows are sorted, so the result
// is canonical and deterministic.
// Returns ErrNilMatrix or ErrDimensionMismatch.
// Complexity: O(sum over a_ik of nnz(b row k)) time, O(b.Cols) scratch per range.
func (m *CSR) Mul(b *CSR) (*CSR, error) {
	if m == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if m.Cols != b.Rows {
		return nil, ErrDimensionMismatch
	}

	// Stage 1: symbolic — nnz of each output row via a versioned marker.
	rowPtr := make([]int, m.Rows+1)
	parallelRows(m.Rows, m.NNZ()+b.NNZ(), func(lo, hi int) {
		marker := newMarker(b.Cols)
		for i := lo; i < hi; i++ {
			count := 0
			for k := m.RowPtr[i]; k < m.RowPtr[i+1]; k++ {
				bi := m.ColIdx[k]
				for t := b.RowPtr[bi]; t < b.RowPtr[bi+1]; t++ {
					if marker.visit(b.ColIdx[t], i) {
						count++
					}
				}
			}
			rowPtr[i+1] = count
		}
	})
	for i := 0; i < m.Rows; i++ {
		rowPtr[i+1] += rowPtr[i]
	}

	// Stage 2: numeric — accumulate each output row densely, then emit sorted.
	colIdx := make([]int, rowPtr[m.Rows])
	values := make([]float64, rowPtr[m.Rows])
	parallelRows(m.Rows, rowPtr[m.Rows]+m.NNZ(), func(lo, hi int) {
		marker := newMarker(b.Cols)
		accum := make([]float64, b.Cols)
		cols := make([]int, 0, 64)
		for i := lo; i < hi; i++ {
			cols = cols[:0]
			for k := m.RowPtr[i]; k < m.RowPtr[i+1]; k++ {
				bi, av := m.ColIdx[k], m.Values[k]
				for t := b.RowPtr[bi]; t < b.RowPtr[bi+1]; t++ {
					j := b.ColIdx[t]
					if marker.visit(j, i) {
						cols = append(cols, j)
						accum[j] = av * b.Values[t]
					} else {
						accum[j] += av * b.Values[t]
					}
				}
			}
			sort.Ints(cols)
			base := rowPtr[i]
			for t, j := range cols {
				colIdx[base+t] = j
				values[base+t] = accum[j]
			}
		}
	})

	return &CSR{Rows: m.Rows, Cols: b.Cols, RowPtr: rowPtr, ColIdx: colIdx, Values: values}, nil
}

// Transpose returns mᵀ by counting sort over columns. Scanning rows in order
// emits ascending row indices per output row, so the result is canonical.
// Complexity: O(nnz + Cols) time and O(nnz) memory.
func (m *CSR) Transpose() *CSR {
	rowPtr := make([]int, m.Cols+1)
	for _, j := range m.ColIdx {
		rowPtr[j+1]++
	}
	for j := 0; j < m.Cols; j++ {
		rowPtr[j+1] += rowPtr[j]
	}
	colIdx := make([]int, len(m.ColIdx))
	values := make([]float64, len(m.Values))
	next := make([]int, m.Cols)
	copy(next, rowPtr[:m.Cols])
	for i := 0; i < m.Rows; i++ {
		for k := m.RowPtr[i]; k < m.RowPtr[i+1]; k++ {
			j := m.ColIdx[k]
			p := next[j]
			colIdx[p] = i
			values[p] = m.Values[k]
			next[j]++
		}
	}

	return &CSR{Rows: m.Cols, Cols: m.Rows, RowPtr: rowPtr, ColIdx: colIdx, Values: values}
}

// Add computes alpha·a + beta·b over the union of both sparsity patterns.
// Entries that cancel numerically are kept as explicit zeros; the pattern is
// the union regardless of values.
// Returns ErrNilMatrix or ErrDimensionMismatch.
// Complexity: O(nnz(a) + nnz(b)) time and memory.
func Add(alpha float64, a *CSR, beta float64, b *CSR) (*CSR, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return nil, ErrDimensionMismatch
	}

	// Stage 1: count the union pattern per row (two-pointer merge).
	rowPtr := make([]int, a.Rows+1)
	for i := 0; i < a.Rows; i++ {
		ka, kb := a.RowPtr[i], b.RowPtr[i]
		count := 0
		for ka < a.RowPtr[i+1] && kb < b.RowPtr[i+1] {
			switch {
			case a.ColIdx[ka] < b.ColIdx[kb]:
				ka++
			case a.ColIdx[ka] > b.ColIdx[kb]:
				kb++
			default:
				ka++
				kb++
			}
			count++
		}
		count += (a.RowPtr[i+1] - ka) + (b.RowPtr[i+1] - kb)
		rowPtr[i+1] = rowPtr[i] + count
	}

	// Stage 2: merge values.
	colIdx := make([]int, rowPtr[a.Rows])
	values := make([]float64, rowPtr[a.Rows])
	out := 0
	for i := 0; i < a.Rows; i++ {
		ka, kb := a.RowPtr[i], b.RowPtr[i]
		for ka < a.RowPtr[i+1] && kb < b.RowPtr[i+1] {
			switch {
			case a.ColIdx[ka] < b.ColIdx[kb]:
				colIdx[out] = a.ColIdx[ka]
				values[out] = alpha * a.Values[ka]
				ka++
			case a.ColIdx[ka] > b.ColIdx[kb]:
				colIdx[out] = b.ColIdx[kb]
				values[out] = beta * b.Values[kb]
				kb++
			default:
				colIdx[out] = a.ColIdx[ka]
				values[out] = alpha*a.Values[ka] + beta*b.Values[kb]
				ka++
				kb++
			}
			out++
		}
		for ; ka < a.RowPtr[i+1]; ka++ {
			colIdx[out] = a.ColIdx[ka]
			values[out] = alpha * a.Values[ka]
			out++
		}
		for ; kb < b.RowPtr[i+1]; kb++ {
			colIdx[out] = b.ColIdx[kb]
			values[out] = beta * b.Values[kb]
			out++
		}
	}

	return &CSR{Rows: a.Rows, Cols: a.Cols, RowPtr: rowPtr, ColIdx: colIdx, Values: values}, nil
}

// marker is a versioned visited-set over [0, n): stamping with a fresh
// version invalidates all previous marks without clearing, which keeps the
// Gustavson passes O(flops) instead of O(rows×cols).
type marker struct {
	stamp []int
}

func newMarker(n int) *marker {
	s := make([]int, n)
	for i := range s {
		s[i] = -1
	}

	return &marker{stamp: s}
}

// visit marks slot j with version v and reports whether it was unmarked.
func (m *marker) visit(j, v int) bool {
	if m.stamp[j] == v {
		return false
	}
	m.stamp[j] = v

	return true
}
