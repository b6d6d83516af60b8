// SPDX-License-Identifier: MIT
// Package sparse: greedy vertex coloring of a matrix adjacency structure.

package sparse

import "github.com/bits-and-blooms/bitset"

// GreedyColoring assigns a color to every row such that no two rows joined by
// a stored off-diagonal entry share one, using first-fit over ascending row
// order (smallest admissible color wins). It returns the per-row colors and
// the number of colors used.
//
// The matrix is read as an adjacency structure and must be square and
// structurally symmetric — true for the Galerkin operators and strength
// graphs this library produces. Rows within one color class have no stored
// coupling, so they can be relaxed in parallel.
// Returns ErrNilMatrix or ErrNonSquare.
// Complexity: O(nnz) time, O(Rows) memory.
func (m *CSR) GreedyColoring() ([]int, int, error) {
	if m == nil {
		return nil, 0, ErrNilMatrix
	}
	if m.Rows != m.Cols {
		return nil, 0, ErrNonSquare
	}

	colors := make([]int, m.Rows)
	for i := range colors {
		colors[i] = -1
	}
	// Colors never exceed maxdeg+1 <= Rows, so the mask always has a clear bit.
	forbidden := bitset.New(uint(m.Rows) + 1)

	numColors := 0
	for i := 0; i < m.Rows; i++ {
		for k := m.RowPtr[i]; k < m.RowPtr[i+1]; k++ {
			if j := m.ColIdx[k]; j != i && colors[j] >= 0 {
				forbidden.Set(uint(colors[j]))
			}
		}
		c, _ := forbidden.NextClear(0)
		colors[i] = int(c)
		if int(c)+1 > numColors {
			numColors = int(c) + 1
		}
		// Unmark only what this row marked; keeps the sweep O(nnz) overall.
		for k := m.RowPtr[i]; k < m.RowPtr[i+1]; k++ {
			if j := m.ColIdx[k]; j != i && colors[j] >= 0 {
				forbidden.Clear(uint(colors[j]))
			}
		}
	}

	return colors, numColors, nil
}
