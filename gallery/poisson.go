// Package gallery: Dirichlet Poisson stencils in one and two dimensions.

package gallery

import "github.com/katalvlaran/lvlgrid/sparse"

// Poisson1D returns the n×n operator tridiag(-1, 2, -1): the second-difference
// discretization of -u'' on n interior points of a line with zero boundary.
// Returns ErrBadDimension when n <= 0.
// Complexity: O(n) time and memory.
func Poisson1D(n int) (*sparse.CSR, error) {
	if n <= 0 {
		return nil, ErrBadDimension
	}

	rowPtr := make([]int, n+1)
	colIdx := make([]int, 0, 3*n)
	values := make([]float64, 0, 3*n)
	for i := 0; i < n; i++ {
		if i > 0 {
			colIdx = append(colIdx, i-1)
			values = append(values, -1)
		}
		colIdx = append(colIdx, i)
		values = append(values, 2)
		if i < n-1 {
			colIdx = append(colIdx, i+1)
			values = append(values, -1)
		}
		rowPtr[i+1] = len(colIdx)
	}

	return &sparse.CSR{Rows: n, Cols: n, RowPtr: rowPtr, ColIdx: colIdx, Values: values}, nil
}

// Poisson2D returns the five-point stencil for -∆u on an nx×ny grid with zero
// Dirichlet boundary: 4 on the diagonal, -1 towards each in-grid neighbor.
// Unknowns are numbered row-major, cell (x, y) ↦ y*nx + x.
// Returns ErrBadDimension when nx <= 0 or ny <= 0.
// Complexity: O(nx×ny) time and memory.
func Poisson2D(nx, ny int) (*sparse.CSR, error) {
	if nx <= 0 || ny <= 0 {
		return nil, ErrBadDimension
	}

	n := nx * ny
	coo, err := sparse.NewCOO(n, n)
	if err != nil {
		return nil, err
	}
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			i := y*nx + x
			if y > 0 {
				_ = coo.Append(i, i-nx, -1) // south
			}
			if x > 0 {
				_ = coo.Append(i, i-1, -1) // west
			}
			_ = coo.Append(i, i, 4)
			if x < nx-1 {
				_ = coo.Append(i, i+1, -1) // east
			}
			if y < ny-1 {
				_ = coo.Append(i, i+nx, -1) // north
			}
		}
	}

	return coo.ToCSR(), nil
}
