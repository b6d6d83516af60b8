// SPDX-License-Identifier: MIT
// Package amg: spectral radius estimation for D⁻¹A via Arnoldi/Ritz values.

package amg

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlgrid/sparse"
)

// arnoldiBreakdownTol: a next-vector norm at or below this means the Krylov
// space became invariant; the Ritz values of the truncated block are exact.
const arnoldiBreakdownTol = 1e-12

// SpectralRadius estimates ρ(D⁻¹A), the largest eigenvalue modulus of the
// diagonally scaled operator, with k steps of the Arnoldi iteration (modified
// Gram–Schmidt) and an eigensolve of the resulting small Hessenberg matrix.
// k is capped at the operator size; when k reaches it, the estimate is exact.
//
// The start vector is the normalized constant vector, which keeps setup fully
// deterministic — rebuilding a hierarchy on the same operator reproduces the
// same estimate bit for bit.
//
// Returns ErrNilMatrix, ErrNotSquare, ErrBadRitzCount, ErrZeroDiagonal or
// ErrEigenFailed.
// Complexity: O(k·nnz + k²·n) time, O(k·n) memory.
func SpectralRadius(a *sparse.CSR, k int) (float64, error) {
	if a == nil {
		return 0, ErrNilMatrix
	}
	if a.Rows != a.Cols {
		return 0, ErrNotSquare
	}
	if k <= 0 {
		return 0, ErrBadRitzCount
	}

	dinv, err := invertDiagonal(a)
	if err != nil {
		return 0, err
	}

	return ritzRadius(a, dinv, min(k, a.Rows))
}

// invertDiagonal extracts 1/a_ii, rejecting zero entries.
func invertDiagonal(a *sparse.CSR) ([]float64, error) {
	d := a.Diagonal()
	for i, v := range d {
		if v == 0 {
			return nil, ErrZeroDiagonal
		}
		d[i] = 1 / v
	}

	return d, nil
}

// ritzRadius runs the Arnoldi recurrence on w ← D⁻¹·A·v and returns the
// largest Ritz-value modulus of the Hessenberg block.
func ritzRadius(a *sparse.CSR, dinv []float64, k int) (float64, error) {
	n := a.Rows

	// Stage 1: deterministic unit start vector.
	basis := make([][]float64, 1, k)
	basis[0] = make([]float64, n)
	s := 1 / math.Sqrt(float64(n))
	for i := range basis[0] {
		basis[0][i] = s
	}

	// Stage 2: Arnoldi with modified Gram–Schmidt. hess is k×k row-major;
	// only the leading m×m block is defined when the space closes early.
	hess := make([]float64, k*k)
	w := make([]float64, n)
	m := k
	for j := 0; j < k; j++ {
		_ = a.MulVec(w, basis[j])
		for i := range w {
			w[i] *= dinv[i]
		}
		for i := 0; i <= j; i++ {
			hij := floats.Dot(basis[i], w)
			hess[i*k+j] = hij
			floats.AddScaled(w, -hij, basis[i])
		}
		if j+1 == k {
			break
		}
		norm := floats.Norm(w, 2)
		if norm <= arnoldiBreakdownTol {
			m = j + 1

			break
		}
		hess[(j+1)*k+j] = norm
		next := make([]float64, n)
		floats.ScaleTo(next, 1/norm, w)
		basis = append(basis, next)
	}

	// Stage 3: eigenvalues of the m×m block; the spectral radius estimate is
	// the largest modulus.
	hm := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			hm.Set(i, j, hess[i*k+j])
		}
	}

	var eig mat.Eigen
	if ok := eig.Factorize(hm, mat.EigenNone); !ok {
		return 0, ErrEigenFailed
	}
	rho := 0.0
	for _, v := range eig.Values(nil) {
		if r := cmplx.Abs(v); r > rho {
			rho = r
		}
	}
	if rho <= 0 || math.IsNaN(rho) || math.IsInf(rho, 0) {
		return 0, ErrEigenFailed
	}

	return rho, nil
}
