// SPDX-License-Identifier: MIT
// Package amg: relaxation smoothers — damped Jacobi, Gauss–Seidel and a
// vertex-colored parallel Gauss–Seidel.

package amg

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlgrid/sparse"
)

// Smoother damps the high-frequency error of an approximation in place.
// Presmooth runs before restriction, Postsmooth after the coarse correction;
// implementations whose sweeps have a direction reverse it between the two,
// which keeps the V-cycle symmetric on symmetric operators. b is read-only,
// x is updated in place.
type Smoother interface {
	Presmooth(b, x []float64)
	Postsmooth(b, x []float64)
}

// SmootherFactory builds the relaxation for one hierarchy level. a is that
// level's operator, omega the damped-Jacobi weight damping/ρ(D⁻¹A) computed
// during setup (factories that do not damp ignore it), sweeps the relaxation
// count per call. NewJacobi, NewGaussSeidel and NewMulticolorGaussSeidel all
// satisfy this signature; pass one via WithSmoother.
type SmootherFactory func(a *sparse.CSR, omega float64, sweeps int) (Smoother, error)

// minParallelClass is the color-class size below which multicolor sweeps
// stay serial.
const minParallelClass = 2048

// ---------------------------------------------------------------------------
// Damped Jacobi
// ---------------------------------------------------------------------------

type jacobi struct {
	a      *sparse.CSR
	dinv   []float64
	omega  float64
	sweeps int
	res    []float64
}

// NewJacobi builds the damped Jacobi smoother x ← x + ω·D⁻¹·(b − A·x).
// It is the default relaxation: with ω = damping/ρ(D⁻¹A) the sweep damps the
// upper half of the scaled spectrum, which is exactly what the coarse grid
// cannot correct.
// Returns ErrNilMatrix, ErrNotSquare, ErrBadDamping, ErrBadSweeps or
// ErrZeroDiagonal.
func NewJacobi(a *sparse.CSR, omega float64, sweeps int) (Smoother, error) {
	dinv, err := smootherChecks(a, sweeps)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(omega) || math.IsInf(omega, 0) || omega <= 0 {
		return nil, ErrBadDamping
	}

	return &jacobi{
		a:      a,
		dinv:   dinv,
		omega:  omega,
		sweeps: sweeps,
		res:    make([]float64, a.Rows),
	}, nil
}

func (s *jacobi) Presmooth(b, x []float64)  { s.sweep(b, x) }
func (s *jacobi) Postsmooth(b, x []float64) { s.sweep(b, x) }

func (s *jacobi) sweep(b, x []float64) {
	for n := 0; n < s.sweeps; n++ {
		_ = s.a.MulVec(s.res, x)
		floats.AddScaledTo(s.res, b, -1, s.res) // res = b − A·x
		for i, r := range s.res {
			x[i] += s.omega * s.dinv[i] * r
		}
	}
}

// ---------------------------------------------------------------------------
// Gauss–Seidel
// ---------------------------------------------------------------------------

type gaussSeidel struct {
	a      *sparse.CSR
	dinv   []float64
	sweeps int
}

// NewGaussSeidel builds the classic sequential relaxation: forward sweeps on
// Presmooth, backward sweeps on Postsmooth. It converges faster per sweep
// than Jacobi and needs no damping weight (omega is ignored).
// Returns ErrNilMatrix, ErrNotSquare, ErrBadSweeps or ErrZeroDiagonal.
func NewGaussSeidel(a *sparse.CSR, _ float64, sweeps int) (Smoother, error) {
	dinv, err := smootherChecks(a, sweeps)
	if err != nil {
		return nil, err
	}

	return &gaussSeidel{a: a, dinv: dinv, sweeps: sweeps}, nil
}

func (s *gaussSeidel) Presmooth(b, x []float64) {
	for n := 0; n < s.sweeps; n++ {
		for i := 0; i < s.a.Rows; i++ {
			relaxRow(s.a, s.dinv, b, x, i)
		}
	}
}

func (s *gaussSeidel) Postsmooth(b, x []float64) {
	for n := 0; n < s.sweeps; n++ {
		for i := s.a.Rows - 1; i >= 0; i-- {
			relaxRow(s.a, s.dinv, b, x, i)
		}
	}
}

// relaxRow solves row i for x[i] with all other unknowns frozen:
// x[i] = (b[i] − Σ_{j≠i} a_ij·x[j]) / a_ii.
func relaxRow(a *sparse.CSR, dinv, b, x []float64, i int) {
	sigma := 0.0
	for k := a.RowPtr[i]; k < a.RowPtr[i+1]; k++ {
		if j := a.ColIdx[k]; j != i {
			sigma += a.Values[k] * x[j]
		}
	}
	x[i] = (b[i] - sigma) * dinv[i]
}

// ---------------------------------------------------------------------------
// Multicolor Gauss–Seidel
// ---------------------------------------------------------------------------

type multicolorGS struct {
	a       *sparse.CSR
	dinv    []float64
	sweeps  int
	classes [][]int // rows grouped by color, ascending inside each class
}

// NewMulticolorGaussSeidel builds a Gauss–Seidel variant ordered by a greedy
// vertex coloring of the operator structure. Rows of one color share no
// stored coupling, so each color class relaxes in parallel; classes are
// processed in color order on Presmooth and in reverse on Postsmooth. The
// iterate differs from sequential Gauss–Seidel (the update order differs)
// but smooths equally well, and the result is deterministic because row
// updates within a class are independent. omega is ignored.
// Returns ErrNilMatrix, ErrNotSquare, ErrBadSweeps, ErrZeroDiagonal, or the
// coloring's rejection of a structurally unusable operator.
func NewMulticolorGaussSeidel(a *sparse.CSR, _ float64, sweeps int) (Smoother, error) {
	dinv, err := smootherChecks(a, sweeps)
	if err != nil {
		return nil, err
	}
	colors, numColors, err := a.GreedyColoring()
	if err != nil {
		return nil, err
	}

	classes := make([][]int, numColors)
	for i, c := range colors {
		classes[c] = append(classes[c], i)
	}

	return &multicolorGS{a: a, dinv: dinv, sweeps: sweeps, classes: classes}, nil
}

func (s *multicolorGS) Presmooth(b, x []float64) {
	for n := 0; n < s.sweeps; n++ {
		for _, class := range s.classes {
			s.relaxClass(class, b, x)
		}
	}
}

func (s *multicolorGS) Postsmooth(b, x []float64) {
	for n := 0; n < s.sweeps; n++ {
		for c := len(s.classes) - 1; c >= 0; c-- {
			s.relaxClass(s.classes[c], b, x)
		}
	}
}

// relaxClass updates one color class. Same-color rows never read each
// other's unknown, so chunked goroutines race on nothing.
func (s *multicolorGS) relaxClass(class []int, b, x []float64) {
	procs := runtime.GOMAXPROCS(0)
	if len(class) < minParallelClass || procs <= 1 {
		for _, i := range class {
			relaxRow(s.a, s.dinv, b, x, i)
		}

		return
	}

	if procs > len(class) {
		procs = len(class)
	}
	chunk := (len(class) + procs - 1) / procs

	var g errgroup.Group
	g.SetLimit(procs)
	for lo := 0; lo < len(class); lo += chunk {
		part := class[lo:min(lo+chunk, len(class))]
		g.Go(func() error {
			for _, i := range part {
				relaxRow(s.a, s.dinv, b, x, i)
			}

			return nil
		})
	}
	_ = g.Wait() // row relaxation has no error paths
}

// smootherChecks validates the shared factory inputs and extracts D⁻¹.
func smootherChecks(a *sparse.CSR, sweeps int) ([]float64, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.Rows != a.Cols {
		return nil, ErrNotSquare
	}
	if sweeps <= 0 {
		return nil, ErrBadSweeps
	}

	return invertDiagonal(a)
}
