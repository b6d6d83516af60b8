// SPDX-License-Identifier: MIT
// Package amg: hierarchy construction, the setup phase of the solver.

package amg

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlgrid/sparse"
)

// level is one rung of the hierarchy. Level 0 holds the original operator;
// each coarser level holds the Galerkin product R·A·P of the level above it.
// Transfer operators live on the finer of the two levels they connect, so
// the coarsest level carries neither transfers nor a smoother.
type level struct {
	a        *sparse.CSR // operator on this level
	p        *sparse.CSR // prolongator from the next coarser level
	r        *sparse.CSR // restriction to the next coarser level, pᵀ
	agg      []int       // row → aggregate id behind p
	rho      float64     // spectral radius estimate of D⁻¹·a
	smoother Smoother    // pre- and postsmoothing relaxation

	// Cycle scratch, sized once at setup so that Apply never allocates.
	b   []float64
	x   []float64
	res []float64
}

// coarseSolver is the dense LU backstop at the bottom of the hierarchy.
type coarseSolver struct {
	n  int
	lu mat.LU
}

// newCoarseSolver factorizes the coarsest operator once. Exactly singular
// operators are rejected here so that cycling never meets a zero pivot.
func newCoarseSolver(a *sparse.CSR) (*coarseSolver, error) {
	s := &coarseSolver{n: a.Rows}
	s.lu.Factorize(a.ToDense())
	if det, sign := s.lu.LogDet(); sign == 0 || math.IsInf(det, -1) {
		return nil, ErrSingularCoarse
	}

	return s, nil
}

// solve overwrites x with a⁻¹·b using the stored factorization. The vector
// headers wrap the caller's slices, so no data is copied.
func (s *coarseSolver) solve(b, x []float64) {
	rhs := mat.NewVecDense(s.n, b)
	sol := mat.NewVecDense(s.n, x)
	// A Condition error flags ill conditioning on an already computed
	// solution; exact singularity was screened out at factorization time.
	_ = s.lu.SolveVecTo(sol, false, rhs)
}

// Hierarchy is a smoothed-aggregation multigrid solver: built once from a
// sparse operator, applied many times as a solver or preconditioner.
// Construction is deterministic. Apply and Solve reuse per-level scratch, so
// a Hierarchy must not be shared between goroutines without external locking.
type Hierarchy struct {
	levels []*level
	coarse *coarseSolver
}

// NewHierarchy builds the multigrid hierarchy for the square operator a.
//
// Setup repeats five steps until the operator fits the direct solver:
//  1. filter a to its strong connections (SymmetricStrength),
//  2. group strongly connected rows into aggregates (StandardAggregation),
//  3. fit the near-nullspace candidate over the aggregates (FitCandidates),
//  4. smooth the tentative prolongator (SmoothProlongator), with the damped
//     step ω = damping/ρ(D⁻¹A) and ρ estimated by SpectralRadius,
//  5. form the coarse operator by the Galerkin product Pᵀ·(A·P).
//
// Behavior highlights:
//   - An operator already at or below the coarse-size bound yields a
//     single-level hierarchy whose Apply is exactly the direct solve.
//   - Aggregation that fails to shrink the operator aborts setup with
//     ErrCoarseningStalled instead of looping forever.
//   - The candidate defaults to the constant vector, the near nullspace of
//     scalar elliptic operators; WithCandidate overrides it.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrBadCandidate on invalid input;
//   - ErrZeroDiagonal, ErrCoarseningStalled, ErrEigenFailed,
//     ErrBadSpectralRadius, ErrSingularCoarse on setup failure.
//
// Complexity:
//   - Time is dominated by the Galerkin triple products, O(Σ nnz·k) across
//     levels with k the mean row fill; the dense factorization adds O(c³)
//     for coarse size c. Space O(Σ nnz).
func NewHierarchy(a *sparse.CSR, opts ...Option) (*Hierarchy, error) {
	o := gatherOptions(opts...)

	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.Rows != a.Cols {
		return nil, ErrNotSquare
	}
	b := o.candidate
	if b == nil {
		b = make([]float64, a.Rows)
		for i := range b {
			b[i] = 1
		}
	}
	if len(b) != a.Rows {
		return nil, ErrBadCandidate
	}
	for _, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrBadCandidate
		}
	}

	// Stage 1: coarsen until the operator fits the direct solver. The
	// candidate is restricted alongside the operator, level by level.
	h := &Hierarchy{levels: []*level{{a: a.Clone()}}}
	for h.levels[len(h.levels)-1].a.Rows > o.maxCoarseSize {
		fine := h.levels[len(h.levels)-1]
		coarseA, coarseB, err := extend(fine, b, o)
		if err != nil {
			return nil, err
		}
		h.levels = append(h.levels, &level{a: coarseA})
		b = coarseB
	}

	// Stage 2: relaxation on every level above the coarsest, scratch on all.
	last := len(h.levels) - 1
	for i, lv := range h.levels {
		n := lv.a.Rows
		lv.b = make([]float64, n)
		lv.x = make([]float64, n)
		lv.res = make([]float64, n)
		if i == last {
			continue
		}
		sm, err := o.smoother(lv.a, o.damping/lv.rho, o.sweeps)
		if err != nil {
			return nil, err
		}
		lv.smoother = sm
	}

	// Stage 3: factorize the coarsest operator.
	cs, err := newCoarseSolver(h.levels[last].a)
	if err != nil {
		return nil, err
	}
	h.coarse = cs

	return h, nil
}

// extend coarsens by one level: it fills fine's transfer state (agg, rho,
// p, r) and returns the Galerkin coarse operator together with the
// restricted candidate.
func extend(fine *level, b []float64, o Options) (*sparse.CSR, []float64, error) {
	// Strong connections drive aggregation; weak ones only pollute it.
	c, err := SymmetricStrength(fine.a, o.theta)
	if err != nil {
		return nil, nil, err
	}

	agg, numAgg, err := StandardAggregation(c)
	if err != nil {
		return nil, nil, err
	}
	if numAgg == fine.a.Rows {
		// Every row became its own aggregate: the coarse operator would
		// repeat the fine one and the setup loop would never terminate.
		return nil, nil, ErrCoarseningStalled
	}

	rho, err := SpectralRadius(fine.a, o.ritzVectors)
	if err != nil {
		return nil, nil, err
	}

	t, coarseB, err := FitCandidates(agg, numAgg, b)
	if err != nil {
		return nil, nil, err
	}

	p, err := SmoothProlongator(fine.a, t, o.damping, rho)
	if err != nil {
		return nil, nil, err
	}
	r := p.Transpose()

	ap, err := fine.a.Mul(p)
	if err != nil {
		return nil, nil, err
	}
	coarseA, err := r.Mul(ap)
	if err != nil {
		return nil, nil, err
	}

	fine.agg, fine.rho, fine.p, fine.r = agg, rho, p, r

	return coarseA, coarseB, nil
}
