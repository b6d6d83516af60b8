// SPDX-License-Identifier: MIT
// Package amg: sentinel error set.
// Every algorithm in this package returns these sentinels and tests match
// them via errors.Is. Wrap with fmt.Errorf("ctx: %w", ErrX) at boundaries
// when context is essential. Panics are reserved for nonsensical parameters
// in option constructors (programmer error), never for data.

package amg

import "errors"

var (
	// ErrNilMatrix indicates that a nil operator was passed in.
	ErrNilMatrix = errors.New("amg: nil matrix")

	// ErrNotSquare signals that a square operator was required.
	ErrNotSquare = errors.New("amg: matrix is not square")

	// ErrDimensionMismatch indicates vector/operator size disagreement,
	// e.g. Solve with len(b) != n, or FitCandidates with len(agg) != len(b).
	ErrDimensionMismatch = errors.New("amg: dimension mismatch")

	// ErrBadTheta rejects a strength threshold that is NaN, ±Inf or negative.
	ErrBadTheta = errors.New("amg: theta must be finite and non-negative")

	// ErrBadDamping rejects a prolongator damping factor that is not finite
	// and positive.
	ErrBadDamping = errors.New("amg: damping must be finite and positive")

	// ErrBadSpectralRadius rejects a spectral radius estimate that is not
	// finite and positive (the damped step divides by it).
	ErrBadSpectralRadius = errors.New("amg: spectral radius must be finite and positive")

	// ErrBadRitzCount rejects a non-positive Arnoldi working-set size.
	ErrBadRitzCount = errors.New("amg: ritz vector count must be positive")

	// ErrBadSweeps rejects a non-positive relaxation sweep count.
	ErrBadSweeps = errors.New("amg: sweeps must be positive")

	// ErrBadCandidate indicates a near-nullspace candidate of the wrong
	// length or with non-finite entries.
	ErrBadCandidate = errors.New("amg: invalid near-nullspace candidate")

	// ErrBadAggregates indicates an aggregate map with ids outside
	// [0, numAgg) — FitCandidates cannot place such rows.
	ErrBadAggregates = errors.New("amg: invalid aggregate ids")

	// ErrZeroDiagonal signals a zero on the operator diagonal; D⁻¹-based
	// smoothing and spectral estimation are undefined there.
	ErrZeroDiagonal = errors.New("amg: zero diagonal entry")

	// ErrCoarseningStalled is returned by NewHierarchy when a coarsening
	// step fails to reduce the operator size: every row became a singleton
	// aggregate, so recursion would never terminate. No partial hierarchy
	// is returned.
	ErrCoarseningStalled = errors.New("amg: coarsening stalled")

	// ErrSingularCoarse is returned when the coarsest-level operator cannot
	// be LU-factorized (zero pivot under partial pivoting).
	ErrSingularCoarse = errors.New("amg: coarse operator is singular")

	// ErrEigenFailed signals that the Ritz-value eigensolve behind the
	// spectral radius estimate did not converge or produced no usable value.
	ErrEigenFailed = errors.New("amg: spectral radius estimate failed")

	// ErrNilMonitor indicates that SolveMonitored received a nil monitor.
	ErrNilMonitor = errors.New("amg: nil monitor")

	// ErrIterationLimit is returned by Solve when the default monitor hit
	// its iteration limit before reaching the tolerance. The approximate
	// solution is left in x; the caller decides whether that is fatal.
	ErrIterationLimit = errors.New("amg: iteration limit reached")
)
