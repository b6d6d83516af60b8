// SPDX-License-Identifier: MIT

// Package amg: functional configuration for hierarchy construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants, single source of truth),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces derived invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob changes hierarchy construction and is
//     covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error); data-dependent failures surface as errors from NewHierarchy.

package amg

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTheta is the strength-of-connection threshold: entry (i,j)
	// survives filtering iff |a_ij| ≥ θ·√(|a_ii|·|a_jj|). Small and positive,
	// so vanishing couplings drop out while anything substantial stays.
	DefaultTheta = 0.01

	// DefaultMaxCoarseSize is the row count at or below which coarsening
	// stops and the operator is handed to the dense direct solver.
	DefaultMaxCoarseSize = 100

	// DefaultDamping is the prolongator smoothing weight: P = (I − ω·D⁻¹A)·T
	// with ω = damping/ρ(D⁻¹A). 4/3 is the classical choice, optimal for the
	// model Poisson spectrum. The same ω drives the default Jacobi smoother.
	DefaultDamping = 4.0 / 3.0

	// DefaultRitzVectors is the Arnoldi working-set size used by the
	// spectral radius estimate during setup.
	DefaultRitzVectors = 8

	// DefaultSweeps is the relaxation sweep count applied by smoothers on
	// each presmooth and postsmooth call.
	DefaultSweeps = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThetaInvalid     = "amg: WithTheta: theta must be finite and non-negative"
	panicMaxCoarseInvalid = "amg: WithMaxCoarseSize: size must be > 0"
	panicDampingInvalid   = "amg: WithDamping: damping must be finite and > 0"
	panicRitzInvalid      = "amg: WithRitzVectors: count must be > 0"
	panicSweepsInvalid    = "amg: WithSweeps: sweeps must be > 0"
	panicCandidateEmpty   = "amg: WithCandidate: candidate must be non-empty"
	panicSmootherNil      = "amg: WithSmoother: factory must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; NewHierarchy accepts
// `...Option` and resolves them via gatherOptions.
type Options struct {
	theta         float64         // DefaultTheta
	maxCoarseSize int             // DefaultMaxCoarseSize
	damping       float64         // DefaultDamping
	ritzVectors   int             // DefaultRitzVectors
	sweeps        int             // DefaultSweeps
	candidate     []float64       // nil ⇒ the constant vector ones(n)
	smoother      SmootherFactory // nil ⇒ NewJacobi (resolved in finalize)
}

// ---------- Constructors (WithX) ----------

// WithTheta sets the strength-of-connection threshold θ.
//
// Behavior highlights:
//   - θ = 0 keeps the full sparsity pattern (every coupling is strong).
//   - Larger θ prunes more aggressively, giving smaller, sparser coarse
//     operators at the price of slower convergence.
//
// Errors:
//   - Panics with a stable message when theta is NaN, ±Inf or negative.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithTheta(theta float64) Option {
	if math.IsNaN(theta) || math.IsInf(theta, 0) || theta < 0 {
		panic(panicThetaInvalid)
	}

	return func(o *Options) { o.theta = theta }
}

// WithMaxCoarseSize sets the row count at or below which coarsening stops and
// the direct solver takes over. Operators already at or below this size yield
// a single-level hierarchy whose Apply is the direct solve.
//
// Errors:
//   - Panics with a stable message when size <= 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithMaxCoarseSize(size int) Option {
	if size <= 0 {
		panic(panicMaxCoarseInvalid)
	}

	return func(o *Options) { o.maxCoarseSize = size }
}

// WithDamping sets the prolongator smoothing weight numerator; the applied
// step is ω = damping/ρ(D⁻¹A) per level. The default Jacobi smoother relaxes
// with the same ω.
//
// Errors:
//   - Panics with a stable message when damping is NaN, ±Inf or <= 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithDamping(damping float64) Option {
	if math.IsNaN(damping) || math.IsInf(damping, 0) || damping <= 0 {
		panic(panicDampingInvalid)
	}

	return func(o *Options) { o.damping = damping }
}

// WithRitzVectors sets the Arnoldi working-set size for the per-level
// spectral radius estimate. The effective size is capped at the level's row
// count.
//
// Errors:
//   - Panics with a stable message when count <= 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithRitzVectors(count int) Option {
	if count <= 0 {
		panic(panicRitzInvalid)
	}

	return func(o *Options) { o.ritzVectors = count }
}

// WithSweeps sets the relaxation sweep count per presmooth/postsmooth call.
//
// Errors:
//   - Panics with a stable message when sweeps <= 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithSweeps(sweeps int) Option {
	if sweeps <= 0 {
		panic(panicSweepsInvalid)
	}

	return func(o *Options) { o.sweeps = sweeps }
}

// WithCandidate supplies the near-nullspace candidate vector B that the
// tentative prolongator must reproduce exactly. The default, ones(n), suits
// scalar elliptic problems; systems with a different smooth error shape pass
// it here. The slice is copied.
//
// Behavior highlights:
//   - Length must equal the fine operator's row count; that is data-dependent
//     and therefore checked by NewHierarchy (ErrBadCandidate), not here.
//
// Errors:
//   - Panics with a stable message when b is empty.
//
// Complexity:
//   - Time O(n) for the copy, Space O(n).
func WithCandidate(b []float64) Option {
	if len(b) == 0 {
		panic(panicCandidateEmpty)
	}
	c := make([]float64, len(b))
	copy(c, b)

	return func(o *Options) { o.candidate = c }
}

// WithSmoother installs the relaxation factory used on every level above the
// coarsest. The factory receives the level operator, the damped-Jacobi weight
// ω = damping/ρ(D⁻¹A) for that level, and the sweep count.
//
// Errors:
//   - Panics with a stable message when f is nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithSmoother(f SmootherFactory) Option {
	if f == nil {
		panic(panicSmootherNil)
	}

	return func(o *Options) { o.smoother = f }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided setters on top of the documented
// defaults and finalizes derived invariants. Last-writer-wins.
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		theta:         DefaultTheta,
		maxCoarseSize: DefaultMaxCoarseSize,
		damping:       DefaultDamping,
		ritzVectors:   DefaultRitzVectors,
		sweeps:        DefaultSweeps,
	}
	for _, set := range user {
		set(&o)
	}

	finalizeOptions(&o)

	return o
}

// finalizeOptions resolves derived state in exactly one place: the relaxation
// factory defaults to damped Jacobi.
func finalizeOptions(o *Options) {
	if o.smoother == nil {
		o.smoother = NewJacobi
	}
}
