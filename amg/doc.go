// SPDX-License-Identifier: MIT

// Package amg implements a smoothed-aggregation algebraic multigrid solver
// and preconditioner for sparse linear systems A·x = b with symmetric,
// positive-definite-like A.
//
// # Setup
//
// NewHierarchy builds a grid hierarchy from the operator alone — no mesh, no
// geometry. Each coarsening step:
//
//  1. filters A to its strong connections (SymmetricStrength),
//  2. partitions the strength graph into aggregates (StandardAggregation),
//  3. fits the near-nullspace candidate into a tentative prolongator
//     (FitCandidates),
//  4. improves it by one damped-Jacobi step, P = (I − ω·D⁻¹A)·T, with
//     ω = damping/ρ(D⁻¹A) and ρ estimated by an Arnoldi sweep
//     (SmoothProlongator, SpectralRadius),
//  5. forms the Galerkin coarse operator RAP with R = Pᵀ.
//
// Coarsening stops once an operator has at most MaxCoarseSize rows; that
// operator is LU-factorized (dense, partial pivoting) and solved exactly at
// the bottom of every cycle. A step that fails to shrink the operator aborts
// with ErrCoarseningStalled.
//
// # Solving
//
// Apply runs one V-cycle: presmooth, restrict the residual, recurse, add the
// interpolated correction back, postsmooth. Solve wraps Apply in the standard
// fixed-point iteration x ← x + V(b − A·x) under a convergence monitor;
// SolveMonitored accepts a caller-supplied Monitor for custom stopping
// policies. A single-level hierarchy degenerates to the direct solve.
//
// Relaxation is damped Jacobi by default; Gauss–Seidel and a vertex-colored
// parallel Gauss–Seidel are available through WithSmoother.
//
// Everything is deterministic: no randomness, bitwise-reproducible builds and
// solves for identical inputs. A Hierarchy reuses internal work vectors
// between cycles and is therefore not safe for concurrent use; distinct
// hierarchies are independent.
//
// Diagnostics: OperatorComplexity, GridComplexity, Stats and WriteSummary
// report how much work the hierarchy adds on top of the fine operator.
package amg
