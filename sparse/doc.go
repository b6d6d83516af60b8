// SPDX-License-Identifier: MIT

// Package sparse provides compressed sparse row (CSR) matrices and the small
// set of kernels a multigrid pipeline is made of:
//
//   - CSR / COO: canonical storage plus a triplet assembly buffer
//   - MulVec:    y = A·x (row-parallel above a work threshold)
//   - Mul:       C = A·B via Gustavson's two-phase algorithm
//   - Transpose: counting-sort transpose, canonical output
//   - Add:       alpha·A + beta·B over the union of both patterns
//   - Diagonal / ScaleRows: main-diagonal extraction and row scaling
//   - GreedyColoring: first-fit vertex coloring of the adjacency structure
//   - ToDense:   conversion to gonum's *mat.Dense
//
// Canonical form. Every CSR produced by this package keeps column indices
// strictly ascending within each row and duplicate entries merged. All kernels
// rely on that ordering; NewCSR validates it on ingestion so the invariant
// holds everywhere downstream. Explicit zeros are legal and preserved: NNZ is
// a structural count, not a numerical one.
//
// Determinism. All kernels are deterministic. Parallel sections partition
// work by disjoint row ranges, so results are bitwise identical regardless of
// GOMAXPROCS or scheduling order.
//
// Concurrency. Matrices are not synchronized: concurrent reads are safe,
// concurrent mutation is the caller's responsibility.
package sparse
