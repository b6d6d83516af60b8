// Package lvlgrid is your in-memory toolkit for solving large sparse linear
// systems — an algebraic multigrid solver built from nothing but the matrix.
//
// 🚀 What is lvlgrid?
//
//	A deterministic, pure-Go smoothed-aggregation AMG library that brings together:
//		• Sparse kernels: CSR/COO matrices, parallel SpMV, Gustavson products
//		• Setup pipeline: strength filtering → aggregation → smoothed prolongators
//		• Galerkin coarsening: RAP triple products with R = Pᵀ
//		• Cycling: recursive V-cycles over a dense-LU coarsest solve
//		• Relaxation: damped Jacobi, Gauss–Seidel, multicolor parallel Gauss–Seidel
//		• Monitors: residual-driven stopping, verbose iteration reports
//		• Model problems: 1-D/2-D Poisson operators for experiments and tests
//
// ✨ Why choose lvlgrid?
//
//   - Mesh-free – the hierarchy is inferred from the operator, no geometry needed
//   - Deterministic – bitwise-reproducible setups and solves, no hidden randomness
//   - Pure Go – no cgo, no external solver binaries
//   - Tunable – functional options for strength, damping, smoothers and depth
//
// Under the hood, everything is organized under three subpackages:
//
//	amg/     — hierarchy construction, V-cycles, smoothers, monitors, diagnostics
//	gallery/ — finite-difference model operators (Poisson 1-D/2-D)
//	sparse/  — CSR/COO storage and the sparse kernels the solver is built on
//
// Quick sketch of a solve:
//
//	a, _ := gallery.Poisson2D(256, 256)
//	h, _ := amg.NewHierarchy(a)
//	x := make([]float64, a.Rows)
//	iters, _ := h.Solve(b, x) // x ← A⁻¹·b to 1e-5 in a handful of V-cycles
//
// Dive into cmd/poisson for a complete command-line workout, including
// per-iteration residual reports and convergence plots.
//
//	go get github.com/katalvlaran/lvlgrid
package lvlgrid
