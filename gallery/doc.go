// Package gallery builds canonical sparse test operators.
//
// The Poisson stencils are the standard smoke tests for multigrid codes: they
// are symmetric positive definite, their spectra are known in closed form,
// and a correct solver configuration handles them in a handful of iterations.
//
//   - Poisson1D: tridiag(-1, 2, -1), the 1D Laplacian with Dirichlet ends
//   - Poisson2D: the five-point stencil on an nx×ny grid, row-major order
//
// Both return canonical *sparse.CSR ready for amg.NewHierarchy.
package gallery
