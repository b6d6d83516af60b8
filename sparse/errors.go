// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All kernels return these sentinels and tests match them via errors.Is.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at outer boundaries when context is
// essential; never wrap when returning directly.

package sparse

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrBadStructure indicates malformed compressed storage: row pointer not
	// monotone, pointer/slice length disagreement, or unsorted/duplicate
	// column indices within a row.
	ErrBadStructure = errors.New("sparse: malformed compressed structure")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. MulVec with len(x) != Cols, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("sparse: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	// Ingestion (NewCSR, COO.Append) enforces this.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *CSR (receiver or argument) was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)
