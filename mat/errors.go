// SPDX-License-Identifier: MIT
// Package mat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the mat
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for programmer errors in private helpers (if any).

package mat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mat: ..." for consistency and to allow easy
// grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with matErrorf(tag, ErrX) at the
// facade — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// Constructors must validate shape before allocation.
	ErrInvalidDimensions = errors.New("mat: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("mat: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("mat: nil matrix")

	// ErrSingular is returned when a zero determinant is encountered during
	// inversion (intentional exact-zero check for determinism).
	ErrSingular = errors.New("mat: singular matrix")

	// ErrUnsupportedOrder marks an order the closed-form kernels do not cover
	// (Determinant/Inverse stop at 3×3 by design; see package doc).
	ErrUnsupportedOrder = errors.New("mat: order not supported by closed-form kernel")
)
