// SPDX-License-Identifier: MIT
// Package: mat
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package mat

import "github.com/katalvlaran/planar/num"

// ValidateNotNil ensures m is a usable matrix value.
// Returns ErrNilMatrix for a nil interface or a typed-nil *Dense.
func ValidateNotNil[T num.Scalar](m Matrix[T]) error {
	if m == nil {
		return ErrNilMatrix
	}
	// Guard against a typed-nil concrete value hiding behind the interface.
	if d, ok := m.(*Dense[T]); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare ensures m is non-nil and square.
// Sequence: NotNil → Square.
func ValidateSquare[T num.Scalar](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}

// ValidateBinarySameShape ensures a and b are non-nil with identical shapes.
// Sequence: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape[T num.Scalar](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and conformable for the
// matrix product a×b (a.Cols == b.Rows).
func ValidateMulCompatible[T num.Scalar](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return ErrDimensionMismatch
	}

	return nil
}
