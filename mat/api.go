// SPDX-License-Identifier: MIT
// Package mat — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package mat

import "github.com/katalvlaran/planar/num"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init by the runtime.
func NewZeros[T num.Scalar](rows, cols int) (*Dense[T], error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense[T](rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity[T num.Scalar](n int) (*Dense[T], error) {
	// Allocate an n×n zero matrix via the constructor.
	ident, err := NewDense[T](n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		ident.data[i*n+i] = 1
	}

	// Return the identity matrix.
	return ident, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n²). Validates square via central validator.
func IdentityLike[T num.Scalar](m Matrix[T]) (*Dense[T], error) {
	// Ensure the input is square using the centralized validator.
	if err := ValidateSquare(m); err != nil {
		return nil, matErrorf("IdentityLike", err)
	}
	// Construct the identity of matching dimension.
	return NewIdentity[T](m.Rows())
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(r*c) zeroing. Handy to preallocate staging buffers.
func ZerosLike[T num.Scalar](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matErrorf("ZerosLike", err)
	}
	// Read shape once and call NewDense with the same dimensions.
	return NewDense[T](m.Rows(), m.Cols())
}
