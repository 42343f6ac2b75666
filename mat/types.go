// SPDX-License-Identifier: MIT

// Package mat: domain-facing types. This file intentionally contains ONLY the
// public Matrix interface; errors live in errors.go and validators in
// validators.go per the global conventions.
package mat

import "github.com/katalvlaran/planar/num"

// Matrix represents a two-dimensional mutable array of scalar values.
// Kernels accept this interface and take a flat fast path when the concrete
// type is *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T num.Scalar] interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix[T]
}
