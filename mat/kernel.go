// SPDX-License-Identifier: MIT
// Package mat: the shared closed-form determinant/inverse kernel.
//
// Purpose:
//   - Declare the canonical scalar kernels (Det2, Det3) reused by every matrix
//     shape in planar, including the sparse affine 3×3 type.
//   - Provide Determinant/Inverse facades over the Matrix interface for the
//     orders the library actually ships (1, 2, 3).
//
// Notes:
//   - A zero determinant is detected with an exact comparison: the kernels are
//     deterministic and leave conditioning concerns to the caller.
//   - Orders above 3 intentionally return ErrUnsupportedOrder; planar has no
//     pivoting machinery and does not pretend otherwise.

package mat

import (
	"fmt"

	"github.com/katalvlaran/planar/num"
)

// Det2 returns the determinant of the 2×2 matrix
//
//	| a b |
//	| c d |
//
// as a*d - b*c. Exact over integer scalars.
// Complexity: O(1).
func Det2[T num.Scalar](a, b, c, d T) T {
	return a*d - b*c
}

// Det3 returns the determinant of the 3×3 matrix given in row-major order
// (m00..m22), expanded along the first row.
// Complexity: O(1).
func Det3[T num.Scalar](m00, m01, m02, m10, m11, m12, m20, m21, m22 T) T {
	return m00*Det2(m11, m12, m21, m22) -
		m01*Det2(m10, m12, m20, m22) +
		m02*Det2(m10, m11, m20, m21)
}

// Determinant computes det(m) for square matrices of order 1, 2 or 3 using
// the closed-form kernels.
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: read the n² elements in fixed i→j order, dispatch on n.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (from ValidateSquare).
//   - ErrUnsupportedOrder for n > 3.
//
// Complexity:
//   - Time O(1) after the O(n²) element reads, Space O(1).
func Determinant[T num.Scalar](m Matrix[T]) (T, error) {
	var zero T
	// Validate input non-nil and square
	if err := ValidateSquare(m); err != nil {
		return zero, matErrorf(opDeterminant, err)
	}

	n := m.Rows()
	if n > 3 {
		return zero, matErrorf(opDeterminant, ErrUnsupportedOrder)
	}

	// Read the elements once in fixed order.
	e, err := readSquare(m, n)
	if err != nil {
		return zero, matErrorf(opDeterminant, err)
	}

	switch n {
	case 1:
		return e[0], nil
	case 2:
		return Det2(e[0], e[1], e[2], e[3]), nil
	default: // n == 3
		return Det3(e[0], e[1], e[2], e[3], e[4], e[5], e[6], e[7], e[8]), nil
	}
}

// Inverse computes A⁻¹ via the adjugate for square matrices of order 1, 2
// or 3. The input is never mutated; the result is a fresh Dense.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); reject orders above 3.
//   - Stage 2: compute det via the closed-form kernel; exact-zero ⇒ ErrSingular.
//   - Stage 3: write adj(A)/det into the result in fixed i→j order.
//
// Behavior highlights:
//   - Integer instantiations divide with Go's truncating integer division,
//     matching the element type's own arithmetic.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrUnsupportedOrder, ErrSingular.
//
// Complexity:
//   - Time O(1) after the element reads, Space O(n²) for the result.
//
// AI-Hints:
//   - If you only need to apply A⁻¹ to a handful of vectors, still form the
//     inverse here: at order ≤ 3 the adjugate is cheaper than any solver setup.
func Inverse[T num.Scalar](m Matrix[T]) (Matrix[T], error) {
	// Validate input non-nil and square
	if err := ValidateSquare(m); err != nil {
		return nil, matErrorf(opInverse, err)
	}

	n := m.Rows()
	if n > 3 {
		return nil, matErrorf(opInverse, ErrUnsupportedOrder)
	}

	// Read the elements once in fixed order.
	e, err := readSquare(m, n)
	if err != nil {
		return nil, matErrorf(opInverse, err)
	}

	// Allocate result container.
	res, err := NewDense[T](n, n)
	if err != nil {
		return nil, matErrorf(opInverse, err)
	}

	switch n {
	case 1:
		if e[0] == 0 {
			return nil, matErrorf(opInverse, ErrSingular)
		}
		var one T = 1
		res.data[0] = one / e[0]

	case 2:
		det := Det2(e[0], e[1], e[2], e[3])
		if det == 0 {
			return nil, matErrorf(opInverse, ErrSingular)
		}
		// adj(A)/det with the classic 2×2 swap/negate pattern.
		res.data[0] = e[3] / det
		res.data[1] = -e[1] / det
		res.data[2] = -e[2] / det
		res.data[3] = e[0] / det

	default: // n == 3
		det := Det3(e[0], e[1], e[2], e[3], e[4], e[5], e[6], e[7], e[8])
		if det == 0 {
			return nil, matErrorf(opInverse, ErrSingular)
		}
		// Cofactor matrix, transposed (adjugate), in fixed row-major order.
		res.data[0] = Det2(e[4], e[5], e[7], e[8]) / det
		res.data[1] = -Det2(e[1], e[2], e[7], e[8]) / det
		res.data[2] = Det2(e[1], e[2], e[4], e[5]) / det
		res.data[3] = -Det2(e[3], e[5], e[6], e[8]) / det
		res.data[4] = Det2(e[0], e[2], e[6], e[8]) / det
		res.data[5] = -Det2(e[0], e[2], e[3], e[5]) / det
		res.data[6] = Det2(e[3], e[4], e[6], e[7]) / det
		res.data[7] = -Det2(e[0], e[1], e[6], e[7]) / det
		res.data[8] = Det2(e[0], e[1], e[3], e[4]) / det
	}

	return res, nil
}

// readSquare reads the n² elements of m into a row-major scratch slice using
// the flat fast path for *Dense and At for anything else. Assumes m was
// already validated square with Rows() == n.
func readSquare[T num.Scalar](m Matrix[T], n int) ([]T, error) {
	// Fast-path: *Dense exposes contiguous row-major storage already.
	if d, ok := m.(*Dense[T]); ok {
		return d.data, nil
	}

	// Fallback: copy via the interface in fixed i→j order.
	e := make([]T, n*n)
	var (
		i, j int
		v    T
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			e[i*n+j] = v
		}
	}

	return e, nil
}
