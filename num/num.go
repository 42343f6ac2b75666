// SPDX-License-Identifier: MIT
// Package num: scalar constraints and the shared tolerance policy.
// This file intentionally contains ONLY the generic constraints and the
// comparison helpers; the Real alias lives in real.go/real32.go because it is
// selected per build tag.

package num

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the element type accepted by every planar container.
// It covers the named instantiations the library ships (float32, float64,
// int) and any defined type whose underlying type is an integer or float.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float restricts an operation to real-valued scalars. Used by kernels that
// need transcendental functions (rotations) or meaningful division.
type Float interface {
	constraints.Float
}

// DefaultEpsilon is the non-negative tolerance used by approximate
// comparisons across the library. 1e-9 suits float64 chains of a few dozen
// multiply-adds; callers working in float32 should pass a looser eps.
const DefaultEpsilon = 1e-9

// Close reports whether a and b are equal within eps.
// Complexity: O(1).
func Close(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// CloseT is the generic form of Close: both operands are widened to float64
// before comparison, so it is exact for every integer Scalar up to 2^53.
// Complexity: O(1).
func CloseT[T Scalar](a, b T, eps float64) bool {
	return math.Abs(float64(a)-float64(b)) <= eps
}
