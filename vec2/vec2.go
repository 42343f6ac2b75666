// SPDX-License-Identifier: MIT
// Package vec2: the Vec2 value type and its closed arithmetic.
// All operations return fresh values; no method mutates its receiver.

package vec2

import (
	"fmt"
	"math"

	"github.com/katalvlaran/planar/num"
)

// Vec2 is a 2-component vector over any planar scalar.
// The zero value is the zero vector.
type Vec2[T num.Scalar] struct {
	X, Y T
}

// New returns the vector (x, y).
// Complexity: O(1).
func New[T num.Scalar](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

// Scale returns v scaled by s component-wise.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product v·o in the scalar type T.
// Integer instantiations stay exact; no widening is performed here.
func (v Vec2[T]) Dot(o Vec2[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// LenSq returns the squared Euclidean length widened to float64.
// Complexity: O(1).
func (v Vec2[T]) LenSq() float64 {
	x, y := float64(v.X), float64(v.Y)
	return x*x + y*y
}

// Len returns the Euclidean length widened to float64.
// Uses math.Hypot to avoid intermediate overflow for large components.
func (v Vec2[T]) Len() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// String implements fmt.Stringer for easy debugging.
func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Named instantiations mirroring the affine aliases.
type (
	// Vec2f is the float32 instantiation.
	Vec2f = Vec2[float32]
	// Vec2d is the float64 instantiation.
	Vec2d = Vec2[float64]
	// Vec2i is the integer instantiation.
	Vec2i = Vec2[int]
	// V is the platform-default real instantiation (see num.Real).
	V = Vec2[num.Real]
)
