// SPDX-License-Identifier: MIT
// Package affine: geometric constructors and application.

package affine

import (
	"math"

	"github.com/katalvlaran/planar/num"
	"github.com/katalvlaran/planar/vec2"
)

// Translation returns the transform that moves points by p.
func Translation[T num.Scalar, L Layout](p vec2.Vec2[T]) Matrix[T, L] {
	return New[T, L](
		1, 0, p.X,
		0, 1, p.Y,
	)
}

// Scaling returns the transform that scales x by sx and y by sy.
func Scaling[T num.Scalar, L Layout](sx, sy T) Matrix[T, L] {
	return New[T, L](
		sx, 0, 0,
		0, sy, 0,
	)
}

// Rotation returns the counter-clockwise rotation by rad radians (in a y-up
// coordinate system; in the y-down convention common for raster graphics the
// same matrix rotates clockwise). Restricted to float scalars because of the
// transcendental coefficients.
func Rotation[T num.Float, L Layout](rad float64) Matrix[T, L] {
	sin, cos := math.Sincos(rad)

	return New[T, L](
		T(cos), T(-sin), 0,
		T(sin), T(cos), 0,
	)
}

// TransformPoint applies the full transform to a point: linear block plus
// translation.
func (m Matrix[T, L]) TransformPoint(p vec2.Vec2[T]) vec2.Vec2[T] {
	return vec2.New(
		m.At(0, 0)*p.X+m.At(0, 1)*p.Y+m.At(0, 2),
		m.At(1, 0)*p.X+m.At(1, 1)*p.Y+m.At(1, 2),
	)
}

// TransformVec applies only the linear block to a direction vector: the
// translation is deliberately ignored, so directions rotate and scale but do
// not move.
func (m Matrix[T, L]) TransformVec(v vec2.Vec2[T]) vec2.Vec2[T] {
	return vec2.New(
		m.At(0, 0)*v.X+m.At(0, 1)*v.Y,
		m.At(1, 0)*v.X+m.At(1, 1)*v.Y,
	)
}

// Close reports whether a and b are element-wise equal within eps over the
// logical form. Intended for tests and tolerance-based verification chains.
func Close[T num.Scalar, L Layout](a, b Matrix[T, L], eps float64) bool {
	var r, c int
	for r = 0; r < 2; r++ {
		for c = 0; c < 3; c++ {
			if !num.CloseT(a.At(r, c), b.At(r, c), eps) {
				return false
			}
		}
	}

	return true
}
