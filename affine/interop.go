// SPDX-License-Identifier: MIT
// Package affine: conversions to and from golang.org/x/image's affine types.
//
// x/image's Aff3 is a row-major [6]array of the same logical 3×3-with-
// implicit-bottom-row form, so the conversion is a straight logical-order
// copy; the layout parameter only affects which storage slots are read.

package affine

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Aff3Of converts a float64 matrix into an x/image f64.Aff3.
func Aff3Of[L Layout](m Matrix[float64, L]) f64.Aff3 {
	return f64.Aff3{
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
	}
}

// FromAff3 builds a matrix from an x/image f64.Aff3.
func FromAff3[L Layout](a f64.Aff3) Matrix[float64, L] {
	return New[float64, L](a[0], a[1], a[2], a[3], a[4], a[5])
}

// Aff3fOf converts a float32 matrix into an x/image f32.Aff3.
func Aff3fOf[L Layout](m Matrix[float32, L]) f32.Aff3 {
	return f32.Aff3{
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
	}
}

// FromAff3f builds a matrix from an x/image f32.Aff3.
func FromAff3f[L Layout](a f32.Aff3) Matrix[float32, L] {
	return New[float32, L](a[0], a[1], a[2], a[3], a[4], a[5])
}
