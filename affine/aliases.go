// SPDX-License-Identifier: MIT

// Package affine: named instantiations over the default ColMajor layout.
package affine

import "github.com/katalvlaran/planar/num"

type (
	// Aff3 is the platform-default real instantiation (see num.Real).
	Aff3 = Matrix[num.Real, ColMajor]
	// Aff3f is the float32 instantiation.
	Aff3f = Matrix[float32, ColMajor]
	// Aff3d is the float64 instantiation.
	Aff3d = Matrix[float64, ColMajor]
	// Aff3i is the integer instantiation; composition, determinant and trace
	// stay exact, while MakeInverse divides with truncating integer division.
	Aff3i = Matrix[int, ColMajor]
)
