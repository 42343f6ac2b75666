// Package affine_test: runnable documentation examples.
package affine_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/planar/affine"
	"github.com/katalvlaran/planar/vec2"
)

// ExampleMul demonstrates composing a scale with a translation and applying
// the result to a point. Composition is right-to-left: Mul(t, s) scales
// first, then translates.
func ExampleMul() {
	// 1) Uniform scale by 2, then move by (10, 5).
	s := affine.Scaling[float64, affine.ColMajor](2, 2)
	t := affine.Translation[float64, affine.ColMajor](vec2.New(10.0, 5.0))
	m := affine.Mul(t, s)

	// 2) Points feel the full transform, directions only the linear block.
	fmt.Println("point: ", m.TransformPoint(vec2.New(1.0, 2.0)))
	fmt.Println("vector:", m.TransformVec(vec2.New(1.0, 2.0)))

	// Output:
	// point:  (12, 9)
	// vector: (2, 4)
}

// ExampleMatrix_MakeInverse shows the in-place inversion contract: the bool
// result is the only degeneracy signal.
func ExampleMatrix_MakeInverse() {
	// A scale-and-translate transform; det = 2*2 = 4.
	m := affine.New[float64, affine.ColMajor](
		2, 0, 4,
		0, 2, -6,
	)
	if m.MakeInverse() {
		fmt.Println("inverse translation:", m.Position())
	}

	// Dependent rows: det = 0, the matrix stays untouched.
	bad := affine.New[float64, affine.ColMajor](1, 2, 0, 2, 4, 0)
	fmt.Println("invertible:", bad.MakeInverse())

	// Output:
	// inverse translation: (-2, 3)
	// invertible: false
}

// ExampleMatrix_Loader streams coefficients in logical row-major order,
// independent of the storage layout.
func ExampleMatrix_Loader() {
	var m affine.Aff3i
	m.Loader().Put(1).Put(2).Put(3).Put(4).Put(5).Put(6)

	fmt.Print(m)

	// Output:
	// [1, 2, 3]
	// [4, 5, 6]
	// [0, 0, 1]
}

// ExampleRotation rotates a unit vector by a quarter turn.
func ExampleRotation() {
	r := affine.Rotation[float64, affine.ColMajor](math.Pi / 2)

	p := r.TransformVec(vec2.New(1.0, 0.0))
	fmt.Printf("(%.2f, %.2f)\n", p.X, p.Y)

	// Output:
	// (0.00, 1.00)
}
