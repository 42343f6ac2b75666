// Package mat offers general dense matrices and the closed-form numeric
// kernels shared across planar's matrix shapes.
//
// The mat package provides:
//
//   - Dense[T], a flat row-major R×C container generic over num.Scalar.
//   - Strict fail-fast validation with sentinel errors matched via errors.Is.
//   - Linear-algebra facades (Mul, Transpose, Scale) with a *Dense fast path.
//   - The shared determinant/inverse kernel (Det2, Det3, Inverse up to order 3)
//     that the affine package reuses for its sparse 3×3 form.
//
// Dense matrices are best for small fixed shapes (2×2, 3×3, homogeneous 4×4)
// where O(r*c) memory and closed-form kernels are exactly right; there is no
// SIMD, no blocking and no pivoting by design.
//
// See the examples in this package and affine for usage patterns.
package mat
