// Package planar is a compact linear-algebra toolkit for 2D graphics
// work — generic vectors, dense matrices and affine transforms with
// closed-form numeric kernels.
//
// 🚀 What is planar?
//
//	A small, deterministic library that brings together:
//		• Generic scalars: one code path for float32, float64 and int (num.Scalar)
//		• Vectors: a tiny 2-component value type (vec2)
//		• Dense matrices: general R×C storage with strict validation (mat)
//		• Affine transforms: a sparse 3×3 type storing only 6 elements (affine)
//		• Kernels: closed-form determinant & inverse shared across shapes
//
// ✨ Why choose planar?
//
//   - Value semantics – stack-friendly types, zero hidden allocation
//   - Deterministic – fixed loop orders, no data-dependent branching
//   - Configurable – storage order and vector convention picked at compile time
//   - Interoperable – converts to golang.org/x/image Aff3 for external APIs
//
// Under the hood, everything is organized under four subpackages:
//
//	num/    — scalar constraint, platform Real, tolerance policy
//	vec2/   — 2-component vector value type & arithmetic
//	mat/    — general dense matrices, validators, linear-algebra kernels
//	affine/ — the affine 3×3 transform (sparse storage, composition, inverse)
//
// Quick sketch of the affine representation (column vectors):
//
//	    / x1 y1 z1 \
//	    | x2 y2 z2 |
//	    \  0  0  1 /
//
//	only the six x/y elements are stored; the bottom row is implicit.
//
// Dive into the per-package docs for the full operation surface, layout
// configuration and the numeric-degeneracy contract.
//
//	go get github.com/katalvlaran/planar
package planar
