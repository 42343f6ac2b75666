// Package affine implements the affine 3×3 transform for 2D graphics:
// translations, scaling, rotations and shearing.
//
// Only a 2×3 block is stored — six elements — because the third row of an
// affine matrix is always (0, 0, 1). With column vectors (the default) and
// row vectors the matrix is laid out as:
//
//	// column vectors:          // row vectors:
//	// / x1 y1 z1 \             // / x1 x2 0 \
//	// | x2 y2 z2 |             // | y1 y2 0 |
//	// \  0  0  1 /             // \ z1 z2 1 /
//
// In both cases (z1, z2) stores the position of the transformation.
//
// The package provides:
//
//   - Matrix[T, L]: the sparse affine type, generic over the scalar and a
//     compile-time Layout (storage order × vector convention).
//   - Composition (Mul, MulAssign), inversion (Inverse, MakeInverse),
//     Transposed into a full dense 3×3, Trace/Determinant closed forms.
//   - Translation/Rotation/Scaling constructors and point/vector application.
//   - A sequential Loader mirroring stream-style initialization.
//   - Conversions to and from golang.org/x/image's Aff3 types for interop.
//
// Index preconditions are enforced with assertion panics; build with
// -tags planarnochecks to compile the guards out of hot paths. Numeric
// degeneracy (singular inverse) is reported via MakeInverse's boolean — the
// value-returning Inverse does not expose the signal.
//
// Everything is value-semantic and allocation-free except Transposed (which
// materializes a mat.Dense). Concurrent reads are safe; concurrent mutation
// of one value is the caller's responsibility.
package affine
