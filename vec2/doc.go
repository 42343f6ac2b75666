// Package vec2 offers a minimal 2-component vector value type.
//
// The vec2 package provides:
//
//   - Vec2[T], a plain {X, Y} struct generic over num.Scalar.
//   - Closed arithmetic (Add, Sub, Neg, Scale, Dot) that never allocates.
//   - Len / LenSq magnitudes widened to float64 for integer instantiations.
//
// Vec2 is the position currency of the affine package: translations are read
// and written as Vec2 values. Everything is value-semantic; copy freely.
package vec2
