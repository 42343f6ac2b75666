// Package num centralizes the numeric policy shared by every planar package.
//
// The num package provides:
//
//   - Scalar / Float constraints used by all generic vector and matrix types.
//   - Real, the platform-default real type (float64 unless the planarreal32
//     build tag selects float32).
//   - A single tolerance policy (DefaultEpsilon, Close, CloseT) so that
//     approximate comparisons behave identically across packages and tests.
//
// Nothing here allocates and nothing here branches on data; the package is a
// single source of truth, not an abstraction layer.
package num
