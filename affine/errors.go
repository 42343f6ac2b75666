// SPDX-License-Identifier: MIT
// Package affine: assertion messages (no magic strings).
//
// The affine type signals precondition violations — out-of-range indices and
// loader overruns — with panics, never errors: these are programmer errors on
// a hot-path value type, mirroring the policy that sentinels are for
// user-triggered conditions and panics for contract breaches. The guards
// compile out under the planarnochecks build tag (see checks.go).

package affine

const (
	panicRowRange       = "affine: row index out of range"
	panicColRange       = "affine: column index out of range"
	panicElemRange      = "affine: flat element index out of range"
	panicLoaderOverflow = "affine: loader fed more than 6 elements"
)
