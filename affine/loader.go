// SPDX-License-Identifier: MIT
// Package affine: sequential element loading.
//
// The Loader mirrors stream-style initialization: values are written one by
// one into the logical positions (0,0), (0,1), (0,2), (1,0), … wrapping at
// the logical column count, regardless of the physical storage layout.
// Feeding more than SparseElements values violates the contract; the guard
// traps under the default build and is undefined under planarnochecks.

package affine

import "github.com/katalvlaran/planar/num"

// Loader fills a matrix sequentially in logical row-major order.
// Obtain one via Matrix.Loader; each Put advances by one element.
type Loader[T num.Scalar, L Layout] struct {
	m    *Matrix[T, L]
	next int // count of elements written so far
}

// Loader returns a sequential loader positioned at logical (0, 0).
func (m *Matrix[T, L]) Loader() *Loader[T, L] {
	return &Loader[T, L]{m: m}
}

// Put writes v at the current position and advances. Returns the receiver so
// calls chain: m.Loader().Put(a).Put(b).Put(c)…
func (ld *Loader[T, L]) Put(v T) *Loader[T, L] {
	if boundsChecks && ld.next >= SparseElements {
		panic(panicLoaderOverflow)
	}
	// Wrap at the logical column count: 3 columns per logical row.
	ld.m.SetAt(ld.next/Cols, ld.next%Cols, v)
	ld.next++

	return ld
}

// Load fills the matrix from vals in logical row-major order, starting at
// (0, 0). Precondition: len(vals) <= SparseElements.
// Fewer than six values leaves the remaining elements untouched.
func (m *Matrix[T, L]) Load(vals ...T) {
	ld := m.Loader()
	for _, v := range vals {
		ld.Put(v)
	}
}
