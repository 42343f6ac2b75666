// Package affine_test: sequential loader coverage.
package affine_test

import (
	"testing"

	"github.com/katalvlaran/planar/affine"
	"github.com/stretchr/testify/require"
)

// loaderFill verifies the logical row-major fill order for one layout.
func loaderFill[L affine.Layout](t *testing.T) {
	t.Helper()

	var m affine.Matrix[float64, L]
	m.Load(1, 2, 3, 4, 5, 6) // a..f in logical row-major order

	require.Equal(t, 1.0, m.At(0, 0)) // a
	require.Equal(t, 2.0, m.At(0, 1)) // b
	require.Equal(t, 3.0, m.At(0, 2)) // c
	require.Equal(t, 4.0, m.At(1, 0)) // d
	require.Equal(t, 5.0, m.At(1, 1)) // e
	require.Equal(t, 6.0, m.At(1, 2)) // f
}

// TestLoadFillOrder runs the fill-order property across all layouts: the
// sequence is logical, never storage-dependent.
func TestLoadFillOrder(t *testing.T) {
	t.Run("ColMajor", loaderFill[affine.ColMajor])
	t.Run("RowMajor", loaderFill[affine.RowMajor])
	t.Run("ColMajorRowVec", loaderFill[affine.ColMajorRowVec])
	t.Run("RowMajorRowVec", loaderFill[affine.RowMajorRowVec])
}

// TestLoaderChaining verifies Put chains and matches Load.
func TestLoaderChaining(t *testing.T) {
	var chained, loaded affine.Aff3d

	chained.Loader().Put(1).Put(2).Put(3).Put(4).Put(5).Put(6) // chained writes
	loaded.Load(1, 2, 3, 4, 5, 6)                              // variadic equivalent

	require.Equal(t, loaded, chained)
}

// TestLoaderPartial ensures a short load leaves the tail untouched.
func TestLoaderPartial(t *testing.T) {
	m := affine.Identity[float64, affine.ColMajor]()
	m.Load(9, 8) // only (0,0) and (0,1) are overwritten

	require.Equal(t, 9.0, m.At(0, 0))
	require.Equal(t, 8.0, m.At(0, 1))
	require.Equal(t, 0.0, m.At(0, 2)) // identity remainder intact
	require.Equal(t, 1.0, m.At(1, 1))
}

// TestLoaderOverflow pins the precondition trap on the seventh element.
func TestLoaderOverflow(t *testing.T) {
	var m affine.Aff3d
	ld := m.Loader()
	for i := 0; i < affine.SparseElements; i++ {
		ld.Put(float64(i)) // six writes are fine
	}

	require.Panics(t, func() { ld.Put(7) }) // the seventh traps
	require.Panics(t, func() {
		var n affine.Aff3d
		n.Load(1, 2, 3, 4, 5, 6, 7) // variadic overflow traps the same way
	})
}
