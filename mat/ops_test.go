// Package mat_test: multiplication/transpose/scale facade coverage.
package mat_test

import (
	"testing"

	"github.com/katalvlaran/planar/mat"
	"github.com/stretchr/testify/require"
)

// TestMulShapes verifies the product shape and a hand-computed result.
func TestMulShapes(t *testing.T) {
	a, err := mat.NewDense[float64](2, 3) // 2x3 left operand
	require.NoError(t, err)
	copy(a.Raw(), []float64{1, 2, 3, 4, 5, 6})

	b, err := mat.NewDense[float64](3, 2) // 3x2 right operand
	require.NoError(t, err)
	copy(b.Raw(), []float64{7, 8, 9, 10, 11, 12})

	c, err := mat.Mul[float64](a, b) // product is 2x2
	require.NoError(t, err)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 2, c.Cols())

	// row 0: (1*7+2*9+3*11, 1*8+2*10+3*12) = (58, 64)
	v, _ := c.At(0, 0)
	require.Equal(t, 58.0, v)
	v, _ = c.At(0, 1)
	require.Equal(t, 64.0, v)
	// row 1: (4*7+5*9+6*11, 4*8+5*10+6*12) = (139, 154)
	v, _ = c.At(1, 0)
	require.Equal(t, 139.0, v)
	v, _ = c.At(1, 1)
	require.Equal(t, 154.0, v)
}

// TestMulMismatch ensures inner-dimension mismatches are rejected.
func TestMulMismatch(t *testing.T) {
	a, err := mat.NewDense[float64](2, 3)
	require.NoError(t, err)
	b, err := mat.NewDense[float64](2, 3) // 3 != 2: not conformable
	require.NoError(t, err)

	_, err = mat.Mul[float64](a, b)
	require.ErrorIs(t, err, mat.ErrDimensionMismatch)

	_, err = mat.Mul[float64](nil, b) // nil operand short-circuits first
	require.ErrorIs(t, err, mat.ErrNilMatrix)
}

// TestTranspose verifies mᵀ shape and content.
func TestTranspose(t *testing.T) {
	m, err := mat.NewDense[int](2, 3)
	require.NoError(t, err)
	copy(m.Raw(), []int{1, 2, 3, 4, 5, 6})

	tr, err := mat.Transpose[int](m) // 3x2 result
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())

	for i := 0; i < 2; i++ { // every (i,j) lands at (j,i)
		for j := 0; j < 3; j++ {
			orig, _ := m.At(i, j)
			flip, _ := tr.At(j, i)
			require.Equal(t, orig, flip)
		}
	}
}

// TestScale verifies scalar scaling leaves the input untouched.
func TestScale(t *testing.T) {
	m, err := mat.NewDense[float64](2, 2)
	require.NoError(t, err)
	copy(m.Raw(), []float64{1, 2, 3, 4})

	s, err := mat.Scale[float64](m, 0.5)
	require.NoError(t, err)

	v, _ := s.At(1, 1)
	require.Equal(t, 2.0, v) // 4 * 0.5
	v, _ = m.At(1, 1)
	require.Equal(t, 4.0, v) // original untouched
}

// TestIdentityFacades covers NewIdentity/IdentityLike/ZerosLike.
func TestIdentityFacades(t *testing.T) {
	ident, err := mat.NewIdentity[float64](3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := ident.At(i, j)
			if i == j {
				require.Equal(t, 1.0, v) // diagonal ones
			} else {
				require.Equal(t, 0.0, v) // zeros elsewhere
			}
		}
	}

	like, err := mat.IdentityLike[float64](ident) // same-shape identity
	require.NoError(t, err)
	require.Equal(t, 3, like.Rows())

	rect, err := mat.NewDense[float64](2, 3)
	require.NoError(t, err)
	_, err = mat.IdentityLike[float64](rect) // identity requires square input
	require.ErrorIs(t, err, mat.ErrNonSquare)

	z, err := mat.ZerosLike[float64](rect) // shape copy, zero content
	require.NoError(t, err)
	require.Equal(t, 2, z.Rows())
	require.Equal(t, 3, z.Cols())
}
