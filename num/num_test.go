// Package num_test contains unit tests for the shared numeric policy.
package num_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/planar/num"
	"github.com/stretchr/testify/require"
)

// TestCloseBasic verifies the tolerance comparison on floats.
func TestCloseBasic(t *testing.T) {
	require.True(t, num.Close(1.0, 1.0, 0))                          // exact equality needs no tolerance
	require.True(t, num.Close(1.0, 1.0+1e-12, num.DefaultEpsilon))   // tiny drift within eps
	require.False(t, num.Close(1.0, 1.0+1e-6, num.DefaultEpsilon))   // drift beyond eps rejected
	require.False(t, num.Close(1.0, math.NaN(), num.DefaultEpsilon)) // NaN never compares close
}

// TestCloseTGeneric verifies the generic comparison over integer and float scalars.
func TestCloseTGeneric(t *testing.T) {
	require.True(t, num.CloseT(int(7), int(7), 0))       // integers compare exactly
	require.False(t, num.CloseT(int(7), int(8), 0.5))    // off-by-one is not close
	require.True(t, num.CloseT(float32(2), float32(2+1e-7), 1e-5)) // float32 drift within eps
}
