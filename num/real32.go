//go:build planarreal32

package num

// Real is the platform-default real scalar, selected by the planarreal32
// build tag. See real.go for the default (float64).
type Real = float32
