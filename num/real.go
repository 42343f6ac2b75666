//go:build !planarreal32

package num

// Real is the platform-default real scalar. The default is float64; build
// with -tags planarreal32 to shrink every Real-based instantiation to
// float32 (GPU upload paths, memory-bound scenes).
type Real = float64
