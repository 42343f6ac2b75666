// Package affine_test provides benchmarks for the hot affine kernels,
// using fixed coefficient sets so every iteration does identical work.
package affine_test

import (
	"testing"

	"github.com/katalvlaran/planar/affine"
	"github.com/katalvlaran/planar/vec2"
)

// sinks to defeat dead-code elimination
var (
	sinkA affine.Aff3d
	sinkV vec2.Vec2d
	sinkF float64
	sinkB bool
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	lhs := affine.New[float64, affine.ColMajor](2, -1, 5, 0.5, 3, -7)
	rhs := affine.New[float64, affine.ColMajor](-2, 1.5, 0, 1, 1, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkA = affine.Mul(lhs, rhs)
	}
}

func BenchmarkMulRowMajor(b *testing.B) {
	b.ReportAllocs()
	lhs := affine.New[float64, affine.RowMajor](2, -1, 5, 0.5, 3, -7)
	rhs := affine.New[float64, affine.RowMajor](-2, 1.5, 0, 1, 1, 4)
	var sink affine.Matrix[float64, affine.RowMajor]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = affine.Mul(lhs, rhs)
	}
	_ = sink
}

func BenchmarkMakeInverse(b *testing.B) {
	b.ReportAllocs()
	src := affine.New[float64, affine.ColMajor](2, 1, 5, 1, 3, -4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := src
		sinkB = m.MakeInverse()
	}
}

func BenchmarkTransformPoint(b *testing.B) {
	b.ReportAllocs()
	m := affine.New[float64, affine.ColMajor](2, -1, 5, 0.5, 3, -7)
	p := vec2.New(1.25, -3.5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkV = m.TransformPoint(p)
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	m := affine.New[float64, affine.ColMajor](2, -1, 5, 0.5, 3, -7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = m.Determinant()
	}
}
