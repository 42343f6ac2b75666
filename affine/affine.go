// SPDX-License-Identifier: MIT
// Package affine: the sparse affine 3×3 value type.
//
// Index semantics: At/SetAt always address the LOGICAL column-vector form,
// row ∈ [0,1] and col ∈ [0,2], regardless of the configured layout. Under a
// row-vector layout the arguments are swapped into storage coordinates
// internally, so the same (row, col) names the same logical element in every
// configuration. Elem/SetElem/Raw address physical storage and therefore do
// depend on the layout.

package affine

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/planar/mat"
	"github.com/katalvlaran/planar/num"
	"github.com/katalvlaran/planar/vec2"
)

// Matrix is an affine 3×3 transform storing only its 2×3 sparse block.
// The zero value is the all-zero matrix (the Reset state). Assignment is a
// deep copy; there is no aliasing between values.
//
// T is the scalar type, L the compile-time storage layout. See the package
// doc for the layout diagrams and the aliases file for the common
// instantiations.
type Matrix[T num.Scalar, L Layout] struct {
	m      [SparseElements]T
	layout L
}

// New returns the matrix with the given coefficients in logical row-major
// order, i.e. the column-vector form
//
//	| m00 m01 m02 |
//	| m10 m11 m12 |
//	|  0   0   1  |
//
// The layout parameter controls physical storage only; the parameter order
// here never changes.
func New[T num.Scalar, L Layout](m00, m01, m02, m10, m11, m12 T) Matrix[T, L] {
	var m Matrix[T, L]
	m.SetAt(0, 0, m00)
	m.SetAt(0, 1, m01)
	m.SetAt(0, 2, m02)
	m.SetAt(1, 0, m10)
	m.SetAt(1, 1, m11)
	m.SetAt(1, 2, m12)

	return m
}

// Identity returns the identity transform.
func Identity[T num.Scalar, L Layout]() Matrix[T, L] {
	var m Matrix[T, L]
	m.LoadIdentity()

	return m
}

// index translates logical (row, col) into the flat storage offset, swapping
// into storage coordinates under row-vector layouts and asserting the sparse
// ranges when checks are enabled.
// Complexity: O(1); with a concrete layout the whole call constant-folds.
func (m *Matrix[T, L]) index(row, col int) int {
	if m.layout.RowVectors() {
		row, col = col, row // storage is the transposed block
	}
	if boundsChecks {
		if row < 0 || row >= m.layout.SparseRows() {
			panic(panicRowRange)
		}
		if col < 0 || col >= m.layout.SparseCols() {
			panic(panicColRange)
		}
	}

	return m.layout.Index(row, col)
}

// At returns the logical element (row, col); row must be in [0,1] and col in
// [0,2]. Out-of-range indices panic (checks build) or are undefined
// (planarnochecks build).
func (m Matrix[T, L]) At(row, col int) T {
	return m.m[m.index(row, col)]
}

// SetAt assigns the logical element (row, col). Same index contract as At.
func (m *Matrix[T, L]) SetAt(row, col int, v T) {
	m.m[m.index(row, col)] = v
}

// Elem returns storage element i, i ∈ [0,5]. The meaning of i depends on the
// configured layout; use At for layout-independent access.
func (m Matrix[T, L]) Elem(i int) T {
	if boundsChecks && (i < 0 || i >= SparseElements) {
		panic(panicElemRange)
	}

	return m.m[i]
}

// SetElem assigns storage element i, i ∈ [0,5].
func (m *Matrix[T, L]) SetElem(i int, v T) {
	if boundsChecks && (i < 0 || i >= SparseElements) {
		panic(panicElemRange)
	}
	m.m[i] = v
}

// Raw exposes the contiguous 6-element storage for interop with numeric APIs
// expecting a flat array. The slice aliases the matrix; element order depends
// on the configured layout.
func (m *Matrix[T, L]) Raw() []T {
	return m.m[:]
}

// Reset zeroes all storage elements.
func (m *Matrix[T, L]) Reset() {
	clear(m.m[:])
}

// LoadIdentity overwrites the matrix with the identity transform.
func (m *Matrix[T, L]) LoadIdentity() {
	var r, c int
	for r = 0; r < 2; r++ { // logical sparse rows
		for c = 0; c < 3; c++ { // logical sparse cols
			if r == c {
				m.SetAt(r, c, 1)
			} else {
				m.SetAt(r, c, 0)
			}
		}
	}
}

// full materializes the convention's logical 3×3 form in row-major order,
// including the implicit slots. Only the (2,2) corner needs an explicit 1;
// the remaining implicit entries are zero by construction.
func (m Matrix[T, L]) full() [Elements]T {
	var f [Elements]T
	sr, sc := m.layout.SparseRows(), m.layout.SparseCols()
	var r, c int
	for r = 0; r < sr; r++ {
		for c = 0; c < sc; c++ {
			f[r*Cols+c] = m.m[m.layout.Index(r, c)]
		}
	}
	f[Elements-1] = 1

	return f
}

// Transposed returns the full dense 3×3 transpose of this matrix. The result
// is dense because the transpose of an affine matrix is generally not affine:
// the implicit (0, 0, 1) row transposes into an explicit column, which is
// written out in full.
// Complexity: O(1) arithmetic, one Dense allocation.
func (m Matrix[T, L]) Transposed() *mat.Dense[T] {
	res, _ := mat.NewDense[T](Rows, Cols) // fixed 3×3 shape cannot fail
	raw := res.Raw()

	f := m.full()
	var r, c int
	for r = 0; r < Rows; r++ {
		for c = 0; c < Cols; c++ {
			raw[c*Cols+r] = f[r*Cols+c]
		}
	}

	return res
}

// Trace returns M(0,0) + M(1,1) + 1; the implicit diagonal element
// contributes exactly 1.
func (m Matrix[T, L]) Trace() T {
	return m.At(0, 0) + m.At(1, 1) + 1
}

// Determinant returns the determinant of the full 3×3 form. Expanding along
// the implicit row reduces it to the 2×2 kernel over the linear block;
// translation never contributes.
func (m Matrix[T, L]) Determinant() T {
	return mat.Det2(m.At(0, 0), m.At(0, 1), m.At(1, 0), m.At(1, 1))
}

// MakeInverse inverts the matrix in place and reports success. The linear
// block is inverted via the shared 2×2 kernel and the translation recomputed
// so that M * M⁻¹ is the identity.
//
// A zero determinant (exact comparison, deterministic) leaves the matrix
// untouched and returns false. Integer instantiations divide with the scalar
// type's own truncating division.
func (m *Matrix[T, L]) MakeInverse() bool {
	m00, m01, m02 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	m10, m11, m12 := m.At(1, 0), m.At(1, 1), m.At(1, 2)

	det := mat.Det2(m00, m01, m10, m11)
	if det == 0 {
		return false
	}

	// Inverted linear block: adj/det.
	i00, i01 := m11/det, -m01/det
	i10, i11 := -m10/det, m00/det

	m.SetAt(0, 0, i00)
	m.SetAt(0, 1, i01)
	m.SetAt(1, 0, i10)
	m.SetAt(1, 1, i11)
	// Translation: t' = -(A⁻¹ · t).
	m.SetAt(0, 2, -(i00*m02 + i01*m12))
	m.SetAt(1, 2, -(i10*m02 + i11*m12))

	return true
}

// Inverse returns the inverted matrix by value. It does NOT expose the
// degeneracy signal: on a singular input the receiver's value is returned
// unchanged and unreliable. Callers needing safety must use MakeInverse.
func (m Matrix[T, L]) Inverse() Matrix[T, L] {
	inv := m
	inv.MakeInverse()

	return inv
}

// Mul returns the composition lhs × rhs: the transform that applies rhs
// first, then lhs. Only the six stored elements are computed: the implicit
// row multiplies through to (0, 0, 1) by construction, and the translation
// column picks up lhs's translation as its third term.
// Complexity: O(1), 18 multiply-adds, no allocation.
func Mul[T num.Scalar, L Layout](lhs, rhs Matrix[T, L]) Matrix[T, L] {
	var out Matrix[T, L]
	var r, c int
	var v T
	for r = 0; r < 2; r++ { // logical sparse rows
		for c = 0; c < 3; c++ { // logical sparse cols
			v = lhs.At(r, 0)*rhs.At(0, c) + lhs.At(r, 1)*rhs.At(1, c)
			if c == 2 {
				v += lhs.At(r, 2) // rhs's implicit (2,2) element is 1
			}
			out.SetAt(r, c, v)
		}
	}

	return out
}

// MulAssign replaces m with Mul(m, rhs).
func (m *Matrix[T, L]) MulAssign(rhs Matrix[T, L]) {
	*m = Mul(*m, rhs)
}

// SetPosition writes the translation sub-vector.
func (m *Matrix[T, L]) SetPosition(p vec2.Vec2[T]) {
	m.SetAt(0, 2, p.X)
	m.SetAt(1, 2, p.Y)
}

// Position reads the translation sub-vector.
func (m Matrix[T, L]) Position() vec2.Vec2[T] {
	return vec2.New(m.At(0, 2), m.At(1, 2))
}

// String implements fmt.Stringer, printing the logical column-vector form
// including the implicit bottom row.
func (m Matrix[T, L]) String() string {
	var sb strings.Builder
	for r := 0; r < 2; r++ {
		fmt.Fprintf(&sb, "[%v, %v, %v]\n", m.At(r, 0), m.At(r, 1), m.At(r, 2))
	}
	sb.WriteString("[0, 0, 1]\n")

	return sb.String()
}
