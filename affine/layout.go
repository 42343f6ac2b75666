// SPDX-License-Identifier: MIT
// Package affine: compile-time layout strategies.
//
// Purpose:
//   - Encode the two orthogonal configuration axes — storage major order and
//     vector convention — as zero-size strategy types picked as a type
//     parameter, so index translation specializes at compile time instead of
//     branching at run time.
//
// Determinism & Performance:
//   - Every method returns a constant; with a concrete L the compiler folds
//     Index into a single multiply-add and eliminates the convention branch.

package affine

// Logical shape of the full affine matrix and its sparse storage.
const (
	// Rows is the logical row count of the full 3×3 matrix.
	Rows = 3
	// Cols is the logical column count of the full 3×3 matrix.
	Cols = 3
	// Elements is the logical element count (Rows * Cols).
	Elements = Rows * Cols
	// SparseElements is the stored element count; the implicit (0,0,1)
	// row/column is never materialized.
	SparseElements = 6
)

// Layout maps sparse (row, col) coordinates onto the 6-element flat storage
// and declares which dimension is implicit. Implementations are zero-size
// struct types; instantiate Matrix with one of them.
//
// The sparse coordinate space depends on the vector convention:
// column vectors store 2 rows × 3 cols, row vectors store 3 rows × 2 cols.
type Layout interface {
	// SparseRows returns the stored row count (2, or 3 under row vectors).
	SparseRows() int
	// SparseCols returns the stored column count (3, or 2 under row vectors).
	SparseCols() int
	// RowVectors reports whether the layout composes with row vectors
	// (v' = v·M) instead of column vectors (v' = M·v).
	RowVectors() bool
	// Index translates sparse (row, col) into the flat storage offset.
	// Callers must pre-validate the ranges; Index itself never checks.
	Index(row, col int) int
}

// ColMajor is the default layout: column-major storage, column vectors.
// Flat order: x1 x2 y1 y2 z1 z2.
type ColMajor struct{}

// SparseRows returns 2.
func (ColMajor) SparseRows() int { return 2 }

// SparseCols returns 3.
func (ColMajor) SparseCols() int { return 3 }

// RowVectors returns false.
func (ColMajor) RowVectors() bool { return false }

// Index returns col*2 + row.
func (ColMajor) Index(row, col int) int { return col*2 + row }

// RowMajor stores the column-vector form row by row.
// Flat order: x1 y1 z1 x2 y2 z2.
type RowMajor struct{}

// SparseRows returns 2.
func (RowMajor) SparseRows() int { return 2 }

// SparseCols returns 3.
func (RowMajor) SparseCols() int { return 3 }

// RowVectors returns false.
func (RowMajor) RowVectors() bool { return false }

// Index returns row*3 + col.
func (RowMajor) Index(row, col int) int { return row*3 + col }

// ColMajorRowVec uses row vectors with column-major storage.
// The stored block is the transpose of the column-vector form, so the flat
// order coincides with RowMajor's: x1 y1 z1 x2 y2 z2.
type ColMajorRowVec struct{}

// SparseRows returns 3.
func (ColMajorRowVec) SparseRows() int { return 3 }

// SparseCols returns 2.
func (ColMajorRowVec) SparseCols() int { return 2 }

// RowVectors returns true.
func (ColMajorRowVec) RowVectors() bool { return true }

// Index returns col*3 + row.
func (ColMajorRowVec) Index(row, col int) int { return col*3 + row }

// RowMajorRowVec uses row vectors with row-major storage.
// Flat order: x1 x2 y1 y2 z1 z2 (coinciding with ColMajor's).
type RowMajorRowVec struct{}

// SparseRows returns 3.
func (RowMajorRowVec) SparseRows() int { return 3 }

// SparseCols returns 2.
func (RowMajorRowVec) SparseCols() int { return 2 }

// RowVectors returns true.
func (RowMajorRowVec) RowVectors() bool { return true }

// Index returns row*2 + col.
func (RowMajorRowVec) Index(row, col int) int { return row*2 + col }
