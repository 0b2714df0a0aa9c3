// SPDX-License-Identifier: MIT

// Package matrix is a small dense matrix/vector algebra library.
//
// The matrix package provides:
//
//   - Grid: an immutable rows×cols table of Cells. A Cell is either a real
//     number or explicitly missing; missing is never the same as zero.
//   - Construction with validation (New, FromFloats, FromCells, FromFlat)
//     and optional row/column labels used only for display.
//   - Elementwise and structural operations: Transpose, Scale, Round, Map,
//     Add, Subtract, Multiply. Every operation returns a fresh Grid.
//   - An exact determinant engine based on Laplace (cofactor) expansion
//     along the first row, the cofactor/adjugate builder on top of it, and
//     inversion as adjugate scaled by 1/det.
//   - Vector: a single-column Grid with inner/outer products and the
//     sum/mean/variance reductions.
//
// Cofactor expansion is exponential (O(n!)) and is intended for the small
// matrices this package targets. Engine offers an opt-in LU fast path for
// larger inputs and a ceiling on the recursive dimension.
//
// Missing cells follow a strict policy: any arithmetic that needs the value
// of a missing cell fails with ErrMissingValue. Structural operations
// (Transpose, Without, Row, Col, RawRows) move missing cells untouched.
//
// Quick example:
//
//	A := matrix.MustNew([][]any{{5, 8}, {7, 9}})
//	d, _ := A.Det()      // -11
//	inv, _ := A.Invert() // A⁻¹
//	r, _ := inv.Round(2)
//	fmt.Print(r)
package matrix
