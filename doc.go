// Package pxpmatrix is a small dense matrix and vector algebra toolkit
// for exact work on small matrices.
//
// What is in the box?
//
//	• Grid: an immutable rows×cols table whose cells are numbers or missing
//	• Laplace (cofactor) determinants, cofactor and adjugate grids
//	• Inversion as adjugate / det, with IEEE-754 results for singular input
//	• Transpose, scale, round, map, add, subtract and multiply
//	• Vector: inner/outer products, sum, mean and variance
//	• An aligned text rendering with optional row and column labels
//
// Under the hood, everything is organized under these packages:
//
//	matrix/            Grid, Cell, Vector, the determinant Engine and rendering
//	internal/gridio/   YAML/JSON grid documents (null cells are missing)
//	internal/logging/  zap logger construction for the command
//	internal/cli/      cobra commands and viper configuration
//	cmd/pxmatrix/      the pxmatrix binary
//	examples/          a runnable playground
//
// Quick example:
//
//	A := matrix.MustNew([][]any{{5, 8}, {7, 9}})
//	d, _ := A.Det() // -11
//	fmt.Print(A)
//	// 5 8
//	// 7 9
//
// Cofactor expansion costs O(n!) and is meant for small matrices; the
// Engine carries an optional LU fast path (gonum) and a dimension ceiling.
package pxpmatrix
