// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for grid kernels.
//   • Integer-valued fixtures keep every cofactor expansion exact in float64,
//     so algebraic identities can be asserted with exact equality.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/leonickl/pxp-matrix/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// goldenDet is det(goldenA), pinned from an independent exact computation.
const goldenDet = 1777.0

// closeTol is the tolerance for results that pass through 1/det.
const closeTol = 1e-9

// goldenA and goldenB are the 4×4 playground matrices.
var (
	goldenA = [][]float64{
		{5, 8, 6, 3},
		{7, 9, 1, 3},
		{2, 6, 8, 7},
		{6, 0, 5, 7},
	}
	goldenB = [][]float64{
		{4, 6, 8, 3},
		{5, 0, 9, 4},
		{2, 5, 1, 5},
		{1, 4, 5, 0},
	}
)

// mustFloats builds a Grid from float rows or fails the test.
func mustFloats(t testing.TB, rows [][]float64) *matrix.Grid {
	t.Helper()
	g, err := matrix.FromFloats(rows)
	require.NoError(t, err)

	return g
}

// randomIntGrid returns an r×c grid of integers in [-9, 9] from a fixed seed.
// Determinants of such grids up to 6×6 stay far below 2^53, so Laplace
// expansion is exact.
func randomIntGrid(t testing.TB, r, c int, seed int64) *matrix.Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = float64(rng.Intn(19) - 9)
		}
	}

	return mustFloats(t, rows)
}

// floats extracts the numeric rows of a complete grid.
func floats(t testing.TB, g *matrix.Grid) [][]float64 {
	t.Helper()
	out, err := g.Floats()
	require.NoError(t, err)

	return out
}

// gonumDense copies a complete grid into a gonum matrix.
func gonumDense(t testing.TB, g *matrix.Grid) *mat.Dense {
	t.Helper()
	r, c := g.Dim()
	data := make([]float64, 0, r*c)
	for _, row := range floats(t, g) {
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data)
}

// gonumDet is the independent LU-based reference determinant.
func gonumDet(t testing.TB, g *matrix.Grid) float64 {
	t.Helper()

	return mat.Det(gonumDense(t, g))
}

// requireClose asserts equal shapes and element-wise |want−got| ≤ tol.
func requireClose(t testing.TB, want, got *matrix.Grid, tol float64) {
	t.Helper()
	ok, err := want.AllClose(got, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%s\ngot:\n%s", want, got)
}

// requireEqualGrid asserts exact equality of shape and cells.
func requireEqualGrid(t testing.TB, want, got *matrix.Grid) {
	t.Helper()
	require.Truef(t, want.Equal(got), "want:\n%s\ngot:\n%s", want, got)
}
