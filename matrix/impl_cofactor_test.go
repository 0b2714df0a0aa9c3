// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/leonickl/pxp-matrix/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var small3 = [][]float64{
	{1, 2, 3},
	{0, 4, 5},
	{1, 0, 6},
}

func TestCofactors_Small(t *testing.T) {
	cof, err := mustFloats(t, small3).Cofactors()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{24, 5, -4}, {-12, 3, 2}, {-2, -5, 4}}, floats(t, cof))

	adj, err := mustFloats(t, small3).Adjugate()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{24, -12, -2}, {5, 3, -5}, {-4, 2, 4}}, floats(t, adj))
}

func TestCofactors_Golden(t *testing.T) {
	cof, err := mustFloats(t, goldenA).Cofactors()
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{237, -61, 438, -516},
		{-6, 159, -326, 238},
		{-307, 139, -95, 331},
		{208, -181, 47, 42},
	}, floats(t, cof))
}

func TestCofactors_OneByOne(t *testing.T) {
	cof, err := mustFloats(t, [][]float64{{9}}).Cofactors()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1}}, floats(t, cof))
}

// TestAdjugate_Identity checks A·adj(A) == det(A)·I on exact integer input.
func TestAdjugate_Identity(t *testing.T) {
	for n := 2; n <= 5; n++ {
		g := randomIntGrid(t, n, n, int64(55+n))
		adj, err := g.Adjugate()
		require.NoError(t, err)
		d, err := g.Det()
		require.NoError(t, err)
		prod, err := g.Multiply(adj)
		require.NoError(t, err)
		id, err := matrix.Identity(n)
		require.NoError(t, err)
		want, err := id.Scale(d)
		require.NoError(t, err)
		requireEqualGrid(t, want, prod)
	}
}

func TestInvert_Golden(t *testing.T) {
	inv, err := matrix.Inverse(mustFloats(t, goldenA))
	require.NoError(t, err)

	rounded, err := inv.Round(3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{0.133, -0.003, -0.173, 0.117},
		{-0.034, 0.089, 0.078, -0.102},
		{0.246, -0.183, -0.053, 0.026},
		{-0.29, 0.134, 0.186, 0.024},
	}, floats(t, rounded))

	v, err := inv.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 237.0/goldenDet, v, 1e-15)
}

func TestInvert_MatchesGonum(t *testing.T) {
	for n := 2; n <= 5; n++ {
		g := randomIntGrid(t, n, n, int64(900+n))
		d, err := g.Det()
		require.NoError(t, err)
		if d == 0 {
			continue
		}
		inv, err := g.Invert()
		require.NoError(t, err)

		var ref mat.Dense
		require.NoError(t, ref.Inverse(gonumDense(t, g)))
		want := make([][]float64, n)
		for i := range want {
			want[i] = mat.Row(nil, i, &ref)
		}
		requireClose(t, mustFloats(t, want), inv, 1e-8)
	}
}

func TestInvert_RoundTripIdentity(t *testing.T) {
	A := mustFloats(t, goldenA)
	inv, err := A.Invert()
	require.NoError(t, err)
	prod, err := A.Multiply(inv)
	require.NoError(t, err)
	id, err := matrix.IdentityLike(A)
	require.NoError(t, err)
	requireClose(t, id, prod, closeTol)

	rounded, err := prod.Round(9)
	require.NoError(t, err)
	requireEqualGrid(t, id, rounded)
}

func TestInvert_OneByOne(t *testing.T) {
	inv, err := mustFloats(t, [][]float64{{5}}).Invert()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0.2}}, floats(t, inv))
}

func TestInvert_SingularYieldsNonFinite(t *testing.T) {
	inv, err := mustFloats(t, [][]float64{{1, 2}, {2, 4}}).Invert()
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{math.Inf(1), math.Inf(-1)},
		{math.Inf(-1), math.Inf(1)},
	}, floats(t, inv))

	inv, err = mustFloats(t, [][]float64{{0, 0}, {0, 0}}).Invert()
	require.NoError(t, err)
	for _, row := range floats(t, inv) {
		for _, v := range row {
			require.True(t, math.IsNaN(v))
		}
	}
}

func TestInvert_StrictSingular(t *testing.T) {
	strict := matrix.NewEngine(matrix.WithStrictSingular())
	_, err := strict.Invert(mustFloats(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	inv, err := strict.Invert(mustFloats(t, [][]float64{{2, 0}, {0, 4}}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0.5, 0}, {0, 0.25}}, floats(t, inv))
}

func TestInvert_MemoMatchesPlain(t *testing.T) {
	A := mustFloats(t, goldenA)
	want, err := A.Invert()
	require.NoError(t, err)
	got, err := matrix.NewEngine(matrix.WithMemo()).Invert(A)
	require.NoError(t, err)
	requireEqualGrid(t, want, got)
}

func TestCofactorsInvert_Errors(t *testing.T) {
	rect := mustFloats(t, [][]float64{{1, 2}})
	_, err := rect.Cofactors()
	require.ErrorIs(t, err, matrix.ErrShape)
	_, err = rect.Adjugate()
	require.ErrorIs(t, err, matrix.ErrShape)
	_, err = rect.Invert()
	require.ErrorIs(t, err, matrix.ErrShape)

	holey, err := matrix.New([][]any{{1, nil}, {3, 4}})
	require.NoError(t, err)
	_, err = holey.Invert()
	require.ErrorIs(t, err, matrix.ErrMissingValue)

	_, err = matrix.NewEngine(matrix.WithMaxDimension(2)).Cofactors(mustFloats(t, goldenA))
	require.ErrorIs(t, err, matrix.ErrTooLarge)
}
