// Package matrix_test contains unit tests for the structural and arithmetic
// Grid kernels: Transpose, Scale, Add, Subtract, Multiply, Equal, AsVector.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/leonickl/pxp-matrix/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// ---------- Transpose ----------

func TestTranspose_Rectangular(t *testing.T) {
	t.Parallel()

	g := mustFloats(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	gt, err := matrix.T(g)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, floats(t, gt))

	back, err := gt.T()
	require.NoError(t, err)
	requireEqualGrid(t, g, back)
}

func TestTranspose_MovesMissing(t *testing.T) {
	t.Parallel()

	g, err := matrix.New([][]any{{1, nil}, {3, 4}})
	require.NoError(t, err)
	gt, err := g.Transpose()
	require.NoError(t, err)
	c, err := gt.Get(1, 0)
	require.NoError(t, err)
	if !c.IsMissing() {
		t.Fatalf("cell (1,0) of the transpose: want missing, got %v", c)
	}
}

func TestTranspose_Degenerate(t *testing.T) {
	t.Parallel()

	empty, err := matrix.New(nil)
	require.NoError(t, err)
	et, err := empty.Transpose()
	require.NoError(t, err)
	require.Zero(t, et.Height())

	noCols, err := matrix.New([][]any{{}, {}})
	require.NoError(t, err)
	nt, err := noCols.Transpose()
	require.NoError(t, err)
	r, c := nt.Dim()
	require.Zero(t, r)
	require.Zero(t, c)
}

// ---------- Scale / Add / Subtract ----------

func TestScale(t *testing.T) {
	t.Parallel()

	g := mustFloats(t, [][]float64{{1, -2}, {0.5, 4}})
	s, err := matrix.ScaleBy(g, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, -6}, {1.5, 12}}, floats(t, s))

	holey, err := matrix.New([][]any{{1, nil}})
	require.NoError(t, err)
	_, err = holey.Scale(2)
	require.ErrorIs(t, err, matrix.ErrMissingValue)
}

func TestAdd_Correctness(t *testing.T) {
	t.Parallel()

	const rows, cols = 6, 6
	var i, j int
	a := make([][]float64, rows)
	b := make([][]float64, rows)
	for i = 0; i < rows; i++ {
		a[i] = make([]float64, cols)
		b[i] = make([]float64, cols)
		for j = 0; j < cols; j++ {
			a[i][j] = float64(i + j)
			b[i][j] = float64(10 - (i + j))
		}
	}

	S, err := matrix.Sum(mustFloats(t, a), mustFloats(t, b))
	if err != nil {
		t.Fatalf("matrix.Sum: want err == nil, got: %v", err)
	}
	// Expect constant 10 everywhere
	for i, row := range floats(t, S) {
		for j, v := range row {
			if v != 10 {
				t.Fatalf("S[%d,%d]: want 10, got %v", i, j, v)
			}
		}
	}
}

func TestSubtract_IsAddOfNegation(t *testing.T) {
	t.Parallel()

	A := mustFloats(t, goldenA)
	B := mustFloats(t, goldenB)

	d, err := matrix.Diff(A, B)
	require.NoError(t, err)
	negB, err := B.Scale(-1)
	require.NoError(t, err)
	want, err := A.Add(negB)
	require.NoError(t, err)
	requireEqualGrid(t, want, d)

	zero, err := A.Subtract(A)
	require.NoError(t, err)
	z, err := matrix.ZerosLike(A)
	require.NoError(t, err)
	requireEqualGrid(t, z, zero)
}

func TestAddSubtract_Errors(t *testing.T) {
	t.Parallel()

	a := mustFloats(t, [][]float64{{1, 2}})
	b := mustFloats(t, [][]float64{{1}, {2}})
	_, err := a.Add(b)
	require.ErrorIs(t, err, matrix.ErrShape)
	_, err = a.Subtract(b)
	require.ErrorIs(t, err, matrix.ErrShape)
	_, err = a.Add(nil)
	require.ErrorIs(t, err, matrix.ErrNilGrid)

	holey, err := matrix.New([][]any{{nil, 2}})
	require.NoError(t, err)
	_, err = a.Add(holey)
	require.ErrorIs(t, err, matrix.ErrMissingValue)
	_, err = holey.Subtract(a)
	require.ErrorIs(t, err, matrix.ErrMissingValue)
}

// ---------- Multiply ----------

func TestMultiply_Golden(t *testing.T) {
	t.Parallel()

	P, err := matrix.Product(mustFloats(t, goldenA), mustFloats(t, goldenB))
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{75, 72, 133, 77},
		{78, 59, 153, 62},
		{61, 80, 113, 70},
		{41, 89, 88, 43},
	}, floats(t, P))
}

func TestMultiply_Shapes(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ r, n, c int }{{1, 3, 1}, {3, 1, 3}, {2, 4, 3}, {4, 2, 2}} {
		t.Run(fmt.Sprintf("%dx%d*%dx%d", tc.r, tc.n, tc.n, tc.c), func(t *testing.T) {
			a := randomIntGrid(t, tc.r, tc.n, 3)
			b := randomIntGrid(t, tc.n, tc.c, 4)
			p, err := a.Multiply(b)
			require.NoError(t, err)
			r, c := p.Dim()
			require.Equal(t, tc.r, r)
			require.Equal(t, tc.c, c)

			var ref mat.Dense
			ref.Mul(gonumDense(t, a), gonumDense(t, b))
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					v, err := p.At(i, j)
					require.NoError(t, err)
					require.Equal(t, ref.At(i, j), v)
				}
			}
		})
	}
}

func TestMultiply_Identity(t *testing.T) {
	t.Parallel()

	A := mustFloats(t, goldenA)
	id, err := matrix.Identity(4)
	require.NoError(t, err)
	left, err := id.Multiply(A)
	require.NoError(t, err)
	right, err := A.Multiply(id)
	require.NoError(t, err)
	requireEqualGrid(t, A, left)
	requireEqualGrid(t, A, right)
}

// TestMultiply_TransposeProduct checks (AB)ᵀ == BᵀAᵀ bit for bit: both sides
// accumulate the same products in the same order.
func TestMultiply_TransposeProduct(t *testing.T) {
	t.Parallel()

	a := randomIntGrid(t, 3, 4, 21)
	b := randomIntGrid(t, 4, 2, 22)
	ab := matrix.MustGrid(a.Multiply(b))
	lhs := matrix.MustGrid(ab.Transpose())
	rhs := matrix.MustGrid(matrix.MustGrid(b.T()).Multiply(matrix.MustGrid(a.T())))
	requireEqualGrid(t, lhs, rhs)
}

func TestMultiply_Errors(t *testing.T) {
	t.Parallel()

	a := mustFloats(t, [][]float64{{1, 2, 3}})
	_, err := a.Multiply(a)
	require.ErrorIs(t, err, matrix.ErrShape)

	holey, err := matrix.New([][]any{{1}, {nil}, {3}})
	require.NoError(t, err)
	_, err = a.Multiply(holey)
	require.ErrorIs(t, err, matrix.ErrMissingValue)
}

func TestMustGrid_Panics(t *testing.T) {
	t.Parallel()

	a := mustFloats(t, [][]float64{{1, 2}})
	require.Panics(t, func() { matrix.MustGrid(a.Multiply(a)) })
}

// ---------- Equal / AsVector ----------

func TestEqual(t *testing.T) {
	t.Parallel()

	a := matrix.MustNew([][]any{{1, nil}})
	b := matrix.MustNew([][]any{{1, nil}}, matrix.WithColumnLabels("x", "y"))
	c := matrix.MustNew([][]any{{1, 0}})
	require.True(t, a.Equal(b), "labels are ignored")
	require.False(t, a.Equal(c), "missing is not zero")
	require.False(t, a.Equal(matrix.MustNew([][]any{{1}, {nil}})))
	require.False(t, a.Equal(nil))

	var n1, n2 *matrix.Grid
	require.True(t, n1.Equal(n2))
}

func TestAsVector(t *testing.T) {
	t.Parallel()

	col := mustFloats(t, [][]float64{{1}, {2}, {3}})
	v, err := col.AsVector()
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())

	row := mustFloats(t, [][]float64{{4, 5}})
	v, err = row.AsVector()
	require.NoError(t, err)
	require.Equal(t, 2, v.Len())
	x, err := v.Get(1)
	require.NoError(t, err)
	require.Equal(t, matrix.Value(5), x)

	_, err = mustFloats(t, goldenA).AsVector()
	require.ErrorIs(t, err, matrix.ErrShape)
}
