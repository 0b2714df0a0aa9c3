// SPDX-License-Identifier: MIT

// Package matrix - Vector: a single-column Grid plus vector-only reductions.
//
// Vector wraps a *Grid of width 1 instead of extending it. Products are
// expressed through Grid kernels (Transpose, Multiply); reductions walk the
// column directly. Missing cells are strict: every reduction fails with
// ErrMissingValue.

package matrix

import "github.com/pkg/errors"

const (
	ctxNewVector = "NewVector"
	opInner      = "Inner"
	opOuter      = "Outer"
	opDot        = "Dot"
	opSum        = "Sum"
	opMean       = "Mean"
	opVariance   = "Variance"
	opVariation  = "Variation"
	ctxVectorGet = "Vector.Get"
)

// Vector is a column of scalars backed by an immutable width-1 Grid.
type Vector struct {
	g *Grid
}

// NewVector builds a Vector from loosely typed values (see New for the
// accepted value types). An empty input has no column and fails with ErrShape.
func NewVector(values []any, opts ...Option) (*Vector, error) {
	rows := make([][]any, len(values))
	for i, v := range values {
		rows[i] = []any{v}
	}
	g, err := New(rows, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxNewVector, err)
	}
	if g.c != 1 {
		return nil, matrixErrorf(ctxNewVector, errors.WithMessagef(ErrShape, "width %d, want 1", g.c))
	}

	return &Vector{g: g}, nil
}

// VectorFromFloats builds a fully numeric Vector.
func VectorFromFloats(values []float64, opts ...Option) (*Vector, error) {
	boxed := make([]any, len(values))
	for i, v := range values {
		boxed[i] = v
	}

	return NewVector(boxed, opts...)
}

// Len returns the number of entries.
func (v *Vector) Len() int { return v.g.r }

// Grid returns the backing Len()×1 grid. Grids are immutable, so sharing is safe.
func (v *Vector) Grid() *Grid { return v.g }

// Get returns entry i or ErrOutOfRange.
func (v *Vector) Get(i int) (Cell, error) {
	if i < 0 || i >= v.g.r {
		return Missing(), matrixErrorf(ctxVectorGet, errors.WithMessagef(ErrOutOfRange, "index %d of %d", i, v.g.r))
	}

	return v.g.cells[i], nil
}

// Inner returns vᵀ·o as a 1×1 grid. Lengths must match (ErrShape).
func (v *Vector) Inner(o *Vector) (*Grid, error) {
	out, err := v.g.transpose().Multiply(o.g)
	if err != nil {
		return nil, matrixErrorf(opInner, err)
	}

	return out, nil
}

// Outer returns v·oᵀ, a Len()×o.Len() grid.
func (v *Vector) Outer(o *Vector) (*Grid, error) {
	out, err := v.g.Multiply(o.g.transpose())
	if err != nil {
		return nil, matrixErrorf(opOuter, err)
	}

	return out, nil
}

// Dot returns the scalar inner product.
func (v *Vector) Dot(o *Vector) (float64, error) {
	in, err := v.Inner(o)
	if err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	return in.cells[0].v, nil
}

// Sum adds all entries in index order.
func (v *Vector) Sum() (float64, error) {
	if err := ValidateComplete(v.g); err != nil {
		return 0, matrixErrorf(opSum, err)
	}

	return v.sum(), nil
}

// sum is the unchecked kernel; the vector must be complete.
func (v *Vector) sum() float64 {
	s := ZeroSum
	for _, cell := range v.g.cells {
		s += cell.v
	}

	return s
}

// Mean returns Sum / (Len − ddof). ddof = 0 is the population mean.
// Errors: ErrMissingValue, ErrShape when Len − ddof ≤ 0.
func (v *Vector) Mean(ddof int) (float64, error) {
	s, err := v.Sum()
	if err != nil {
		return 0, matrixErrorf(opMean, err)
	}
	count := v.Len() - ddof
	if count <= 0 {
		return 0, matrixErrorf(opMean, errors.WithMessagef(ErrShape, "%d entries with ddof %d", v.Len(), ddof))
	}

	return s / float64(count), nil
}

// Variance returns Σ(xᵢ − mean)² / (Len − ddof). ddof = 1 gives the sample variance.
// Errors: ErrMissingValue, ErrShape when Len − ddof ≤ 0.
func (v *Vector) Variance(ddof int) (float64, error) {
	sq, err := v.squaredDeviations()
	if err != nil {
		return 0, matrixErrorf(opVariance, err)
	}
	out, err := sq.Mean(ddof)
	if err != nil {
		return 0, matrixErrorf(opVariance, err)
	}

	return out, nil
}

// Variation returns the sum of squared deviations from the mean, Σ(xᵢ − mean)².
func (v *Vector) Variation() (float64, error) {
	sq, err := v.squaredDeviations()
	if err != nil {
		return 0, matrixErrorf(opVariation, err)
	}

	return sq.sum(), nil
}

// squaredDeviations maps every entry to (x − mean)², mean taken with ddof 0.
func (v *Vector) squaredDeviations() (*Vector, error) {
	mean, err := v.Mean(0)
	if err != nil {
		return nil, err
	}
	g, err := v.g.Map(func(x float64) float64 {
		d := x - mean
		return d * d
	})
	if err != nil {
		return nil, err
	}

	return &Vector{g: g}, nil
}

// String renders the backing grid.
func (v *Vector) String() string { return v.g.String() }
