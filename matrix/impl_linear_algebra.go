// SPDX-License-Identifier: MIT
// Package matrix provides the structural and arithmetic kernels on Grid:
// transpose, element-wise addition and subtraction, matrix multiplication
// and scalar scaling. All kernels perform strict fail-fast validation and
// return a fresh, unlabeled Grid; operands are never mutated.
//
// Missing cells:
//   - Transpose moves missing cells without reading them.
//   - Add, Subtract, Multiply and Scale fail with ErrMissingValue when an
//     operand holds a missing cell.

package matrix

import "github.com/pkg/errors"

// ZeroSum is the initial value of every accumulation (dot products, Laplace sums).
const ZeroSum = 0.0

// ZeroPivot is the determinant value that marks a singular grid.
const ZeroPivot = 0.0

// negateFactor turns Add into Subtract.
const negateFactor = -1.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSubtract  = "Subtract"
	opMultiply  = "Multiply"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opDet       = "Det"
	opCofactors = "Cofactors"
	opAdjugate  = "Adjugate"
	opInvert    = "Invert"
	opAsVector  = "AsVector"
)

// Transpose returns gᵀ: cell (i,j) of the result is cell (j,i) of g.
// Complexity: O(r*c).
func (g *Grid) Transpose() (*Grid, error) {
	if err := ValidateNotNil(g); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return g.transpose(), nil
}

// T is shorthand for Transpose.
func (g *Grid) T() (*Grid, error) { return g.Transpose() }

// transpose is the unchecked kernel: data[i*c + j] → out[j*r + i].
func (g *Grid) transpose() *Grid {
	rows, cols := g.r, g.c
	cells := make([]Cell, len(g.cells))
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			cells[j*rows+i] = g.cells[baseSrc+j]
		}
	}
	if cols == 0 {
		// An r×0 grid transposes to the empty grid.
		return newGrid(0, 0, cells)
	}

	return newGrid(cols, rows, cells)
}

// Scale returns s·g.
// Errors: ErrNilGrid, ErrMissingValue.
// Complexity: O(r*c).
func (g *Grid) Scale(s float64) (*Grid, error) {
	if err := ValidateComplete(g); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return g.scale(s), nil
}

// scale is the unchecked kernel; g must be complete.
func (g *Grid) scale(s float64) *Grid {
	cells := make([]Cell, len(g.cells))
	for idx, cell := range g.cells {
		cells[idx] = Value(cell.v * s)
	}

	return newGrid(g.r, g.c, cells)
}

// Add returns g + other.
// Errors: ErrNilGrid, ErrShape (dimensions differ), ErrMissingValue.
// Complexity: O(r*c).
func (g *Grid) Add(other *Grid) (*Grid, error) {
	out, err := g.add(other)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return out, nil
}

// Subtract returns g − other, defined as g + (−1)·other.
// Errors: ErrNilGrid, ErrShape, ErrMissingValue.
func (g *Grid) Subtract(other *Grid) (*Grid, error) {
	if err := ValidateSameShape(g, other); err != nil {
		return nil, matrixErrorf(opSubtract, err)
	}
	neg, err := other.Scale(negateFactor)
	if err != nil {
		return nil, matrixErrorf(opSubtract, err)
	}
	out, err := g.add(neg)
	if err != nil {
		return nil, matrixErrorf(opSubtract, err)
	}

	return out, nil
}

// add validates shape and completeness, then sums in a single flat loop.
func (g *Grid) add(other *Grid) (*Grid, error) {
	if err := ValidateSameShape(g, other); err != nil {
		return nil, err
	}
	if err := ValidateComplete(g); err != nil {
		return nil, err
	}
	if err := ValidateComplete(other); err != nil {
		return nil, err
	}
	cells := make([]Cell, len(g.cells))
	for idx := range g.cells {
		cells[idx] = Value(g.cells[idx].v + other.cells[idx].v)
	}

	return newGrid(g.r, g.c, cells), nil
}

// Multiply returns the matrix product g × other.
// Implementation:
//   - Stage 1: ValidateMulCompatible (g.Width == other.Height), both complete.
//   - Stage 2: cell (i,j) = Σ_k g[i][k]·other[k][j], k ascending.
//
// Errors:
//   - ErrNilGrid, ErrShape, ErrMissingValue.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (g *Grid) Multiply(other *Grid) (*Grid, error) {
	if err := ValidateMulCompatible(g, other); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	if err := ValidateComplete(g); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	if err := ValidateComplete(other); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	rows, inner, cols := g.r, g.c, other.c
	cells := make([]Cell, rows*cols)
	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				sum += g.cells[i*inner+k].v * other.cells[k*cols+j].v
			}
			cells[i*cols+j] = Value(sum)
		}
	}

	return newGrid(rows, cols, cells), nil
}

// Equal reports whether g and other have the same dimensions and cells.
// Missing equals missing; labels are ignored. NaN never equals NaN.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.r != other.r || g.c != other.c {
		return false
	}
	for idx, a := range g.cells {
		b := other.cells[idx]
		if a.ok != b.ok || (a.ok && a.v != b.v) {
			return false
		}
	}

	return true
}

// AsVector views a single-row or single-column grid as a Vector.
// A width-1 grid becomes its column; a height-1 grid becomes its row.
// Errors: ErrNilGrid, ErrShape.
func (g *Grid) AsVector() (*Vector, error) {
	if err := ValidateNotNil(g); err != nil {
		return nil, matrixErrorf(opAsVector, err)
	}
	switch {
	case g.c == 1:
		return &Vector{g: newGrid(g.r, 1, append([]Cell(nil), g.cells...))}, nil
	case g.r == 1:
		return &Vector{g: g.transpose()}, nil
	default:
		return nil, matrixErrorf(opAsVector, errors.WithMessagef(ErrShape, "%dx%d is not a vector", g.r, g.c))
	}
}
