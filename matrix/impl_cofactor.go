// SPDX-License-Identifier: MIT

package matrix

// Cofactors builds the cofactor grid: cell (i,j) = (−1)^(i+j) · det(minor(i,j)).
// Implementation:
//   - Stage 1: ValidateSquareComplete; ceiling check on the minor dimension n−1.
//   - Stage 2: one determinant per cell in fixed i→j order. With WithMemo the
//     memo table is shared across all cells of this call.
//
// Errors:
//   - ErrNilGrid, ErrShape, ErrMissingValue, ErrTooLarge.
//
// Complexity:
//   - Time O(n² · (n−1)!), the dominant cost of inversion. Space O(n²) plus
//     O(n²) per recursion level.
//
// Notes:
//   - The 1×1 grid has cofactor grid [[1]]; the empty grid has an empty one.
func (e *Engine) Cofactors(g *Grid) (*Grid, error) {
	if err := ValidateSquareComplete(g); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	n := g.r
	if n > 0 {
		if err := e.checkCeiling(n - 1); err != nil {
			return nil, matrixErrorf(opCofactors, err)
		}
	}

	memo := e.newMemo()
	cells := make([]Cell, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			cells[i*n+j] = Value(laplaceSign(i+j) * e.det(g.minor(i, j), memo))
		}
	}

	return newGrid(n, n, cells), nil
}

// Adjugate returns the transpose of the cofactor grid.
func (e *Engine) Adjugate(g *Grid) (*Grid, error) {
	cof, err := e.Cofactors(g)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return cof.transpose(), nil
}

// Invert returns adj(g) scaled by 1/det(g).
// Implementation:
//   - Stage 1: d = Det(g) (validates shape, completeness and ceiling).
//   - Stage 2: with WithStrictSingular, d == 0 is ErrSingular.
//   - Stage 3: every cell of Adjugate(g) is multiplied by 1/d.
//
// Behavior highlights:
//   - By default d == 0 is not an error: 1/d is +Inf and cells become ±Inf
//     or NaN under IEEE-754 rules.
//
// Errors:
//   - ErrNilGrid, ErrShape, ErrMissingValue, ErrTooLarge, ErrSingular (strict only).
//
// Complexity:
//   - Time O(n! · n), same order as Cofactors.
func (e *Engine) Invert(g *Grid) (*Grid, error) {
	d, err := e.Det(g)
	if err != nil {
		return nil, matrixErrorf(opInvert, err)
	}
	if d == ZeroPivot && e.opts.strictSingular {
		return nil, matrixErrorf(opInvert, ErrSingular)
	}
	adj, err := e.Adjugate(g)
	if err != nil {
		return nil, matrixErrorf(opInvert, err)
	}

	return adj.scale(1 / d), nil
}

// Cofactors computes the cofactor grid with the default engine.
func (g *Grid) Cofactors() (*Grid, error) { return defaultEngine.Cofactors(g) }

// Adjugate computes the adjugate with the default engine.
func (g *Grid) Adjugate() (*Grid, error) { return defaultEngine.Adjugate(g) }

// Invert computes the inverse with the default engine.
func (g *Grid) Invert() (*Grid, error) { return defaultEngine.Invert(g) }
