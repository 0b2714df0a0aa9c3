// SPDX-License-Identifier: MIT

package matrix

import "github.com/pkg/errors"

const ctxWithout = "Without"

// Without returns the minor of g: the (h−1)×(w−1) grid left after deleting
// row `row` and column `col`. Relative order of the remaining rows and
// columns is preserved; labels are not carried over.
//
// Errors:
//   - ErrNilGrid, ErrOutOfRange.
//
// Complexity:
//   - Time O(r*c), Space O((r−1)*(c−1)).
func (g *Grid) Without(row, col int) (*Grid, error) {
	if err := ValidateNotNil(g); err != nil {
		return nil, matrixErrorf(ctxWithout, err)
	}
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return nil, matrixErrorf(ctxWithout,
			errors.WithMessagef(ErrOutOfRange, "(%d,%d) in %dx%d", row, col, g.r, g.c))
	}

	return g.minor(row, col), nil
}

// minor is the unchecked form of Without used by the determinant engine,
// whose indices always come from iterating g itself.
// Each surviving row is copied as two contiguous runs: [0,col) and (col,c).
func (g *Grid) minor(row, col int) *Grid {
	r, c := g.r-1, g.c-1
	cells := make([]Cell, 0, r*c)
	var base int
	for i := 0; i < g.r; i++ {
		if i == row {
			continue
		}
		base = i * g.c
		cells = append(cells, g.cells[base:base+col]...)
		cells = append(cells, g.cells[base+col+1:base+g.c]...)
	}

	return newGrid(r, c, cells)
}
