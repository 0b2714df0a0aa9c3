// SPDX-License-Identifier: MIT

// Package matrix - Grid storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide an immutable row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Keep value semantics: no method mutates a Grid; derived grids never alias storage.
//
// AI-Hints:
//   - Internal producers that already know their output is well-formed
//     (minor, transpose, kernels) use newGrid and skip validation.
//   - RawRows and Row/Col return copies; holding them never breaks immutability.
//
// Complexity quicksheet:
//   - New: O(r*c); Get/At: O(1); Row: O(c); Col: O(r); RawRows: O(r*c).

package matrix

import (
	"strconv"

	"github.com/pkg/errors"
)

// ---------- error context tags ----------

const (
	ctxNew        = "New"
	ctxFromFlat   = "FromFlat"
	ctxIdentity   = "Identity"
	ctxZeros      = "Zeros"
	ctxGet        = "Get"
	ctxAt         = "At"
	ctxRow        = "Row"
	ctxCol        = "Col"
	ctxFloats     = "Floats"
	ctxRowLabels  = "WithRowLabels"
	ctxColLabels  = "WithColumnLabels"
	ctxLabelIndex = "label"
)

// Grid is an immutable rectangular table of Cells.
//   - r,c hold dimensions; an empty grid is 0×0.
//   - cells is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - rowLabels / colLabels are display-only and nil when unset.
type Grid struct {
	r, c      int
	cells     []Cell
	rowLabels []string
	colLabels []string
}

// newGrid wraps an already well-formed buffer. len(cells) must equal r*c.
func newGrid(r, c int, cells []Cell) *Grid {
	if r == 0 {
		c = 0 // no rows means no width
	}

	return &Grid{r: r, c: c, cells: cells}
}

// newNumericGrid allocates an r×c grid whose cells are all numeric zeros.
func newNumericGrid(r, c int) *Grid {
	cells := make([]Cell, r*c)
	for i := range cells {
		cells[i] = Value(0)
	}

	return newGrid(r, c, cells)
}

// New builds a Grid from rows of loosely typed values.
// Implementation:
//   - Stage 1: gather options; the first row fixes the width.
//   - Stage 2: convert every value with toCell; with validation on, a row of
//     a different width is ErrShape and an unsupported value is ErrType.
//   - Stage 3: attach labels (ErrLabelSize / ErrLabelType).
//
// Inputs:
//   - rows: nil or empty means a 0×0 grid. Accepted values are nil
//     (missing), Cell, every Go integer kind, float32 and float64.
//   - opts: WithoutValidation, WithRowLabels, WithColumnLabels.
//
// Errors:
//   - ErrShape, ErrType (validation), ErrLabelSize, ErrLabelType (labels).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Under WithoutValidation the input is trusted: width comes from the
//     first row, short rows are padded with missing cells and unsupported
//     values become missing.
func New(rows [][]any, opts ...Option) (*Grid, error) {
	o := gatherOptions(opts...)

	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	cells := make([]Cell, r*c)

	var (
		cell Cell
		err  error
	)
	for i, row := range rows {
		if len(row) != c && o.validate {
			return nil, matrixErrorf(ctxNew, errors.WithMessagef(ErrShape,
				"row %d has %d cells, row 0 has %d", i, len(row), c))
		}
		for j := 0; j < c && j < len(row); j++ {
			cell, err = toCell(row[j])
			if err != nil {
				if o.validate {
					return nil, matrixErrorf(ctxNew, errors.WithMessagef(err, "cell (%d,%d) of type %T", i, j, row[j]))
				}
				cell = Missing()
			}
			cells[i*c+j] = cell
		}
	}

	return finish(newGrid(r, c, cells), o)
}

// MustNew is New for literals known to be valid; it panics on error.
func MustNew(rows [][]any, opts ...Option) *Grid {
	g, err := New(rows, opts...)
	if err != nil {
		panic(err)
	}

	return g
}

// FromFloats builds a fully numeric Grid. Rows must share one width (ErrShape).
func FromFloats(rows [][]float64, opts ...Option) (*Grid, error) {
	o := gatherOptions(opts...)

	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	cells := make([]Cell, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(ctxNew, errors.WithMessagef(ErrShape,
				"row %d has %d cells, row 0 has %d", i, len(row), c))
		}
		for j, v := range row {
			cells[i*c+j] = Value(v)
		}
	}

	return finish(newGrid(r, c, cells), o)
}

// FromCells builds a Grid from rows of Cells. Rows must share one width (ErrShape).
func FromCells(rows [][]Cell, opts ...Option) (*Grid, error) {
	o := gatherOptions(opts...)

	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	cells := make([]Cell, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(ctxNew, errors.WithMessagef(ErrShape,
				"row %d has %d cells, row 0 has %d", i, len(row), c))
		}
		cells = append(cells, row...)
	}

	return finish(newGrid(r, c, cells), o)
}

// FromFlat chunks values into rows of the given width.
// A trailing partial row is a jagged input and fails with ErrShape, as does
// a non-positive width for non-empty input. Empty input yields a 0×0 grid.
func FromFlat(values []float64, width int, opts ...Option) (*Grid, error) {
	o := gatherOptions(opts...)
	if len(values) == 0 {
		return finish(newGrid(0, 0, nil), o)
	}
	if width <= 0 {
		return nil, matrixErrorf(ctxFromFlat, errors.WithMessagef(ErrShape, "width %d", width))
	}
	if len(values)%width != 0 {
		return nil, matrixErrorf(ctxFromFlat, errors.WithMessagef(ErrShape,
			"%d values do not fill rows of width %d", len(values), width))
	}

	cells := make([]Cell, len(values))
	for idx, v := range values {
		cells[idx] = Value(v)
	}

	return finish(newGrid(len(values)/width, width, cells), o)
}

// Identity returns the n×n identity grid. n < 0 is ErrShape.
func Identity(n int) (*Grid, error) {
	if n < 0 {
		return nil, matrixErrorf(ctxIdentity, errors.WithMessagef(ErrShape, "n=%d", n))
	}
	g := newNumericGrid(n, n)
	for i := 0; i < n; i++ {
		g.cells[i*n+i] = Value(1)
	}

	return g, nil
}

// Zeros returns a rows×cols grid of numeric zeros. Negative sizes are ErrShape.
func Zeros(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(ctxZeros, errors.WithMessagef(ErrShape, "%dx%d", rows, cols))
	}

	return newNumericGrid(rows, cols), nil
}

// finish attaches labels requested through options.
func finish(g *Grid, o options) (*Grid, error) {
	var err error
	if o.hasRowLabels {
		if g.rowLabels, err = normalizeLabels(o.rowLabels, g.r); err != nil {
			return nil, matrixErrorf(ctxRowLabels, err)
		}
	}
	if o.hasColLabels {
		if g.colLabels, err = normalizeLabels(o.colLabels, g.c); err != nil {
			return nil, matrixErrorf(ctxColLabels, err)
		}
	}

	return g, nil
}

// ---------- Shape ----------

// Height returns the number of rows (0 for a nil grid).
func (g *Grid) Height() int {
	if g == nil {
		return 0
	}

	return g.r
}

// Width returns the number of columns (0 for a nil or empty grid).
func (g *Grid) Width() int {
	if g == nil {
		return 0
	}

	return g.c
}

// Dim returns (Height, Width).
func (g *Grid) Dim() (rows, cols int) { return g.Height(), g.Width() }

// IsSquare reports Height == Width. The empty grid is square.
func (g *Grid) IsSquare() bool { return g.Height() == g.Width() }

// ---------- Element access ----------

// indexOf bounds-checks (row, col) and returns the flat offset.
func (g *Grid) indexOf(tag string, row, col int) (int, error) {
	if g == nil {
		return 0, matrixErrorf(tag, ErrNilGrid)
	}
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return 0, cellErrorf(tag, row, col, ErrOutOfRange)
	}

	return row*g.c + col, nil
}

// Get returns the cell at (row, col) or ErrOutOfRange.
func (g *Grid) Get(row, col int) (Cell, error) {
	idx, err := g.indexOf(ctxGet, row, col)
	if err != nil {
		return Missing(), err
	}

	return g.cells[idx], nil
}

// At returns the numeric value at (row, col).
// Errors: ErrOutOfRange, ErrMissingValue.
func (g *Grid) At(row, col int) (float64, error) {
	idx, err := g.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}
	v, err := g.cells[idx].Float()
	if err != nil {
		return 0, cellErrorf(ctxAt, row, col, err)
	}

	return v, nil
}

// Row returns a copy of row i.
func (g *Grid) Row(i int) ([]Cell, error) {
	if g == nil {
		return nil, matrixErrorf(ctxRow, ErrNilGrid)
	}
	if i < 0 || i >= g.r {
		return nil, matrixErrorf(ctxRow, errors.WithMessagef(ErrOutOfRange, "row %d of %d", i, g.r))
	}
	out := make([]Cell, g.c)
	copy(out, g.cells[i*g.c:(i+1)*g.c])

	return out, nil
}

// Col returns a copy of column j.
func (g *Grid) Col(j int) ([]Cell, error) {
	if g == nil {
		return nil, matrixErrorf(ctxCol, ErrNilGrid)
	}
	if j < 0 || j >= g.c {
		return nil, matrixErrorf(ctxCol, errors.WithMessagef(ErrOutOfRange, "column %d of %d", j, g.c))
	}
	out := make([]Cell, g.r)
	for i := 0; i < g.r; i++ {
		out[i] = g.cells[i*g.c+j]
	}

	return out, nil
}

// RawRows returns the cells as nested rows. The result is a deep copy.
func (g *Grid) RawRows() [][]Cell {
	if g == nil {
		return nil
	}
	out := make([][]Cell, g.r)
	for i := range out {
		out[i] = make([]Cell, g.c)
		copy(out[i], g.cells[i*g.c:(i+1)*g.c])
	}

	return out
}

// Floats returns the values as nested float64 rows, or ErrMissingValue if
// any cell is missing.
func (g *Grid) Floats() ([][]float64, error) {
	if err := ValidateComplete(g); err != nil {
		return nil, matrixErrorf(ctxFloats, err)
	}
	out := make([][]float64, g.r)
	for i := range out {
		out[i] = make([]float64, g.c)
		for j := range out[i] {
			out[i][j] = g.cells[i*g.c+j].v
		}
	}

	return out, nil
}

// ---------- Labels ----------

// WithRowLabels returns a copy of g labeled by row. Labels must be ints or
// strings, one per row.
func (g *Grid) WithRowLabels(names ...any) (*Grid, error) {
	if g == nil {
		return nil, matrixErrorf(ctxRowLabels, ErrNilGrid)
	}
	labels, err := normalizeLabels(names, g.r)
	if err != nil {
		return nil, matrixErrorf(ctxRowLabels, err)
	}
	out := g.clone()
	out.rowLabels = labels

	return out, nil
}

// WithColumnLabels returns a copy of g labeled by column. Labels must be
// ints or strings, one per column.
func (g *Grid) WithColumnLabels(names ...any) (*Grid, error) {
	if g == nil {
		return nil, matrixErrorf(ctxColLabels, ErrNilGrid)
	}
	labels, err := normalizeLabels(names, g.c)
	if err != nil {
		return nil, matrixErrorf(ctxColLabels, err)
	}
	out := g.clone()
	out.colLabels = labels

	return out, nil
}

// RowLabels returns a copy of the row labels, nil when unset.
func (g *Grid) RowLabels() []string {
	if g == nil || g.rowLabels == nil {
		return nil
	}

	return append([]string(nil), g.rowLabels...)
}

// ColumnLabels returns a copy of the column labels, nil when unset.
func (g *Grid) ColumnLabels() []string {
	if g == nil || g.colLabels == nil {
		return nil
	}

	return append([]string(nil), g.colLabels...)
}

// clone copies the grid including its labels. Labels are shared: they are
// never mutated after construction.
func (g *Grid) clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)

	return &Grid{r: g.r, c: g.c, cells: cells, rowLabels: g.rowLabels, colLabels: g.colLabels}
}

// normalizeLabels validates count and type and renders labels as strings.
func normalizeLabels(names []any, want int) ([]string, error) {
	if len(names) != want {
		return nil, errors.WithMessagef(ErrLabelSize, "got %d labels for %d entries", len(names), want)
	}
	out := make([]string, len(names))
	for k, name := range names {
		text, ok := labelText(name)
		if !ok {
			return nil, errors.WithMessagef(ErrLabelType, "%s %d has type %T", ctxLabelIndex, k, name)
		}
		out[k] = text
	}

	return out, nil
}

// labelText renders an int-kind or string label.
func labelText(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int:
		return strconv.Itoa(x), true
	case int8:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	default:
		return "", false
	}
}
