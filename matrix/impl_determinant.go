// SPDX-License-Identifier: MIT

// Package matrix - determinant engine.
//
// Purpose:
//   - Compute determinants by Laplace (cofactor) expansion along the first row,
//     the reference algorithm of this package.
//   - Hold numeric policy (LU fast path, recursion ceiling, strict singular
//     inversion, memoization) in an immutable Engine value.
//
// Determinism:
//   - Terms are summed in increasing column order with signs +,−,+,…
//     The same input always produces the same bits.
//
// AI-Hints:
//   - Cost is O(n!) without memo. Use WithMemo for n around 8–12 and
//     WithLUThreshold beyond that if last-bit agreement with cofactor
//     expansion is not required.

package matrix

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// emptyDeterminant is det of the 0×0 grid (the empty product). It makes the
// cofactor of a 1×1 grid equal to 1, so Invert([[a]]) == [[1/a]].
const emptyDeterminant = 1.0

// memoWordBytes is the size of one encoded float64 in a memo key.
const memoWordBytes = 8

// Engine evaluates determinants, cofactors, adjugates and inverses under a
// fixed policy. An Engine is immutable after NewEngine and safe for
// concurrent use; memo tables live only for the duration of one call.
type Engine struct {
	opts engineOptions
}

// defaultEngine backs the Grid convenience methods (Det, Cofactors, Adjugate, Invert).
var defaultEngine = NewEngine()

// NewEngine returns an Engine configured by opts on top of the defaults
// (pure cofactor expansion, ceiling DefaultMaxDimension, no strict
// singular check, no memo).
func NewEngine(opts ...EngineOption) *Engine {
	return &Engine{opts: gatherEngineOptions(opts...)}
}

// DefaultEngine returns the engine used by the Grid methods.
func DefaultEngine() *Engine { return defaultEngine }

// Det computes the determinant of g.
// Implementation:
//   - Stage 1: ValidateSquareComplete (non-nil, square, no missing cell),
//     then the recursion ceiling.
//   - Stage 2: base cases 0×0 → 1, 1×1 → a, 2×2 → a·d − b·c; for n ≥ 3
//     det = Σ_j (−1)^j · g[0][j] · det(minor(0, j)).
//
// Errors:
//   - ErrNilGrid, ErrShape (non-square), ErrMissingValue, ErrTooLarge.
//
// Complexity:
//   - Time O(n!) (O(n²·2ⁿ) with WithMemo, O(n³) on the LU path), recursion depth n.
func (e *Engine) Det(g *Grid) (float64, error) {
	if err := ValidateSquareComplete(g); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if err := e.checkCeiling(g.r); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return e.det(g, e.newMemo()), nil
}

// Det computes the determinant with the default engine.
func (g *Grid) Det() (float64, error) { return defaultEngine.Det(g) }

// det is the recursive kernel. g is square and complete.
func (e *Engine) det(g *Grid, memo map[string]float64) float64 {
	n := g.r
	switch n {
	case 0:
		return emptyDeterminant
	case 1:
		return g.cells[0].v
	case 2:
		// Direct formula; one recursion level and one minor allocation fewer.
		return g.cells[0].v*g.cells[3].v - g.cells[1].v*g.cells[2].v
	}
	if e.useLU(n) {
		return luDet(g)
	}

	var key string
	if memo != nil {
		key = g.memoKey()
		if d, ok := memo[key]; ok {
			return d
		}
	}

	d := ZeroSum
	for j := 0; j < n; j++ {
		d += laplaceSign(j) * g.cells[j].v * e.det(g.minor(0, j), memo)
	}

	if memo != nil {
		memo[key] = d
	}

	return d
}

// laplaceSign returns (−1)^k.
func laplaceSign(k int) float64 {
	if k%2 == 0 {
		return 1
	}

	return -1
}

// useLU reports whether an n×n determinant goes through the LU fast path.
func (e *Engine) useLU(n int) bool {
	return e.opts.luThreshold > 0 && n > 0 && n >= e.opts.luThreshold
}

// checkCeiling rejects dimensions above the recursion ceiling unless LU covers them.
func (e *Engine) checkCeiling(n int) error {
	if e.opts.maxDimension == 0 || n <= e.opts.maxDimension || e.useLU(n) {
		return nil
	}

	return errors.WithMessagef(ErrTooLarge, "dimension %d, ceiling %d", n, e.opts.maxDimension)
}

// newMemo returns a fresh memo table when memoization is enabled, nil otherwise.
func (e *Engine) newMemo() map[string]float64 {
	if !e.opts.memo {
		return nil
	}

	return make(map[string]float64)
}

// luDet computes det(g) through gonum's LU factorization.
func luDet(g *Grid) float64 {
	data := make([]float64, len(g.cells))
	for idx, cell := range g.cells {
		data[idx] = cell.v
	}

	return mat.Det(mat.NewDense(g.r, g.c, data))
}

// memoKey encodes dimension and cell bits. Equal keys mean equal content,
// hence an equal determinant.
func (g *Grid) memoKey() string {
	var (
		b   strings.Builder
		buf [memoWordBytes]byte
	)
	b.Grow(memoWordBytes * (len(g.cells) + 1))
	binary.LittleEndian.PutUint64(buf[:], uint64(g.r))
	b.Write(buf[:])
	for _, cell := range g.cells {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(cell.v))
		b.Write(buf[:])
	}

	return b.String()
}
