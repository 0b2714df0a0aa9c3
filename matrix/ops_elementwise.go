// SPDX-License-Identifier: MIT

// Package matrix - element-wise maps.
//
// Purpose:
//   - Map applies a numeric function to every cell (strict: missing cells fail).
//   - MapCells hands every Cell, missing or not, to the caller's function.
//   - Round and AllClose are built on the same loops.
//
// Determinism:
//   - Cells are visited in row-major order; the first failure wins.

package matrix

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

const (
	opMap      = "Map"
	opMapCells = "MapCells"
	opRound    = "Round"
	opAllClose = "AllClose"
)

// Rounding parameters used by Round and RoundFloat.
const (
	decimalBase    = 10   // radix
	preRoundDigits = 15   // significant digits kept before rounding
	preRoundLimit  = 1e15 // from here on a float64 has no fractional digits worth keeping
)

// Map returns a grid of f applied to every cell.
// Errors: ErrNilGrid, ErrMissingValue (the function never sees missing cells).
// Complexity: O(r*c) calls to f.
func (g *Grid) Map(f func(float64) float64) (*Grid, error) {
	if err := ValidateComplete(g); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	cells := make([]Cell, len(g.cells))
	for idx, cell := range g.cells {
		cells[idx] = Value(f(cell.v))
	}

	return newGrid(g.r, g.c, cells), nil
}

// MapCells returns a grid of f applied to every cell, missing ones included.
// The first error returned by f aborts the map and is returned with the
// coordinates of the failing cell.
func (g *Grid) MapCells(f func(Cell) (Cell, error)) (*Grid, error) {
	if err := ValidateNotNil(g); err != nil {
		return nil, matrixErrorf(opMapCells, err)
	}
	cells := make([]Cell, len(g.cells))
	var err error
	for idx, cell := range g.cells {
		if cells[idx], err = f(cell); err != nil {
			return nil, matrixErrorf(opMapCells, cellErrorf("cell", idx/g.c, idx%g.c, err))
		}
	}

	return newGrid(g.r, g.c, cells), nil
}

// Round rounds every cell to the given number of decimal places, halves
// away from zero. Negative decimals round to tens, hundreds, ...
// Errors: ErrNilGrid, ErrMissingValue.
func (g *Grid) Round(decimals int) (*Grid, error) {
	out, err := g.Map(func(v float64) float64 { return RoundFloat(v, decimals) })
	if err != nil {
		return nil, matrixErrorf(opRound, err)
	}

	return out, nil
}

// RoundFloat rounds v to `decimals` places, halves away from zero.
// The scaled value is first cut to 15 significant digits, so a decimal
// half that binary cannot hold exactly still rounds up:
// RoundFloat(1.005, 2) is 1.01 although 1.005*100 is 100.49999999999999.
// Negative decimals divide instead of multiplying by a fractional power.
// Values whose scaled form overflows are returned unchanged; they carry no
// fractional digits anyway.
func RoundFloat(v float64, decimals int) float64 {
	p := math.Pow(decimalBase, math.Abs(float64(decimals)))
	scaled := v * p
	if decimals < 0 {
		scaled = v / p
	}
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return v
	}
	if math.Abs(scaled) < preRoundLimit {
		text := strconv.FormatFloat(scaled, 'g', preRoundDigits, 64)
		if pre, err := strconv.ParseFloat(text, 64); err == nil {
			scaled = pre
		}
	}
	scaled = math.Round(scaled)
	if decimals < 0 {
		return scaled * p
	}

	return scaled / p
}

// AllClose reports whether g and other have identical shape and every pair
// of numeric cells satisfies |a−b| ≤ tol. Missing cells must line up.
// NaN is never close to anything; equal infinities are close.
// Errors: ErrNilGrid, ErrShape.
func (g *Grid) AllClose(other *Grid, tol float64) (bool, error) {
	if err := ValidateSameShape(g, other); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if math.IsNaN(tol) {
		return false, matrixErrorf(opAllClose, errors.WithMessage(ErrType, "tolerance is NaN"))
	}
	tol = math.Abs(tol)
	for idx, a := range g.cells {
		b := other.cells[idx]
		if a.ok != b.ok {
			return false, nil
		}
		if !a.ok || a.v == b.v {
			continue
		}
		if math.IsNaN(a.v) || math.IsNaN(b.v) || math.Abs(a.v-b.v) > tol {
			return false, nil
		}
	}

	return true, nil
}
