// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"strconv"
	"strings"
)

// Printing literals shared by Cell.String and the grid renderer.
const (
	_fmtMissing    = ""     // a missing cell prints as nothing
	_fmtPosInf     = "INF"  // +Inf
	_fmtNegInf     = "-INF" // -Inf
	_fmtNaN        = "NAN"
	_fmtExponent   = "E"
	_fmtBareMant   = ".0"   // appended to a one-digit mantissa: 1.0E+15
	_fmtPrecision  = 14     // significant digits used when printing numbers
	_fmtFloatVerb  = 'g'    // %e for large exponents, %f otherwise
	_fmtFloatWidth = 64
)

// Cell is one grid entry: a real number or an explicit missing marker.
// The zero value is a missing cell.
type Cell struct {
	v  float64 // numeric payload, meaningful only when ok
	ok bool    // false marks a missing cell
}

// Value returns a Cell holding v.
func Value(v float64) Cell { return Cell{v: v, ok: true} }

// Missing returns a Cell with no value.
func Missing() Cell { return Cell{} }

// IsMissing reports whether the cell holds no value.
func (c Cell) IsMissing() bool { return !c.ok }

// Float returns the numeric value or ErrMissingValue.
func (c Cell) Float() (float64, error) {
	if !c.ok {
		return 0, ErrMissingValue
	}

	return c.v, nil
}

// String prints the cell the way the grid renderer does: missing cells are
// empty, numbers use up to 14 significant digits with trailing zeros
// removed (5, 0.25, 1.2345678901235), negative zero prints as 0,
// infinities print as INF / -INF and NaN as NAN. Exponents below -4 or
// from 15 up use the E form with an unpadded exponent: 1.0E+15, 2.5E-7.
func (c Cell) String() string {
	if !c.ok {
		return _fmtMissing
	}

	return formatNumber(c.v)
}

// formatNumber renders v with _fmtPrecision significant digits.
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return _fmtNaN
	case math.IsInf(v, 1):
		return _fmtPosInf
	case math.IsInf(v, -1):
		return _fmtNegInf
	case v == 0:
		v = 0 // drop the sign of -0
	}

	s := strconv.FormatFloat(v, _fmtFloatVerb, _fmtPrecision, _fmtFloatWidth)
	mant, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	if !strings.Contains(mant, ".") {
		mant += _fmtBareMant
	}
	// exp is a sign followed by at least two digits ("+15", "-05").
	digits := strings.TrimLeft(exp[1:], "0")

	return mant + _fmtExponent + exp[:1] + digits
}

// toCell converts a loosely typed value into a Cell.
// Accepted: nil (missing), Cell, every Go integer kind, float32, float64.
// Anything else is ErrType.
func toCell(v any) (Cell, error) {
	switch x := v.(type) {
	case nil:
		return Missing(), nil
	case Cell:
		return x, nil
	case float64:
		return Value(x), nil
	case float32:
		return Value(float64(x)), nil
	case int:
		return Value(float64(x)), nil
	case int8:
		return Value(float64(x)), nil
	case int16:
		return Value(float64(x)), nil
	case int32:
		return Value(float64(x)), nil
	case int64:
		return Value(float64(x)), nil
	case uint:
		return Value(float64(x)), nil
	case uint8:
		return Value(float64(x)), nil
	case uint16:
		return Value(float64(x)), nil
	case uint32:
		return Value(float64(x)), nil
	case uint64:
		return Value(float64(x)), nil
	default:
		return Missing(), ErrType
	}
}
