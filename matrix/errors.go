// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels wrapped with an operation tag
// (see matrixErrorf); callers match them with errors.Is. No operation panics
// on user-triggered error conditions; MustNew is the documented exception.

package matrix

import "github.com/pkg/errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Call sites
// add context with errors.WithMessage, so a returned error reads
// "<Op>: <detail>: matrix: ..." and still satisfies errors.Is.

var (
	// ErrShape reports a structural violation: jagged rows at construction,
	// a non-square operand for Det/Cofactors/Invert, mismatched dimensions in
	// Add/Subtract/Multiply, or a non-vector grid in AsVector.
	ErrShape = errors.New("matrix: shape mismatch")

	// ErrType reports a cell that is neither a real number nor missing.
	ErrType = errors.New("matrix: cell must be an integer, a float or missing")

	// ErrLabelSize reports a label list whose length differs from the labeled axis.
	ErrLabelSize = errors.New("matrix: label count does not match dimension")

	// ErrLabelType reports a label that is neither an integer nor a string.
	ErrLabelType = errors.New("matrix: label must be an integer or a string")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrMissingValue reports arithmetic that met a missing cell.
	ErrMissingValue = errors.New("matrix: missing value where a number is required")

	// ErrNilGrid indicates that a nil *Grid (receiver or argument) was used.
	ErrNilGrid = errors.New("matrix: nil grid")

	// ErrSingular is returned by Invert only when the engine runs with
	// WithStrictSingular and the determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrTooLarge is returned when a grid exceeds the engine's ceiling for
	// recursive cofactor expansion and no LU fast path applies.
	ErrTooLarge = errors.New("matrix: dimension exceeds cofactor expansion ceiling")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange

// matrixErrorf wraps err with an operation tag. The result formats as
// "<tag>: <err>" and keeps err reachable for errors.Is/errors.As.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return errors.WithMessage(err, tag)
}

// cellErrorf attaches operation and coordinates to a cell-level failure.
func cellErrorf(tag string, row, col int, err error) error {
	return errors.WithMessagef(err, "%s(%d,%d)", tag, row, col)
}
