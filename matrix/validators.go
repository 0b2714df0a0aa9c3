// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/missing checks here.
//  - Return sentinel errors tagged with the validator name so call sites
//    can wrap uniformly with their own operation tag.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Complete).

package matrix

import "github.com/pkg/errors"

// validatorErrorf tags a sentinel violation with the validator name.
func validatorErrorf(tag string, err error) error {
	return errors.WithMessage(err, tag)
}

// ValidateNotNil ensures the grid reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(g *Grid) error {
	if g == nil {
		return validatorErrorf("ValidateNotNil", ErrNilGrid)
	}

	return nil
}

// ValidateSquare ensures g is non-nil and Height == Width.
// Errors: ErrNilGrid, ErrShape.
// Complexity: O(1).
func ValidateSquare(g *Grid) error {
	if err := ValidateNotNil(g); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if g.r != g.c {
		return validatorErrorf("ValidateSquare", errors.WithMessagef(ErrShape, "%dx%d is not square", g.r, g.c))
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Used by Add/Subtract.
// Complexity: O(1).
func ValidateSameShape(a, b *Grid) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("ValidateSameShape",
			errors.WithMessagef(ErrShape, "%dx%d vs %dx%d", a.r, a.c, b.r, b.c))
	}

	return nil
}

// ValidateMulCompatible ensures a.Width == b.Height, inputs non-nil.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Grid) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible",
			errors.WithMessagef(ErrShape, "%dx%d times %dx%d", a.r, a.c, b.r, b.c))
	}

	return nil
}

// ValidateComplete ensures g is non-nil and holds no missing cell.
// The first missing cell in row-major order is reported with its coordinates.
// Complexity: O(r*c).
func ValidateComplete(g *Grid) error {
	if err := ValidateNotNil(g); err != nil {
		return validatorErrorf("ValidateComplete", err)
	}
	for idx, cell := range g.cells {
		if !cell.ok {
			return validatorErrorf("ValidateComplete", cellErrorf("cell", idx/g.c, idx%g.c, ErrMissingValue))
		}
	}

	return nil
}

// ValidateSquareComplete is the determinant precondition: NotNil → Square → Complete.
func ValidateSquareComplete(g *Grid) error {
	if err := ValidateSquare(g); err != nil {
		return validatorErrorf("ValidateSquareComplete", err)
	}
	if err := ValidateComplete(g); err != nil {
		return validatorErrorf("ValidateSquareComplete", err)
	}

	return nil
}
