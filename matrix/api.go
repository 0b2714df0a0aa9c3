// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for callers that prefer functions over methods.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy; Det/Inverse use
//     the default engine. Build an Engine for any other policy.

package matrix

// Det returns det(g) using the default engine (pure cofactor expansion).
func Det(g *Grid) (float64, error) { return g.Det() }

// Inverse returns g⁻¹ using the default engine.
func Inverse(g *Grid) (*Grid, error) { return g.Invert() }

// Sum is a function form of (*Grid).Add.
func Sum(a, b *Grid) (*Grid, error) { return a.Add(b) }

// Diff is a function form of (*Grid).Subtract.
func Diff(a, b *Grid) (*Grid, error) { return a.Subtract(b) }

// Product is a function form of (*Grid).Multiply.
func Product(a, b *Grid) (*Grid, error) { return a.Multiply(b) }

// T is a function form of (*Grid).Transpose.
func T(g *Grid) (*Grid, error) { return g.Transpose() }

// ScaleBy is a function form of (*Grid).Scale.
func ScaleBy(g *Grid, s float64) (*Grid, error) { return g.Scale(s) }

// IdentityLike returns the identity with g's dimension; g must be square.
func IdentityLike(g *Grid) (*Grid, error) {
	if err := ValidateSquare(g); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity(g.r)
}

// ZerosLike returns a zero grid with g's shape.
func ZerosLike(g *Grid) (*Grid, error) {
	if err := ValidateNotNil(g); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return Zeros(g.r, g.c)
}

// MustGrid panics on a non-nil error and returns g otherwise. It shortens
// chains over operands that are known to be compatible:
//
//	prod := matrix.MustGrid(A.Multiply(B))
func MustGrid(g *Grid, err error) *Grid {
	if err != nil {
		panic(err)
	}

	return g
}
