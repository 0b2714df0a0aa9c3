// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for grid construction and for
// the determinant engine. This file defines:
//   - Option / EngineOption (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions / gatherEngineOptions helpers that apply defaults first.
//
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - No dead switches: each flag changes behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Construction policy (validation, labels) lives on Option.
//   - Numeric policy of Det/Cofactors/Invert lives on EngineOption; a Grid
//     never carries algorithm policy, so the same Grid can be evaluated by
//     differently configured engines.
package matrix

import "fmt"

// ---------- Defaults (single source of truth) ----------

// Construction policy.
const (
	// DefaultValidate turns on shape and cell-type validation in New.
	DefaultValidate = true
)

// Engine policy.
const (
	// DefaultLUThreshold disables the LU fast path: every determinant is a
	// cofactor expansion.
	DefaultLUThreshold = 0

	// DefaultMaxDimension is the largest dimension expanded recursively.
	// 10! ≈ 3.6M products; one more step is an order of magnitude slower.
	DefaultMaxDimension = 10

	// DefaultStrictSingular keeps the reference behavior: inverting a grid
	// with det == 0 yields ±Inf/NaN cells instead of an error.
	DefaultStrictSingular = false

	// DefaultMemo disables memoization of minor determinants.
	DefaultMemo = false
)

// Panic messages for invalid option parameters.
const (
	panicLUThresholdNegative = "matrix: WithLUThreshold(%d): threshold must be >= 0"
	panicMaxDimensionNeg     = "matrix: WithMaxDimension(%d): ceiling must be >= 0"
)

// ---------- Construction options ----------

// Option configures New, FromFloats, FromCells, FromFlat and NewVector.
type Option func(*options)

// options is the resolved construction policy.
type options struct {
	validate     bool  // check row widths and cell types
	rowLabels    []any // raw row labels, validated after the shape is known
	colLabels    []any // raw column labels, validated after the shape is known
	hasRowLabels bool  // WithRowLabels was applied (an empty list is still a list)
	hasColLabels bool  // WithColumnLabels was applied
}

// WithValidation enables construction-time validation (the default).
func WithValidation() Option {
	return func(o *options) { o.validate = true }
}

// WithoutValidation selects the trusted-input path of New.
// Rows are not compared against each other: the first row fixes the width,
// shorter rows are padded with missing cells, longer rows are truncated, and
// cells of unsupported types are stored as missing instead of failing.
// Use it for input that is already known to be well-formed.
func WithoutValidation() Option {
	return func(o *options) { o.validate = false }
}

// WithRowLabels attaches display labels to the rows (one per row; int or string).
func WithRowLabels(labels ...any) Option {
	return func(o *options) {
		o.rowLabels = append([]any(nil), labels...)
		o.hasRowLabels = true
	}
}

// WithColumnLabels attaches display labels to the columns (one per column; int or string).
func WithColumnLabels(labels ...any) Option {
	return func(o *options) {
		o.colLabels = append([]any(nil), labels...)
		o.hasColLabels = true
	}
}

// gatherOptions applies defaults first, then user options in order.
func gatherOptions(user ...Option) options {
	o := options{validate: DefaultValidate}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// ---------- Engine options ----------

// EngineOption configures NewEngine.
type EngineOption func(*engineOptions)

// engineOptions is the resolved engine policy.
type engineOptions struct {
	luThreshold    int  // 0 = off; otherwise minors of dimension >= luThreshold use LU
	maxDimension   int  // 0 = unlimited; otherwise the recursion ceiling
	strictSingular bool // Invert fails with ErrSingular when det == 0
	memo           bool // reuse determinants of identical minors within one call
}

// WithLUThreshold enables the LU fast path for (sub)grids whose dimension is
// at least n. LU results are exact only up to rounding, so they can differ
// from cofactor expansion in the last bits. n == 0 disables the fast path.
// Panics if n < 0.
func WithLUThreshold(n int) EngineOption {
	if n < 0 {
		panic(fmt.Sprintf(panicLUThresholdNegative, n))
	}

	return func(o *engineOptions) { o.luThreshold = n }
}

// WithMaxDimension sets the largest dimension the engine expands
// recursively; larger inputs fail with ErrTooLarge unless the LU fast path
// covers them. n == 0 removes the ceiling. Panics if n < 0.
func WithMaxDimension(n int) EngineOption {
	if n < 0 {
		panic(fmt.Sprintf(panicMaxDimensionNeg, n))
	}

	return func(o *engineOptions) { o.maxDimension = n }
}

// WithStrictSingular makes Invert return ErrSingular for det == 0.
func WithStrictSingular() EngineOption {
	return func(o *engineOptions) { o.strictSingular = true }
}

// WithMemo caches determinants of identical minors for the duration of a
// single Det/Cofactors/Invert call. Output values are unchanged; expansion
// along the first row only ever removes the top rows, so the number of
// distinct minors drops from n! to about n·2ⁿ.
func WithMemo() EngineOption {
	return func(o *engineOptions) { o.memo = true }
}

// gatherEngineOptions applies defaults first, then user options in order.
func gatherEngineOptions(user ...EngineOption) engineOptions {
	o := engineOptions{
		luThreshold:    DefaultLUThreshold,
		maxDimension:   DefaultMaxDimension,
		strictSingular: DefaultStrictSingular,
		memo:           DefaultMemo,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
