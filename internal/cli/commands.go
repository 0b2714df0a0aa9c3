// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/leonickl/pxp-matrix/internal/gridio"
	"github.com/leonickl/pxp-matrix/matrix"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Binary operation names.
const (
	opAdd = "add"
	opSub = "sub"
	opMul = "mul"
)

// Column labels of the vector-stats table.
var statsLabels = []any{"len", "sum", "mean", "variance", "sample_variance"}

func showCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Prints a grid document as an aligned table.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			g, err := e.load(args[0])
			if err != nil {
				return err
			}
			return e.printGrid(cmd, g)
		},
	}
}

func detCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "det <file>",
		Short: "Prints the determinant of a square grid.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			g, err := e.load(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			d, err := e.engine.Det(g)
			if err != nil {
				return errors.WithMessagef(err, "det %s", args[0])
			}
			e.done("det", g, start)
			return e.printScalar(cmd, d)
		},
	}
}

func invCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "inv <file>",
		Short: "Prints the inverse of a square grid.",
		Long: `Prints the inverse of a square grid, computed as adjugate / det.
A singular grid yields INF/-INF/NaN cells unless --strict-singular is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			g, err := e.load(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			inv, err := e.engine.Invert(g)
			if err != nil {
				return errors.WithMessagef(err, "inv %s", args[0])
			}
			e.done("inv", g, start)
			return e.printGrid(cmd, inv)
		},
	}
}

func cofactorsCmd(e *env) *cobra.Command {
	var adjugate bool
	cmd := &cobra.Command{
		Use:   "cofactors <file>",
		Short: "Prints the cofactor grid (or its transpose, the adjugate).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			g, err := e.load(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			var out *matrix.Grid
			if adjugate {
				out, err = e.engine.Adjugate(g)
			} else {
				out, err = e.engine.Cofactors(g)
			}
			if err != nil {
				return errors.WithMessagef(err, "cofactors %s", args[0])
			}
			e.done("cofactors", g, start)
			return e.printGrid(cmd, out)
		},
	}
	cmd.Flags().BoolVar(&adjugate, "adjugate", false, "print the adjugate instead")

	return cmd
}

func transposeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "t <file>",
		Aliases: []string{"transpose"},
		Short:   "Prints the transpose; row and column labels swap places.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			g, err := e.load(args[0])
			if err != nil {
				return err
			}
			gt, err := g.Transpose()
			if err != nil {
				return err
			}
			if gt, err = swapLabels(g, gt); err != nil {
				return err
			}
			return e.printGrid(cmd, gt)
		},
	}
}

func binaryCmd(e *env, name, short, op string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <file-a> <file-b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := e.load(args[0])
			if err != nil {
				return err
			}
			b, err := e.load(args[1])
			if err != nil {
				return err
			}
			start := time.Now()
			var out *matrix.Grid
			switch op {
			case opAdd:
				out, err = a.Add(b)
			case opSub:
				out, err = a.Subtract(b)
			case opMul:
				out, err = a.Multiply(b)
			default:
				return errors.Errorf("unknown operation %q", op)
			}
			if err != nil {
				return errors.WithMessagef(err, "%s %s %s", name, args[0], args[1])
			}
			e.done(name, out, start)
			return e.printGrid(cmd, out)
		},
	}
}

func roundCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "round <file> [decimals]",
		Short: "Rounds every cell, halves away from zero.",
		Long: `Rounds every cell, halves away from zero. The number of decimals comes
from the optional argument, then --precision, then defaults to 0.
Negative decimals round to tens, hundreds, ...`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			decimals := 0
			if e.settings.Precision != noRounding {
				decimals = e.settings.Precision
			}
			if len(args) == 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return errors.Wrapf(err, "decimals %q", args[1])
				}
				decimals = n
			}
			cmd.SilenceUsage = true

			g, err := e.load(args[0])
			if err != nil {
				return err
			}
			r, err := g.Round(decimals)
			if err != nil {
				return errors.WithMessagef(err, "round %s", args[0])
			}
			return e.write(cmd, r)
		},
	}
}

func vectorStatsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "vector-stats <file>",
		Short: "Prints length, sum, mean and variance of a single-row or single-column grid.",
		Long: `Prints length, sum, mean, population variance and sample variance of a
single-row or single-column grid. The sample variance of a one-entry vector
is undefined and left empty.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			g, err := e.load(args[0])
			if err != nil {
				return err
			}
			v, err := g.AsVector()
			if err != nil {
				return errors.WithMessagef(err, "vector-stats %s", args[0])
			}
			stats, err := vectorStats(v)
			if err != nil {
				return errors.WithMessagef(err, "vector-stats %s", args[0])
			}
			return e.printGrid(cmd, stats)
		},
	}
}

// vectorStats tabulates the reductions of v as one labeled row.
func vectorStats(v *matrix.Vector) (*matrix.Grid, error) {
	sum, err := v.Sum()
	if err != nil {
		return nil, err
	}
	mean, err := v.Mean(0)
	if err != nil {
		return nil, err
	}
	pop, err := v.Variance(0)
	if err != nil {
		return nil, err
	}
	var sample any // stays missing for a single entry
	if v.Len() > 1 {
		s, err := v.Variance(1)
		if err != nil {
			return nil, err
		}
		sample = s
	}

	return matrix.New([][]any{{v.Len(), sum, mean, pop, sample}}, matrix.WithColumnLabels(statsLabels...))
}

// load reads a grid document and logs its shape.
func (e *env) load(path string) (*matrix.Grid, error) {
	g, err := gridio.Load(path)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("loaded", zap.String("file", path), zap.Int("rows", g.Height()), zap.Int("cols", g.Width()))

	return g, nil
}

// done logs a finished operation.
func (e *env) done(op string, g *matrix.Grid, start time.Time) {
	e.logger.Info("computed",
		zap.String("op", op),
		zap.Int("rows", g.Height()),
		zap.Int("cols", g.Width()),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// printGrid applies --precision to numeric cells and writes g.
func (e *env) printGrid(cmd *cobra.Command, g *matrix.Grid) error {
	if e.settings.Precision != noRounding {
		decimals := e.settings.Precision
		rounded, err := g.MapCells(func(c matrix.Cell) (matrix.Cell, error) {
			v, err := c.Float()
			if err != nil {
				return c, nil
			}
			return matrix.Value(matrix.RoundFloat(v, decimals)), nil
		})
		if err != nil {
			return err
		}
		if g, err = copyLabels(g, rounded); err != nil {
			return err
		}
	}

	return e.write(cmd, g)
}

// write renders g in the configured format.
func (e *env) write(cmd *cobra.Command, g *matrix.Grid) error {
	out := cmd.OutOrStdout()
	if e.settings.Format == formatYAML {
		return gridio.Encode(out, g)
	}
	_, err := fmt.Fprint(out, g)

	return err
}

// printScalar writes one number the way a grid cell prints.
func (e *env) printScalar(cmd *cobra.Command, v float64) error {
	if e.settings.Precision != noRounding {
		v = matrix.RoundFloat(v, e.settings.Precision)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), matrix.Value(v))

	return err
}

// copyLabels returns dst carrying the labels of src.
func copyLabels(src, dst *matrix.Grid) (*matrix.Grid, error) {
	var err error
	if names := src.RowLabels(); names != nil {
		if dst, err = dst.WithRowLabels(toAny(names)...); err != nil {
			return nil, err
		}
	}
	if names := src.ColumnLabels(); names != nil {
		if dst, err = dst.WithColumnLabels(toAny(names)...); err != nil {
			return nil, err
		}
	}

	return dst, nil
}

// swapLabels returns gt labeled with g's column labels as rows and row labels as columns.
func swapLabels(g, gt *matrix.Grid) (*matrix.Grid, error) {
	var err error
	if names := g.ColumnLabels(); names != nil {
		if gt, err = gt.WithRowLabels(toAny(names)...); err != nil {
			return nil, err
		}
	}
	if names := g.RowLabels(); names != nil {
		if gt, err = gt.WithColumnLabels(toAny(names)...); err != nil {
			return nil, err
		}
	}

	return gt, nil
}

func toAny(names []string) []any {
	out := make([]any, len(names))
	for i, name := range names {
		out[i] = name
	}

	return out
}
