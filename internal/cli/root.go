// SPDX-License-Identifier: MIT

// Package cli implements the pxmatrix command: it reads grid documents,
// runs one matrix operation and prints the result.
package cli

import (
	"github.com/leonickl/pxp-matrix/internal/logging"
	"github.com/leonickl/pxp-matrix/matrix"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const rootFuncName = "pxmatrix"

// env carries the state shared by all subcommands of one invocation.
type env struct {
	settings *Settings
	engine   *matrix.Engine
	logger   *zap.Logger
}

// NewCommand returns the root command with every subcommand attached.
func NewCommand() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   rootFuncName,
		Short: "Dense matrix calculator over YAML grid documents.",
		Long: `pxmatrix evaluates determinants, cofactors, inverses and products of
small dense matrices read from YAML (or JSON) grid documents.
Missing cells are written as null.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
	}
	addFlags(root.PersistentFlags())

	root.AddCommand(
		showCmd(e),
		detCmd(e),
		invCmd(e),
		cofactorsCmd(e),
		transposeCmd(e),
		binaryCmd(e, "add", "Adds two matrices.", opAdd),
		binaryCmd(e, "sub", "Subtracts the second matrix from the first.", opSub),
		binaryCmd(e, "mul", "Multiplies two matrices.", opMul),
		roundCmd(e),
		vectorStatsCmd(e),
	)

	return root
}

// init resolves configuration and builds the logger and engine.
func (e *env) init(cmd *cobra.Command) error {
	config, err := newConfig(cmd.Flags())
	if err != nil {
		return err
	}
	if e.settings, err = loadSettings(config); err != nil {
		return err
	}
	e.logger, err = logging.New(logging.Config{
		Level:  e.settings.LogLevel,
		Format: e.settings.LogFormat,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	e.engine = e.settings.Engine()
	e.logger.Named(rootFuncName).Debug("configured",
		zap.String("config", config.ConfigFileUsed()),
		zap.Int("lu_threshold", e.settings.LUThreshold),
		zap.Int("max_dimension", e.settings.MaxDimension),
		zap.Bool("strict_singular", e.settings.StrictSingular),
		zap.Bool("memo", e.settings.Memo),
	)

	return nil
}
