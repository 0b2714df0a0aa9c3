// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the pxmatrix command.
// The matrix library itself never logs.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported encodings.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// DefaultLevel is used when Config.Level is empty.
const DefaultLevel = "warn"

// Config is used to provide dependencies to New.
type Config struct {
	// Level is a zap level name (debug, info, warn, error). Empty means DefaultLevel.
	Level string

	// Format selects the encoder: "console" (default) or "json".
	Format string

	// Writer is the sink for encoded records. If it is nil, os.Stderr is used
	// so that stdout only carries command results.
	Writer io.Writer
}

// New creates a logger from c. The logger annotates the caller and records
// stack traces at error level and above.
func New(c Config) (*zap.Logger, error) {
	level := c.Level
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, errors.WithMessage(err, "logging: level")
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.NameKey = "name"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch c.Format {
	case "", FormatConsole:
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encoderConfig)
	case FormatJSON:
		enc = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, errors.Errorf("logging: unknown format %q", c.Format)
	}

	core := zapcore.NewCore(enc, writeSyncer(c.Writer), zap.NewAtomicLevelAt(lvl))

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// writeSyncer adapts w for concurrent use by the core.
func writeSyncer(w io.Writer) zapcore.WriteSyncer {
	switch t := w.(type) {
	case nil:
		return zapcore.Lock(os.Stderr)
	case *os.File:
		return zapcore.Lock(t)
	case zapcore.WriteSyncer:
		return t
	default:
		return zapcore.AddSync(w)
	}
}
