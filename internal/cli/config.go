// SPDX-License-Identifier: MIT

package cli

import (
	"strings"

	"github.com/leonickl/pxp-matrix/matrix"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides: engine.memo is read from
// PXMATRIX_ENGINE_MEMO.
const EnvPrefix = "PXMATRIX"

// Configuration keys.
const (
	keyLogLevel       = "log.level"
	keyLogFormat      = "log.format"
	keyPrecision      = "output.precision"
	keyFormat         = "output.format"
	keyLUThreshold    = "engine.lu_threshold"
	keyMaxDimension   = "engine.max_dimension"
	keyStrictSingular = "engine.strict_singular"
	keyMemo           = "engine.memo"
)

// Output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
)

// noRounding is the precision value that leaves results unrounded.
const noRounding = -1

// Settings is the resolved configuration of one command invocation.
type Settings struct {
	LogLevel       string
	LogFormat      string
	Precision      int
	Format         string
	LUThreshold    int
	MaxDimension   int
	StrictSingular bool
	Memo           bool
}

// flagKeys maps persistent flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":       keyLogLevel,
	"log-format":      keyLogFormat,
	"precision":       keyPrecision,
	"format":          keyFormat,
	"lu-threshold":    keyLUThreshold,
	"max-dimension":   keyMaxDimension,
	"strict-singular": keyStrictSingular,
	"memo":            keyMemo,
}

// addFlags registers the persistent flags. Flag defaults double as
// configuration defaults.
func addFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "path to a YAML config file")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log encoding (console, json)")
	flags.Int("precision", noRounding, "round results to this many decimals (-1 keeps full precision)")
	flags.String("format", formatText, "output format (text, yaml)")
	flags.Int("lu-threshold", matrix.DefaultLUThreshold, "use LU for determinants of dimension >= n (0 disables)")
	flags.Int("max-dimension", matrix.DefaultMaxDimension, "largest dimension expanded by cofactors (0 removes the ceiling)")
	flags.Bool("strict-singular", matrix.DefaultStrictSingular, "fail when inverting a singular matrix")
	flags.Bool("memo", matrix.DefaultMemo, "memoize minor determinants")
}

// newConfig creates the viper instance for one invocation: flags first,
// then PXMATRIX_* environment variables, then the optional config file.
func newConfig(flags *pflag.FlagSet) (*viper.Viper, error) {
	config := viper.New()

	// for environment variables
	config.SetEnvPrefix(EnvPrefix)
	config.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_", "-", "_")
	config.SetEnvKeyReplacer(replacer)

	for name, key := range flagKeys {
		if err := config.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, errors.WithMessagef(err, "binding flag %s", name)
		}
	}

	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		config.SetConfigFile(path)
		if err = config.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	return config, nil
}

// loadSettings resolves and validates Settings from config.
func loadSettings(config *viper.Viper) (*Settings, error) {
	s := &Settings{
		LogLevel:       config.GetString(keyLogLevel),
		LogFormat:      config.GetString(keyLogFormat),
		Precision:      config.GetInt(keyPrecision),
		Format:         strings.ToLower(config.GetString(keyFormat)),
		LUThreshold:    config.GetInt(keyLUThreshold),
		MaxDimension:   config.GetInt(keyMaxDimension),
		StrictSingular: config.GetBool(keyStrictSingular),
		Memo:           config.GetBool(keyMemo),
	}

	switch {
	case s.Format != formatText && s.Format != formatYAML:
		return nil, errors.Errorf("%s: unknown format %q", keyFormat, s.Format)
	case s.Precision < noRounding:
		return nil, errors.Errorf("%s: must be >= %d, got %d", keyPrecision, noRounding, s.Precision)
	case s.LUThreshold < 0:
		return nil, errors.Errorf("%s: must be >= 0, got %d", keyLUThreshold, s.LUThreshold)
	case s.MaxDimension < 0:
		return nil, errors.Errorf("%s: must be >= 0, got %d", keyMaxDimension, s.MaxDimension)
	}

	return s, nil
}

// Engine builds the determinant engine described by s.
func (s *Settings) Engine() *matrix.Engine {
	opts := []matrix.EngineOption{
		matrix.WithLUThreshold(s.LUThreshold),
		matrix.WithMaxDimension(s.MaxDimension),
	}
	if s.StrictSingular {
		opts = append(opts, matrix.WithStrictSingular())
	}
	if s.Memo {
		opts = append(opts, matrix.WithMemo())
	}

	return matrix.NewEngine(opts...)
}
