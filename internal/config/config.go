// Package config loads and validates the settings of the itx command.
//
// Settings are read, in increasing order of precedence, from an optional
// config file, ITX_* environment variables and command line flags.  An
// optional .env file can seed the environment; variables already set win.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to setting names to form environment variables,
// eg. ITX_MIN_LENGTH.
const EnvPrefix = "ITX"

// Reduction modes.
const (
	ReduceNone    = ""
	ReduceSum     = "sum"
	ReduceProduct = "product"
	ReduceCount   = "count"
)

// Config holds the settings of a single itx run.
type Config struct {
	// Match keeps only lines matching this regular expression.
	Match string `mapstructure:"match"`
	// MinLength keeps only lines of at least this many characters.
	MinLength int `mapstructure:"min-length" validate:"gte=0"`
	// Number prefixes each output line with its line number in the input.
	Number bool `mapstructure:"number"`
	// Zip pairs each selected line with the next line of this file.
	Zip string `mapstructure:"zip" validate:"omitempty,file"`
	// Limit stops after this many output lines; 0 means no limit.
	Limit int `mapstructure:"limit" validate:"gte=0"`
	// Reduce folds numeric lines instead of printing them.
	Reduce string `mapstructure:"reduce" validate:"omitempty,oneof=sum product count"`

	LogLevel string `mapstructure:"log-level" validate:"oneof=trace debug info warn error"`
	// Trace enables stage tracing at debug level.
	Trace bool `mapstructure:"trace"`
}

// RegisterFlags adds a flag for every setting to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (yaml, json or toml)")
	fs.String("env-file", "", "path to a .env file of ITX_* variables")
	fs.String("match", "", "only keep lines matching this regular expression")
	fs.Int("min-length", 0, "only keep lines with at least this many characters")
	fs.Bool("number", false, "prefix output lines with their input line number")
	fs.String("zip", "", "pair selected lines with the lines of this file")
	fs.Int("limit", 0, "stop after this many output lines")
	fs.String("reduce", "", "fold numeric lines: sum, product or count")
	fs.String("log-level", "warn", "log level: trace, debug, info, warn or error")
	fs.Bool("trace", false, "log the pipeline stages as they run")
}

// Load builds a Config from fs, the environment and the config file named by
// the --config flag, if any, then validates it.  The --env-file flag names a
// .env file that is loaded into the process environment first.
func Load(fs *pflag.FlagSet) (*Config, error) {
	if f := fs.Lookup("env-file"); f != nil && f.Value.String() != "" {
		if err := godotenv.Load(f.Value.String()); err != nil {
			return nil, errors.Wrapf(err, "loading env file %s", f.Value.String())
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "binding flags")
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	if c.Reduce != ReduceNone && (c.Zip != "" || c.Number) {
		return errors.New("invalid config: --reduce cannot be combined with --zip or --number")
	}

	return nil
}
