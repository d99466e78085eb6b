package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jake-scott/go-itertools/internal/config"
	"github.com/jake-scott/go-itertools/internal/textpipe"
)

var Version string

const longMsg = `itx selects lines from a file, or from standard input when no file or "-"
is given, and prints them.  Lines can be filtered by regular expression and
length, numbered, paired with the lines of a second file, or folded into a
sum, product or count.

Every setting may also be supplied as an ITX_* environment variable (eg.
ITX_MIN_LENGTH=3) or in a config file named with --config.`

// NewCmd returns the itx root command.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "itx [flags] [file]",
		Short:        "Lazily filter, number, zip and fold lines of text.",
		Long:         longMsg,
		Version:      Version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "opening input")
				}
				defer f.Close()
				in = f
			}

			var zip io.Reader
			if cfg.Zip != "" {
				f, err := os.Open(cfg.Zip)
				if err != nil {
					return errors.Wrap(err, "opening zip file")
				}
				defer f.Close()
				zip = f
			}

			p, err := textpipe.New(cfg, logger)
			if err != nil {
				return err
			}

			logger.Debug().Interface("config", cfg).Msg("running pipeline")
			return p.Run(in, zip, cmd.OutOrStdout())
		},
	}

	config.RegisterFlags(cmd.Flags())

	return cmd
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "parsing log level %q", level)
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().Timestamp().Logger(), nil
}
