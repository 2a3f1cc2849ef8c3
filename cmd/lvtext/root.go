// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// Environment fallbacks for flags that usually come from deployment config.
const (
	envRedisAddr = "LVTEXT_REDIS_ADDR"
	envRedisKey  = "LVTEXT_REDIS_KEY"
)

type rootOptions struct {
	logLevel string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "lvtext",
		Short:         "Grapheme-aware edit distance, alignment, segmentation and WER",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logger

			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	cmd.AddCommand(
		newDistanceCmd(opts),
		newAlignCmd(opts),
		newSegmentCmd(opts),
		newWERCmd(opts),
	)

	return cmd
}

// run wraps a command body so failures are logged once before cobra
// returns them to main.
func (o *rootOptions) run(name string, fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		o.logger.Debug("command start", "cmd", name, "args", len(args))
		if err := fn(cmd, args); err != nil {
			o.logger.Error("command failed", "cmd", name, "err", err)

			return err
		}

		return nil
	}
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("lvtext: bad --log-level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
