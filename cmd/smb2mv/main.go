// SPDX-FileCopyrightText: (C) 2026 The smb2mv Authors
// SPDX-License-Identifier: Apache 2.0

// Package main implements the smb2mv command, a mv-alike that moves a
// file between two mounts of the same CIFS/SMB2 server using
// server-side copy.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/smbkit/smb2mv/internal/move"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"hermannm.dev/devlog"
)

var version = "dev"

// usageExitCode is used for argument and flag errors, before the
// filesystem is touched. Move failures always exit 1.
const usageExitCode = 2

type rootConfig struct {
	Debug bool `mapstructure:"debug"`
}

var (
	config rootConfig
	level  = new(slog.LevelVar)
)

func init() {
	slog.SetDefault(slog.New(devlog.NewHandler(os.Stderr, &devlog.Options{Level: level})))
}

func newRootCmd(outcome *move.Outcome) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "smb2mv SOURCE DESTINATION",
		Short:   "Move a file between mounts of the same SMB server without copying through the client",
		Version: version,
		Long: `
smb2mv moves a single file between two mount points of the same
CIFS/SMB2 server. Instead of streaming the file through the client it
asks the server to copy the bytes itself, then removes the source.
Both SOURCE and DESTINATION must be on CIFS/SMB2 mounts.

DESTINATION may be an existing directory, in which case the file is
created inside it under SOURCE's base name. An existing destination
file is never overwritten. The source is only removed after the copy
has fully succeeded.`,
		Example: `
  smb2mv /mnt/shareA/report.pdf /mnt/shareB/
  smb2mv /mnt/shareA/x.txt /mnt/shareB/y.txt`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(cmd); err != nil {
				return err
			}
			if err := viper.Unmarshal(&config); err != nil {
				return fmt.Errorf("failed to unmarshal config: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Operands parsed; failures from here on are move
			// failures, not usage errors.
			cmd.SilenceUsage = true

			if config.Debug {
				level.Set(slog.LevelDebug)
			}

			var err error
			*outcome, err = move.New().Move(args[0], args[1])
			return err
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Log each step of the move")

	return rootCmd
}

func bindFlags(cmd *cobra.Command) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err == nil {
			err = viper.BindPFlag(f.Name, f)
		}
	})
	return err
}

func main() {
	// The single point where the terminal outcome of the move becomes
	// the process exit status.
	outcome := move.OutcomeSuccess
	if err := newRootCmd(&outcome).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "smb2mv:", err)
		if outcome == move.OutcomeSuccess {
			os.Exit(usageExitCode)
		}
	}
	os.Exit(outcome.ExitCode())
}
