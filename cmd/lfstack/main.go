// SPDX-License-Identifier: MIT
// Package: lfstack/cmd/lfstack
//
// main.go — root command, logger wiring and output helpers.

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lfstack/internal/logging"
)

var (
	debug bool

	rootCmd = &cobra.Command{
		Use:           "lfstack",
		Short:         "Lock-free LIFO stack demo and stress harness",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging (also "+logging.DebugEnv+"=1)")
	rootCmd.AddCommand(newDemoCmd(), newStressCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the stderr loggers honoring --debug.
func newLogger() *logging.Logger {
	return logging.New(os.Stderr, debug)
}

// printf writes to the command's output stream.
func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
