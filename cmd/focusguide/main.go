// Focusguide highlights one element of a terminal screen by dimming
// everything around it and showing a tooltip next to it.
//
// It ships an interactive demo of the overlay and commands that run the
// placement engine directly, which is handy when tuning positions.
//
// Usage:
//
//	focusguide [command] [flags]
//
// Running without arguments launches the interactive demo.
// See 'focusguide --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/focusguide/internal/logging"
	"github.com/muurk/focusguide/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "focusguide",
	Short: "Terminal highlight overlay with automatic tooltip placement",
	Long: `Focusguide dims the screen around one element and places a tooltip next
to it, adjusted to stay inside the screen.

If no command is specified, the interactive demo will launch automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Initialize(logLevel, logFile); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the demo when no subcommand provided
		return runDemo(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level (debug, info, warn, error); defaults to $"+logging.LogLevelEnvVar+", silent when unset")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"Append logs to this file; defaults to $"+logging.LogFileEnvVar+" or stderr")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String("focusguide"))
	},
}
