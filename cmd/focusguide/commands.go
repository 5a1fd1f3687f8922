package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/focusguide/internal/config"
	"github.com/muurk/focusguide/internal/demo"
	"github.com/muurk/focusguide/internal/logging"
	"github.com/muurk/focusguide/internal/ui"
)

// Demo command flags
var (
	tourPath  string
	watchTour bool
	startTour bool
)

func init() {
	demoCmd.Flags().StringVar(&tourPath, "tour", "", "Tour file (default: tour.yaml in the config directory)")
	demoCmd.Flags().BoolVar(&watchTour, "watch", false, "Reload the tour file when it changes")
	demoCmd.Flags().BoolVar(&startTour, "start", false, "Start the tour immediately")

	// The root command runs the demo too, so it accepts the same flags.
	rootCmd.Flags().AddFlagSet(demoCmd.Flags())

	tourCmd.AddCommand(tourInitCmd)
	tourCmd.AddCommand(tourValidateCmd)
	tourInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing tour file")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(tourCmd)
}

// demoCmd launches the interactive demo
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive highlight demo",
	Long: `Run a full-screen demo with a list, shaped buttons, a grid and special
layouts. Select any element to highlight it; press t to play the tour.`,
	Example: `  # Browse the demo screen
  focusguide demo

  # Play a custom tour and reload it on every save
  focusguide demo --tour ./tour.yaml --watch --start`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	path, tour, err := resolveTour(tourPath)
	if err != nil {
		return err
	}

	// Log lines on stderr would draw over the alt screen.
	logPath := filepath.Join(os.TempDir(), "focusguide.log")
	moved, err := logging.RedirectStderr(logPath)
	if err != nil {
		return fmt.Errorf("failed to redirect logs: %w", err)
	}
	if moved {
		fmt.Fprintf(cmd.ErrOrStderr(), "Logging to %s while the demo runs\n", logPath)
	}

	model := demo.NewModel(demo.Options{Tour: tour, AutoStart: startTour})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if watchTour {
		if path == "" {
			return errors.New("--watch needs a tour file; pass --tour or run 'focusguide tour init'")
		}
		go func() {
			if err := demo.WatchTour(ctx, path, p.Send); err != nil {
				logging.Error("Tour watcher stopped", zap.Error(err))
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo error: %w", err)
	}
	return nil
}

// resolveTour loads the tour to play. It returns the file path when the tour
// came from disk, or "" for the built-in tour.
func resolveTour(path string) (string, *config.Tour, error) {
	if path == "" {
		return config.LoadDefault()
	}
	tour, err := config.Load(path)
	if err != nil {
		return "", nil, err
	}
	return path, tour, nil
}

var forceInit bool

// tourCmd groups tour file helpers
var tourCmd = &cobra.Command{
	Use:   "tour",
	Short: "Create and check tour files",
}

var tourInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the built-in tour to a file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := tourArg(args)
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.DefaultTour().Save(path); err != nil {
			return err
		}

		p := ui.NewPrinter(cmd.OutOrStdout())
		p.PrintResult(ui.NewSuccessResult("Tour written",
			ui.Param{Key: "Path", Value: path},
			ui.Param{Key: "Steps", Value: fmt.Sprint(len(config.DefaultTour().Steps))},
		).AddHint("focusguide demo --tour " + path + " --watch"))
		return nil
	},
}

var tourValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a tour file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := tourArg(args)
		if err != nil {
			return err
		}

		p := ui.NewPrinter(cmd.OutOrStdout())
		tour, err := config.Load(path)
		if err != nil {
			var hints []string
			if config.IsValidationError(err) {
				hints = append(hints, "positions: run 'focusguide positions' for the list")
			}
			p.PrintError("Invalid tour", err, hints...)
			return errors.New("tour validation failed")
		}

		rows := make([][]string, len(tour.Steps))
		for i, s := range tour.Steps {
			rows[i] = []string{
				fmt.Sprint(i + 1), s.Target, s.Anchor().String(),
				yesNo(s.Overlap()), s.OffsetPoint().String(),
			}
		}
		p.PrintTable(ui.Table{
			Header: []string{"Step", "Target", "Position", "Overlap", "Offset"},
			Rows:   rows,
			Footer: fmt.Sprintf("(%d steps)", len(rows)),
		})
		return nil
	},
}

func tourArg(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return config.GetTourPath()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
