// Package ui provides terminal output components for the focusguide CLI.
//
// The components are rendered with Lipgloss and printed once; they are not
// interactive. The interactive demo lives in package demo and only borrows the
// palette defined here.
//
// # Components
//
//   - Header: command banner showing the operation and its parameters
//   - Result: success, warning, or failure box with ordered details and hints
//   - Table: go-pretty listing, used for anchor comparisons
//
// A Printer ties them to a writer and a terminal width:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintHeader("Placement", "focusguide place",
//	    ui.Param{Key: "Anchor", Value: "bottomLeft"},
//	)
//	p.PrintResult(ui.NewSuccessResult("Tooltip placed",
//	    ui.Param{Key: "Top", Value: "64"},
//	))
//
// # Palette
//
// The colors are shared with the overlay: DimColor for the darkened surface
// and TooltipBackground for the tooltip fill.
//
// # Terminal Size
//
// GetTerminalSize caps the width to a readable range for boxes. GetScreenSize
// reports the real terminal size and is what the overlay uses when it has to
// cover the screen.
package ui
