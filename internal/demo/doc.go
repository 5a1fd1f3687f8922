// Package demo implements the interactive focusguide demo screen.
//
// The screen shows four sections of elements that can be highlighted:
//   - List: four stacked rows
//   - Shaped Buttons: rectangle, circle, card and rounded buttons of
//     different sizes
//   - Grid Layout: six tiles, three per row when the terminal is wide enough
//   - Special Layouts: a full-width header bar and two filled buttons
//
// Selecting an element opens an overlay.Session on it. The tooltip position
// and overlap flag cycle with the element's index within its section, so
// every anchor and both margins can be seen without configuration.
//
// # Targets
//
// Every draw records the screen rectangle of each fully visible element in
// an overlay.Registry. Elements scrolled out of view are removed from the
// registry, so highlighting them exercises the locator's retry path exactly
// like an element that has not been mounted yet.
//
// # Tours
//
// A tour (see package config) plays a sequence of highlights. Each dismissal
// advances to the next step; steps whose target cannot be located close
// themselves and the tour moves on.
//
// WatchTour re-reads the tour file when it changes and posts TourLoadedMsg
// or TourErrorMsg to the running program:
//
//	m := demo.NewModel(demo.Options{Tour: tour})
//	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
//	go demo.WatchTour(ctx, path, p.Send)
//	_, err := p.Run()
package demo
