// Package config loads the tours played by the focusguide demo.
//
// A tour is a YAML file listing the targets to highlight, in order, with the
// tooltip content and placement of each:
//
//	version: 1
//	name: Getting started
//	defaults:
//	  position: bottom
//	  allow_overlap: false
//	steps:
//	  - target: list-0
//	    content: Items in a list.
//	    position: bottomLeft
//	  - target: grid-4
//	    content: Overlap allowed.
//	    position: topCenter
//	    allow_overlap: true
//	    offset: {x: 0, y: -1}
//
// Fields left out of a step are inherited from defaults after parsing.
// Positions are validated against the anchor names known to package
// placement; validation failures are reported as *ValidationError naming the
// step and field.
//
// # File Location
//
// Without an explicit path the tour is read from:
//   - Linux: $XDG_CONFIG_HOME/focusguide/tour.yaml or $HOME/.config/focusguide/tour.yaml
//   - macOS: $HOME/.config/focusguide/tour.yaml
//   - Windows: %LOCALAPPDATA%\focusguide\tour.yaml
//
// When that file does not exist, DefaultTour is used.
//
// # Writing Tours
//
// Tour.Save writes atomically through a temporary file, so a watcher reading
// the file never sees a partial document.
package config
