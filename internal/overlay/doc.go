// Package overlay runs highlight sessions inside a Bubble Tea program.
//
// A Session dims the whole screen except a hole over one target and shows a
// tooltip next to it. It binds the framework-free locator and placement
// packages to Bubble Tea:
//
//   - TeaScheduler turns locator callbacks into tea.Cmds whose messages are
//     routed back through Session.Update, so everything runs on the program's
//     event loop.
//   - Registry is the host-side element measurement: the application records
//     where it drew each target, and the locator reads it back.
//   - The tooltip size is learned from a one-shot layout message produced
//     after the content is rendered once, invisibly.
//   - Compose draws the final frame: four dimmed bands framing the hole, and
//     the tooltip at the computed position.
//
// # Usage
//
//	reg := overlay.NewRegistry()
//	reg.Set("save-button", geometry.NewRect(4, 2, 10, 3))
//
//	s := overlay.NewSession(overlay.Options{
//	    Target:         "save-button",
//	    Content:        "Saves the current document",
//	    Position:       placement.BottomCenter,
//	    OnRequestClose: func() { log.Println("closed") },
//	}, reg, geometry.Size{Width: 80, Height: 24})
//	cmd := s.Init()
//
// The host forwards every message to Session.Update, returns the commands it
// produces, and draws Session.View(background) on top of its own view. A
// ClosedMsg is emitted once the session ends.
//
// # Lifecycle
//
//	Locating ──> Measured ──> Placed ──> Dismissed
//	    └───────────────────────────────────^ (locate failure)
//
// OnRequestClose runs exactly once per session: on a dismissal gesture or when
// the target cannot be located. Close tears a session down without invoking
// it, and guarantees no pending callback fires afterwards.
package overlay
