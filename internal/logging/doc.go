// Package logging provides structured logging for focusguide.
//
// This package wraps a global zap logger with convenience functions for the
// events the overlay produces: target measurement attempts, locate failures,
// placement results and session transitions.
//
// # Log Levels
//
//   - Debug: Measurement attempts, tooltip sizes, placement coordinates
//   - Info: Session start and dismissal
//   - Warn: Targets that could not be located after all retries
//   - Error: Startup failures
//
// # Configuration
//
// Logging is silent unless a level is given, either explicitly or through
// the FOCUSGUIDE_LOG_LEVEL environment variable. The interactive demo owns
// the terminal, so output goes to the file named by FOCUSGUIDE_LOG_FILE (or
// the --log-file flag) and falls back to stderr:
//
//	if err := logging.Initialize("debug", "/tmp/focusguide.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
//	logging.Debug("Target measured",
//	    zap.String("target", "list-0"),
//	    zap.Int("attempt", 2),
//	)
//
// All logging functions are safe for concurrent use.
package logging
