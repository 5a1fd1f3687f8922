package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	level  string // Active level name, empty when silent
	output string // Active output path, empty when silent
)

const (
	// LogLevelEnvVar controls logging verbosity. When unset or empty,
	// logging is silent. Valid values: "debug", "info", "warn", "error"
	LogLevelEnvVar = "FOCUSGUIDE_LOG_LEVEL"

	// LogFileEnvVar names the file log output is appended to.
	LogFileEnvVar = "FOCUSGUIDE_LOG_FILE"
)

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Initialize creates the global logger.
// Empty arguments fall back to FOCUSGUIDE_LOG_LEVEL and FOCUSGUIDE_LOG_FILE.
// With no level at all, logging is disabled (silent mode).
func Initialize(lvl, path string) error {
	if lvl == "" {
		lvl = os.Getenv(LogLevelEnvVar)
	}
	if path == "" {
		path = os.Getenv(LogFileEnvVar)
	}

	if lvl == "" {
		logger = zap.NewNop()
		level, output = "", ""
		return nil
	}

	out := "stderr"
	if path != "" {
		out = path
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(lvl)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{out},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if path == "" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	l, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger, level, output = l, lvl, out

	return nil
}

// Output returns where log entries go: a file path, "stderr", or "" when
// logging is silent.
func Output() string {
	return output
}

// RedirectStderr moves stderr logging to path at the same level. It is a
// no-op unless the logger currently writes to stderr, and reports whether it
// redirected.
func RedirectStderr(path string) (bool, error) {
	if output != "stderr" {
		return false, nil
	}
	_ = logger.Sync()
	if err := Initialize(level, path); err != nil {
		return false, err
	}
	return true, nil
}

// InitializeFromEnv initializes the logger from environment variables only.
func InitializeFromEnv() error {
	return Initialize("", "")
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
	level, output = "", ""
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogMeasureAttempt logs one attempt to measure a target.
func LogMeasureAttempt(target string, attempt int, status string) {
	Debug("Target measurement",
		zap.String("target", target),
		zap.Int("attempt", attempt),
		zap.String("status", status),
	)
}

// LogLocateFailure logs a target that could not be located.
func LogLocateFailure(target string, attempts int, err error) {
	Warn("Failed to locate target after multiple retries",
		zap.String("target", target),
		zap.Int("attempts", attempts),
		zap.Error(err),
	)
}

// LogPlacement logs a computed tooltip position.
func LogPlacement(target, anchor string, top, left float64) {
	Debug("Tooltip placed",
		zap.String("target", target),
		zap.String("anchor", anchor),
		zap.Float64("top", top),
		zap.Float64("left", left),
	)
}

// LogSessionEvent logs a highlight session state transition.
func LogSessionEvent(target string, event string) {
	Info("Session event",
		zap.String("target", target),
		zap.String("event", event),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
