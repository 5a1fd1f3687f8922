package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	t.Setenv(LogFileEnvVar, "")

	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be silent when no level is configured")
	}
}

func TestInitializeWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focusguide.log")
	t.Setenv(LogFileEnvVar, path)

	if err := Initialize("debug", ""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer SetLogger(nil)

	LogMeasureAttempt("list-0", 1, "pending")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "Target measurement") {
		t.Errorf("log file missing entry, got: %s", data)
	}
}

func TestLogLocateFailureFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogLocateFailure("grid-3", 6, errors.New("boom"))

	entries := logs.FilterMessage("Failed to locate target after multiple retries").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("level = %v, want warn", entries[0].Level)
	}
	fields := entries[0].ContextMap()
	if fields["target"] != "grid-3" {
		t.Errorf("target field = %v, want grid-3", fields["target"])
	}
	if fields["attempts"] != int64(6) {
		t.Errorf("attempts field = %v, want 6", fields["attempts"])
	}
}

func TestRedirectStderr(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	t.Setenv(LogFileEnvVar, "")
	defer SetLogger(nil)

	if err := Initialize("", ""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if moved, err := RedirectStderr(filepath.Join(t.TempDir(), "silent.log")); moved || err != nil {
		t.Errorf("silent logger: RedirectStderr() = %v, %v, want false, nil", moved, err)
	}

	if err := Initialize("warn", ""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if Output() != "stderr" {
		t.Fatalf("Output() = %q, want stderr", Output())
	}

	path := filepath.Join(t.TempDir(), "demo.log")
	moved, err := RedirectStderr(path)
	if err != nil || !moved {
		t.Fatalf("RedirectStderr() = %v, %v, want true, nil", moved, err)
	}
	if Output() != path {
		t.Errorf("Output() = %q, want %q", Output(), path)
	}
	if GetLogger().Core().Enabled(zapcore.InfoLevel) || !GetLogger().Core().Enabled(zapcore.WarnLevel) {
		t.Error("redirect should keep the warn level")
	}

	Warn("Tour not reloaded")
	Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "Tour not reloaded") {
		t.Errorf("log file missing entry, got: %s", data)
	}

	if moved, _ := RedirectStderr(filepath.Join(t.TempDir(), "again.log")); moved {
		t.Error("file logger should not be redirected")
	}
}
