package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/muurk/focusguide/internal/placement"
)

const (
	appName  = "focusguide"
	tourFile = "tour.yaml"
)

// Serializes writes so concurrent saves of the same path do not interleave.
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/focusguide or $HOME/.config/focusguide
//   - macOS: $HOME/.config/focusguide
//   - Windows: %LOCALAPPDATA%\focusguide
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			return filepath.Join(xdgConfigHome, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetTourPath returns the full path to the default tour file.
func GetTourPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, tourFile), nil
}

// Parse decodes and validates a tour document.
func Parse(data []byte) (*Tour, error) {
	var tour Tour
	if err := yaml.Unmarshal(data, &tour); err != nil {
		return nil, fmt.Errorf("failed to parse tour: %w", err)
	}

	if tour.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedVersion, tour.Version, CurrentVersion)
	}

	tour.applyDefaults()
	if err := tour.Validate(); err != nil {
		return nil, err
	}
	return &tour, nil
}

// Load reads a tour file.
func Load(path string) (*Tour, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tour file: %w", err)
	}
	tour, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tour, nil
}

// LoadDefault reads the tour from the configuration directory and returns
// it with its path. If the file doesn't exist, the built-in tour is returned
// with an empty path.
func LoadDefault() (string, *Tour, error) {
	path, err := GetTourPath()
	if err != nil {
		return "", nil, fmt.Errorf("failed to get tour path: %w", err)
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return "", DefaultTour(), nil
	}
	tour, err := Load(path)
	if err != nil {
		return "", nil, err
	}
	return path, tour, nil
}

// Validate checks every step. The first problem found is returned as a
// *ValidationError.
func (t *Tour) Validate() error {
	if len(t.Steps) == 0 {
		return &ValidationError{Step: -1, Field: "steps", Err: errors.New("tour has no steps")}
	}
	if t.Defaults != nil && t.Defaults.Position != "" {
		if _, err := placement.ParseAnchor(t.Defaults.Position); err != nil {
			return &ValidationError{Step: -1, Field: "defaults.position", Err: err}
		}
	}

	for i, s := range t.Steps {
		if s == nil {
			return &ValidationError{Step: i, Field: "step", Err: errors.New("empty step")}
		}
		if strings.TrimSpace(s.Target) == "" {
			return &ValidationError{Step: i, Field: "target", Err: errors.New("target is required")}
		}
		if _, err := placement.ParseAnchor(s.Position); err != nil {
			return &ValidationError{Step: i, Field: "position", Err: err}
		}
		if s.Offset != nil && !finite(s.Offset.X, s.Offset.Y) {
			return &ValidationError{Step: i, Field: "offset", Err: errors.New("offset must be finite")}
		}
		if s.PlatformOffsetY != nil && !finite(*s.PlatformOffsetY) {
			return &ValidationError{Step: i, Field: "platform_offset_y", Err: errors.New("offset must be finite")}
		}
	}
	return nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Save writes the tour to path.
// Performs an atomic write to prevent corruption on crash.
func (t *Tour) Save(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create tour directory: %w", err)
	}

	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal tour: %w", err)
	}

	header := []byte(`# focusguide tour
# Each step highlights one target of the demo screen.
# Positions: ` + anchorNames() + `
#
# Location: ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary tour file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save tour file: %w", err)
	}
	return nil
}

func anchorNames() string {
	names := make([]string, len(placement.Anchors))
	for i, a := range placement.Anchors {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}
