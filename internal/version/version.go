// Package version reports the focusguide build version.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at link time:
//
//	go build -ldflags="-X github.com/muurk/focusguide/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/focusguide/internal/version.Commit=1a2b3c4"
//
// Unset values are filled from the embedded VCS stamp, then fall back to
// "dev" and "unknown".
var (
	Version = ""
	Commit  = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		Version, Commit = resolve(Version, Commit, info)
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// resolve fills unset values from build info. The main module version wins
// over the VCS revision when the binary was installed with go install.
func resolve(version, commit string, info *debug.BuildInfo) (string, string) {
	if version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	if commit != "" {
		return version, commit
	}

	var revision string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return version, commit
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if dirty {
		revision += "-dirty"
	}
	return version, revision
}

// Full returns the version with its commit.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// String returns the line printed by the version command.
func String(name string) string {
	return fmt.Sprintf("%s %s %s/%s %s", name, Full(), runtime.GOOS, runtime.GOARCH, runtime.Version())
}
