package buildconfig

import (
	"runtime"
	"runtime/debug"
)

// Build-time variables injected via ldflags:
//
//	-X github.com/Harshitk-cp/bdi/internal/buildconfig.version=v0.3.0
var (
	version = "dev"
	commit  = "unknown"
)

// Version returns the build version
func Version() string {
	return version
}

// Commit returns the git commit hash. Without ldflags it falls back to the
// vcs.revision the go toolchain stamps into the binary.
func Commit() string {
	if commit != "unknown" {
		return commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return s.Value
			}
		}
	}
	return commit
}

// VersionInfo returns full version information, as reported by
// `bdi version` and GET /health.
func VersionInfo() map[string]string {
	return map[string]string{
		"version": Version(),
		"commit":  Commit(),
		"go":      runtime.Version(),
	}
}
