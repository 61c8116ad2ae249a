// Package version provides build version information for depthls.
// This is a separate package so main and cli can consume it without cycles.
package version

// Version is the build version string, set by ldflags during release builds.
// Format: vX.Y.Z or vX.Y.Z-dev for development builds.
var Version = "v1.0.0-dev"

// BuildTime is the build timestamp, set by ldflags during build.
var BuildTime = "unknown"
