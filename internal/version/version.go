// Package version holds build-time version information, set via ldflags.
package version

// Version information (overridden via ldflags during release builds).
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// GitCommit is the git commit the build was made from.
	GitCommit = "unknown"
	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)
