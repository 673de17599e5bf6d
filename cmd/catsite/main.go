package main

import (
	"github.com/catsite/catsite/internal/cli"
	"github.com/catsite/catsite/internal/version"
)

// Version information (set via ldflags during build)
var (
	buildVersion = "dev"
	gitCommit    = "unknown"
	buildDate    = "unknown"
)

func main() {
	// Set version info from build-time variables
	version.Version = buildVersion
	version.GitCommit = gitCommit
	version.BuildDate = buildDate

	// Execute the root command
	cli.Execute()
}
