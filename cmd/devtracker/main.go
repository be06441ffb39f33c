// Package main is the entry point for the devtracker CLI application.
package main

import (
	"github.com/dbmrq/devtracker/cmd/devtracker/cmd"
	"github.com/dbmrq/devtracker/internal/version"
)

// Version information - will be set by build flags
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

func main() {
	version.Version = buildVersion
	version.Commit = buildCommit
	version.Date = buildDate

	cmd.Execute()
}
