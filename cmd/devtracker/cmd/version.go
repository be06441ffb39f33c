package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/devtracker/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show detailed version information for devtracker.

Displays the current version, commit hash, build date,
and Go/platform information.`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

// runVersion handles the version command.
func runVersion(cmd *cobra.Command, args []string) error {
	cmd.Println(version.Current().FullString())
	return nil
}
