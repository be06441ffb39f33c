package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dbmrq/devtracker/internal/config"
	dterrors "github.com/dbmrq/devtracker/internal/errors"
)

func newInitCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize devtracker in the current project",
		Long: `Initialize devtracker in the current project.

This command writes .devtracker/config.yaml with the default settings.
Stored data lives next to it in .devtracker/data unless --data-dir says
otherwise.

Use --force to overwrite existing configuration.

Examples:
  devtracker init          # Initialize in current directory
  devtracker init --force  # Overwrite the existing config`,
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
	c.Flags().BoolP("force", "f", false, "Overwrite existing configuration")
	return c
}

// runInit writes a default config file.
func (a *app) runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path := a.flags.configPath
	if path == "" {
		path = config.DefaultConfigPath
	}

	if _, err := os.Stat(path); err == nil && !force {
		return dterrors.ConfigExists(path)
	}

	cfg := config.NewConfig()
	if err := a.applyStorageFlags(cfg); err != nil {
		return err
	}

	if err := config.Save(cfg, path); err != nil {
		return dterrors.Wrap(err, dterrors.ErrConfig, "failed to write configuration").
			WithDetails("path", path)
	}

	cmd.Printf("Created %s\n", path)
	cmd.Println("")
	cmd.Println("devtracker initialized successfully!")
	cmd.Printf("Edit %s to configure storage and logging.\n", path)
	cmd.Println("Run 'devtracker' to open the board.")

	return nil
}
