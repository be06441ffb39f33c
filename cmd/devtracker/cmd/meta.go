package cmd

import (
	"github.com/spf13/cobra"
)

func newMetaCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "meta",
		Short: "Show or set the project name and next milestone",
		Long: `Show the project header, or change it.

Examples:
  devtracker meta                                   # Show it
  devtracker meta --project "Basement Hours"        # Rename the project
  devtracker meta --milestone "Friends playtest 11/8"`,
		Args: cobra.NoArgs,
		RunE: a.runMeta,
	}
	c.Flags().StringP("project", "p", "", "Set the project name")
	c.Flags().StringP("milestone", "m", "", "Set the next milestone")
	return c
}

func (a *app) runMeta(cmd *cobra.Command, args []string) error {
	return a.withSession(cmd, func(s *session) error {
		meta := s.tracker.Meta
		// Changed tells an explicit empty value apart from an absent flag.
		if cmd.Flags().Changed("project") {
			v, _ := cmd.Flags().GetString("project")
			meta.SetProjectName(v)
		}
		if cmd.Flags().Changed("milestone") {
			v, _ := cmd.Flags().GetString("milestone")
			meta.SetNextMilestone(v)
		}

		cmd.Printf("Project:        %s\n", meta.ProjectName())
		cmd.Printf("Next milestone: %s\n", meta.NextMilestone())
		return nil
	})
}
