package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/devtracker/internal/kv"
	"github.com/dbmrq/devtracker/internal/tui"
)

func newBoardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board",
		Long: `Open the interactive board.

The board shows the project header, the sprint board, playtest feedback
and the release checklist. Press ? inside the board for key bindings.

Examples:
  devtracker board              # Open the board
  devtracker board --ephemeral  # Try it out without touching saved data`,
		Args: cobra.NoArgs,
		RunE: a.runBoard,
	}
}

// runBoard opens a session and runs the TUI until the user quits.
func (a *app) runBoard(cmd *cobra.Command, args []string) error {
	return a.withSession(cmd, func(s *session) error {
		return tui.Run(s.ctx, s.tracker, tui.Options{
			SessionID: s.id,
			Backend:   kv.Name(s.backend),
			Unsaved:   s.Unsaved(),
			Logger:    s.logger,
		})
	})
}
