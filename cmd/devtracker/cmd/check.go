package cmd

import (
	"github.com/spf13/cobra"

	dterrors "github.com/dbmrq/devtracker/internal/errors"
	"github.com/dbmrq/devtracker/internal/tracker"
)

func newCheckCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "check [rn|art|monet|qa]",
		Short: "Show or tick the release checklist",
		Long: `Show the release checklist, or tick one item.

Items:
  rn     Patch notes written
  art    Store icon / screenshots updated
  monet  Monetization pass
  qa     QA / final playtest

Examples:
  devtracker check           # Show the checklist
  devtracker check qa        # Tick the QA item
  devtracker check qa --off  # Untick it`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: tracker.ItemNames(),
		RunE:      a.runCheck,
	}
	c.Flags().Bool("off", false, "Untick the item instead")
	return c
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	off, _ := cmd.Flags().GetBool("off")

	var item tracker.ChecklistItem
	if len(args) == 1 {
		it, ok := tracker.ParseItem(args[0])
		if !ok {
			return dterrors.UnknownChecklistItem(args[0], tracker.ItemNames())
		}
		item = it
	}

	return a.withSession(cmd, func(s *session) error {
		cl := s.tracker.Checklist
		if item != "" {
			cl.Set(item, !off)
		}
		for _, st := range cl.Items() {
			box := "[ ]"
			if st.Done {
				box = "[✓]"
			}
			cmd.Printf("%s %-5s  %s\n", box, st.Item, st.Item.Label())
		}
		cmd.Printf("\n%d/%d done\n", cl.Done(), cl.Total())
		return nil
	})
}
