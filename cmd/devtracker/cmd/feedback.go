package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	dterrors "github.com/dbmrq/devtracker/internal/errors"
	"github.com/dbmrq/devtracker/internal/tracker"
)

func newFeedbackCmd(a *app) *cobra.Command {
	feedbackC := &cobra.Command{
		Use:     "feedback",
		Aliases: []string{"fb"},
		Short:   "Manage playtest feedback",
		Long:    "Commands for logging, listing and removing notes from playtesters.",
	}

	addC := &cobra.Command{
		Use:   "add <note>",
		Short: "Log a feedback note",
		Long: `Log a feedback note from a playtest. A missing tester is recorded
as Anonymous.

Examples:
  devtracker feedback add "Got stuck behind the boiler" --tester Sam --severity high
  devtracker feedback add Flashlight feels too dim`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runFeedbackAdd,
	}
	addC.Flags().String("tester", "", "Who reported it")
	addC.Flags().String("severity", string(tracker.DefaultSeverity), "Severity: low, med or high")

	listC := &cobra.Command{
		Use:   "list",
		Short: "List feedback notes",
		Args:  cobra.NoArgs,
		RunE:  a.runFeedbackList,
	}

	rmC := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a feedback note",
		Args:    cobra.ExactArgs(1),
		RunE:    a.runFeedbackRemove,
	}

	feedbackC.AddCommand(addC, listC, rmC)
	return feedbackC
}

func (a *app) runFeedbackAdd(cmd *cobra.Command, args []string) error {
	tester, _ := cmd.Flags().GetString("tester")
	severity, _ := cmd.Flags().GetString("severity")
	note := strings.Join(args, " ")

	sev := tracker.Severity(strings.ToLower(strings.TrimSpace(severity)))
	if !sev.IsValid() {
		return invalidSeverity(severity)
	}

	return a.withSession(cmd, func(s *session) error {
		entry, ok := s.tracker.Feedback.AddFeedback(tester, note, sev)
		if !ok {
			return errors.New("feedback note is blank, nothing logged")
		}
		cmd.Printf("✓ Logged %s from %s (%s)\n", entry.ID, entry.Tester, entry.Severity)
		return nil
	})
}

func (a *app) runFeedbackList(cmd *cobra.Command, args []string) error {
	return a.withSession(cmd, func(s *session) error {
		entries := s.tracker.Feedback.Entries()
		if len(entries) == 0 {
			cmd.Println("No feedback logged.")
			return nil
		}
		for _, e := range entries {
			cmd.Printf("%s  %-4s  %s: %s\n", e.ID, e.Severity, e.Tester, e.Note)
		}
		cmd.Println("")
		cmd.Printf("%d entries, %d high\n", len(entries), s.tracker.Feedback.CountBySeverity(tracker.SeverityHigh))
		return nil
	})
}

func (a *app) runFeedbackRemove(cmd *cobra.Command, args []string) error {
	id := args[0]

	return a.withSession(cmd, func(s *session) error {
		if !s.tracker.Feedback.RemoveFeedback(id) {
			return dterrors.FeedbackNotFound(id)
		}
		cmd.Printf("✓ Removed %s\n", id)
		return nil
	})
}
