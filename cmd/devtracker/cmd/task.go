package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	dterrors "github.com/dbmrq/devtracker/internal/errors"
	"github.com/dbmrq/devtracker/internal/tracker"
)

func newTaskCmd(a *app) *cobra.Command {
	taskC := &cobra.Command{
		Use:   "task",
		Short: "Manage sprint board tasks",
		Long:  "Commands for adding, listing, moving and removing tasks on the sprint board.",
	}

	addC := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task",
		Long: `Add a task to the top of the sprint board. New tasks start as todo.

Examples:
  devtracker task add "Fix door clipping in hallway" --tag bug
  devtracker task add Add jumpscare to basement`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runTaskAdd,
	}
	addC.Flags().StringP("tag", "t", string(tracker.DefaultTag), "Task tag: feature, bug or polish")

	listC := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List tasks newest first, optionally only those with one status.",
		Args:  cobra.NoArgs,
		RunE:  a.runTaskList,
	}
	listC.Flags().StringP("status", "s", "", "Only list tasks with this status: todo, doing or done")

	statusC := &cobra.Command{
		Use:   "status <id> <todo|doing|done>",
		Short: "Move a task to another status",
		Args:  cobra.ExactArgs(2),
		RunE:  a.runTaskStatus,
	}

	rmC := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a task",
		Args:    cobra.ExactArgs(1),
		RunE:    a.runTaskRemove,
	}

	taskC.AddCommand(addC, listC, statusC, rmC)
	return taskC
}

func (a *app) runTaskAdd(cmd *cobra.Command, args []string) error {
	tagFlag, _ := cmd.Flags().GetString("tag")
	text := strings.Join(args, " ")

	tag := tracker.Tag(strings.ToLower(strings.TrimSpace(tagFlag)))
	if !tag.IsValid() {
		return invalidTag(tagFlag)
	}

	return a.withSession(cmd, func(s *session) error {
		task, ok := s.tracker.Tasks.AddTask(text, tag)
		if !ok {
			return errors.New("task text is blank, nothing added")
		}
		cmd.Printf("✓ Added %s [%s] %s\n", task.ID, task.Tag, task.Text)
		return nil
	})
}

func (a *app) runTaskList(cmd *cobra.Command, args []string) error {
	statusFlag, _ := cmd.Flags().GetString("status")

	var filter tracker.TaskStatus
	if statusFlag != "" {
		st, ok := tracker.ParseStatus(statusFlag)
		if !ok {
			return invalidStatus(statusFlag)
		}
		filter = st
	}

	return a.withSession(cmd, func(s *session) error {
		tasks := s.tracker.Tasks.Tasks()
		if filter != "" {
			tasks = s.tracker.Tasks.Filter(filter)
		}
		if len(tasks) == 0 {
			cmd.Println("No tasks yet.")
			return nil
		}
		for _, t := range tasks {
			cmd.Printf("%s  %-5s  %-7s  %s\n", t.ID, t.Status, t.Tag, t.Text)
		}
		cmd.Println("")
		cmd.Printf("%d open, %d done\n", s.tracker.Tasks.OpenCount(), s.tracker.Tasks.CountByStatus(tracker.StatusDone))
		return nil
	})
}

func (a *app) runTaskStatus(cmd *cobra.Command, args []string) error {
	id := args[0]
	status, ok := tracker.ParseStatus(args[1])
	if !ok {
		return invalidStatus(args[1])
	}

	return a.withSession(cmd, func(s *session) error {
		if _, found := s.tracker.Tasks.Get(id); !found {
			return dterrors.TaskNotFound(id)
		}
		s.tracker.Tasks.SetStatus(id, status)
		cmd.Printf("✓ %s is now %s\n", id, status.Label())
		return nil
	})
}

func (a *app) runTaskRemove(cmd *cobra.Command, args []string) error {
	id := args[0]

	return a.withSession(cmd, func(s *session) error {
		if !s.tracker.Tasks.RemoveTask(id) {
			return dterrors.TaskNotFound(id)
		}
		cmd.Printf("✓ Removed %s\n", id)
		return nil
	})
}

func invalidStatus(s string) error {
	names := make([]string, len(tracker.Statuses))
	for i, st := range tracker.Statuses {
		names[i] = string(st)
	}
	return unknownValue("status", s, names)
}

func invalidTag(s string) error {
	names := make([]string, len(tracker.Tags))
	for i, t := range tracker.Tags {
		names[i] = string(t)
	}
	return unknownValue("tag", s, names)
}

func invalidSeverity(s string) error {
	names := make([]string, len(tracker.Severities))
	for i, sev := range tracker.Severities {
		names[i] = string(sev)
	}
	return unknownValue("severity", s, names)
}

func unknownValue(what, s string, valid []string) error {
	return fmt.Errorf("unknown %s %q (valid: %s)", what, s, strings.Join(valid, ", "))
}
