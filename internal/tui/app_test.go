package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/devtracker/internal/kv"
	"github.com/dbmrq/devtracker/internal/logging"
	"github.com/dbmrq/devtracker/internal/tracker"
	"github.com/dbmrq/devtracker/internal/tui/components"
)

func TestMain(m *testing.M) {
	statusTimeout = 0
	os.Exit(m.Run())
}

func newTestModel(t *testing.T, opts Options) (*Model, *tracker.Tracker, *kv.MemoryBackend) {
	t.Helper()
	backend := kv.NewMemoryBackend()
	store := kv.NewStore(backend, logging.NewNoop())
	tr := tracker.New(store, nil, tracker.WithLogger(logging.NewNoop()))
	if opts.Logger == nil {
		opts.Logger = logging.NewNoop()
	}
	return New(tr, opts), tr, backend
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// send delivers msg and then feeds back the board's own follow-up messages,
// as the Bubble Tea runtime would.
func send(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	for i := 0; i < 4 && cmd != nil; i++ {
		next := cmd()
		switch next.(type) {
		case components.FormSubmittedMsg, components.FormCanceledMsg,
			components.ConfirmYesMsg, components.ConfirmNoMsg, components.HelpClosedMsg,
			RefreshMsg, StatusMsg:
			_, cmd = m.Update(next)
		default:
			return cmd
		}
	}
	return cmd
}

func typeInto(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNew(t *testing.T) {
	m, tr, _ := newTestModel(t, Options{})
	if m == nil {
		t.Fatal("New() returned nil")
	}
	if !tr.Initialized() {
		t.Error("New should initialize the tracker")
	}
	if m.Focus() != PaneTasks {
		t.Errorf("Initial focus should be the task pane, got %v", m.Focus())
	}
	if len(m.checks) != len(tracker.ChecklistItems) {
		t.Errorf("Expected %d checklist rows, got %d", len(tracker.ChecklistItems), len(m.checks))
	}
}

func TestModelInit(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init should return a refresh command")
	}
	if _, ok := cmd().(RefreshMsg); !ok {
		t.Error("Init command should produce RefreshMsg")
	}
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})

	_, cmd := m.Update(runes("q"))
	if !m.quitting {
		t.Error("Model should be quitting after 'q' press")
	}
	if cmd == nil {
		t.Error("Should return a quit command")
	}
	if m.View() != "Bye!\n" {
		t.Errorf("Unexpected quitting view %q", m.View())
	}
}

func TestModelQuitCtrlCInForm(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	send(m, runes("a"))
	if m.activeForm == nil {
		t.Fatal("'a' should open the task form")
	}

	m.Update(keyOf(tea.KeyCtrlC))
	if !m.quitting {
		t.Error("Ctrl+C should quit even inside a form")
	}
}

func TestModelQuitUnsavedAsks(t *testing.T) {
	m, _, _ := newTestModel(t, Options{Unsaved: true})

	m.Update(runes("q"))
	if m.quitting {
		t.Fatal("Quit should ask for confirmation when changes are not saved")
	}
	if !m.confirmDlg.IsVisible() || m.confirmDlg.Action() != components.ConfirmQuit {
		t.Fatal("Quit confirmation should be visible")
	}

	send(m, runes("y"))
	if !m.quitting {
		t.Error("Confirming should quit")
	}
}

func TestModelPaneCycle(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})

	order := []Pane{PaneFeedback, PaneChecklist, PaneMeta, PaneTasks}
	for _, want := range order {
		m.Update(keyOf(tea.KeyTab))
		if m.Focus() != want {
			t.Fatalf("Expected focus %v, got %v", want, m.Focus())
		}
	}

	m.Update(keyOf(tea.KeyShiftTab))
	if m.Focus() != PaneMeta {
		t.Errorf("Shift+Tab should go back to the meta pane, got %v", m.Focus())
	}
}

func TestModelAddTask(t *testing.T) {
	m, tr, backend := newTestModel(t, Options{})

	send(m, runes("a"))
	typeInto(m, "Add sprint animation to Killer")
	m.Update(keyOf(tea.KeyTab))
	m.Update(keyOf(tea.KeyRight))
	send(m, keyOf(tea.KeyEnter))

	tasks := tr.Tasks.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("Expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Text != "Add sprint animation to Killer" {
		t.Errorf("Unexpected text %q", tasks[0].Text)
	}
	if tasks[0].Tag != tracker.TagBug {
		t.Errorf("Expected tag bug, got %q", tasks[0].Tag)
	}
	if tasks[0].Status != tracker.StatusTodo {
		t.Errorf("Expected status todo, got %q", tasks[0].Status)
	}
	if m.activeForm != nil {
		t.Error("Form should close after adding")
	}
	if m.taskList.Len() != 1 {
		t.Errorf("Task list should show the new task, got %d rows", m.taskList.Len())
	}
	if m.statusBar.Message() != "Task added" {
		t.Errorf("Unexpected status message %q", m.statusBar.Message())
	}
	if _, err := backend.Get(tracker.KeyTasks); err != nil {
		t.Errorf("Task list should be persisted: %v", err)
	}
}

func TestModelAddTaskBlankIsDropped(t *testing.T) {
	m, tr, _ := newTestModel(t, Options{})

	send(m, runes("a"))
	typeInto(m, "   ")
	send(m, keyOf(tea.KeyEnter))

	if tr.Tasks.Len() != 0 {
		t.Errorf("Blank task should be dropped, got %d tasks", tr.Tasks.Len())
	}
	if m.activeForm == nil {
		t.Error("Form should stay open after a blank submission")
	}

	send(m, keyOf(tea.KeyEsc))
	if m.activeForm != nil {
		t.Error("Esc should close the form")
	}
}

func TestModelTaskStatusKeys(t *testing.T) {
	m, tr, _ := newTestModel(t, Options{})
	task, _ := tr.Tasks.AddTask("Fix gate collider", tracker.TagBug)
	send(m, RefreshMsg{})

	send(m, runes("2"))
	if got, _ := tr.Tasks.Get(task.ID); got.Status != tracker.StatusDoing {
		t.Errorf("'2' should set doing, got %q", got.Status)
	}

	send(m, runes("3"))
	if got, _ := tr.Tasks.Get(task.ID); got.Status != tracker.StatusDone {
		t.Errorf("'3' should set done, got %q", got.Status)
	}

	send(m, runes("s"))
	if got, _ := tr.Tasks.Get(task.ID); got.Status != tracker.StatusTodo {
		t.Errorf("'s' should cycle done back to todo, got %q", got.Status)
	}

	if m.header.View() == "" {
		t.Error("Header should render")
	}
}

func TestModelDeleteTask(t *testing.T) {
	m, tr, _ := newTestModel(t, Options{})
	tr.Tasks.AddTask("first", tracker.TagFeature)
	tr.Tasks.AddTask("second", tracker.TagPolish)
	send(m, RefreshMsg{})

	send(m, runes("x"))
	if !m.confirmDlg.IsVisible() {
		t.Fatal("Delete should ask for confirmation")
	}
	send(m, runes("n"))
	if tr.Tasks.Len() != 2 {
		t.Fatal("Declining should keep the task")
	}

	send(m, runes("x"))
	send(m, runes("y"))
	tasks := tr.Tasks.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "first" {
		t.Errorf("Expected only 'first' to remain, got %+v", tasks)
	}
}

func TestModelDeleteOnEmptyListDoesNothing(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	send(m, runes("x"))
	if m.confirmDlg.IsVisible() {
		t.Error("Delete with no task should not ask")
	}
}

func TestModelAddFeedback(t *testing.T) {
	m, tr, _ := newTestModel(t, Options{})
	m.Update(keyOf(tea.KeyTab))

	send(m, runes("a"))
	m.Update(keyOf(tea.KeyTab)) // leave tester blank
	typeInto(m, "Got stuck in gate collider")
	m.Update(keyOf(tea.KeyTab))
	m.Update(keyOf(tea.KeyRight))
	send(m, keyOf(tea.KeyEnter))

	entries := tr.Feedback.Entries()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Tester != tracker.DefaultTester {
		t.Errorf("Expected tester %q, got %q", tracker.DefaultTester, entries[0].Tester)
	}
	if entries[0].Severity != tracker.SeverityHigh {
		t.Errorf("Expected severity high, got %q", entries[0].Severity)
	}
	if m.feedbackList.Len() != 1 {
		t.Error("Feedback list should show the new entry")
	}

	send(m, runes("d"))
	send(m, keyOf(tea.KeyEnter))
	if tr.Feedback.Count() != 0 {
		t.Error("Confirmed delete should remove the entry")
	}
}

func TestModelEditMeta(t *testing.T) {
	m, tr, _ := newTestModel(t, Options{})
	m.Update(keyOf(tea.KeyShiftTab))
	if m.Focus() != PaneMeta {
		t.Fatalf("Expected meta pane focus, got %v", m.Focus())
	}

	send(m, runes("e"))
	name := m.metaForm.GetField("projectName").(*components.TextInput)
	if name.Value() != tracker.DefaultMeta.ProjectName {
		t.Errorf("Meta form should be prefilled, got %q", name.Value())
	}

	name.SetValue("Castle Escape")
	send(m, keyOf(tea.KeyEnter))

	if tr.Meta.ProjectName() != "Castle Escape" {
		t.Errorf("Expected project name to be saved, got %q", tr.Meta.ProjectName())
	}
	if tr.Meta.NextMilestone() != tracker.DefaultMeta.NextMilestone {
		t.Errorf("Milestone should be unchanged, got %q", tr.Meta.NextMilestone())
	}
}

func TestModelFeedbackSeverityResetsOnOpen(t *testing.T) {
	m, tr, _ := newTestModel(t, Options{})
	m.Update(keyOf(tea.KeyTab))

	send(m, runes("a"))
	typeInto(m, "Sam")
	m.Update(keyOf(tea.KeyTab))
	typeInto(m, "Lights flicker")
	m.Update(keyOf(tea.KeyTab))
	m.Update(keyOf(tea.KeyRight))
	send(m, keyOf(tea.KeyEnter))

	if got := tr.Feedback.Entries()[0].Severity; got != tracker.SeverityHigh {
		t.Fatalf("Expected severity high, got %q", got)
	}

	send(m, runes("a"))
	sev := m.feedbackForm.GetField("severity").(*components.Choice)
	if sev.Value() != string(tracker.DefaultSeverity) {
		t.Errorf("Expected severity %q on reopen, got %q", tracker.DefaultSeverity, sev.Value())
	}
}

func TestModelTaskTagKeptOnOpen(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})

	send(m, runes("a"))
	typeInto(m, "Fix hallway door")
	m.Update(keyOf(tea.KeyTab))
	m.Update(keyOf(tea.KeyRight))
	send(m, keyOf(tea.KeyEnter))

	send(m, runes("a"))
	tag := m.taskForm.GetField("tag").(*components.Choice)
	if tag.Value() != string(tracker.TagBug) {
		t.Errorf("Expected tag %q kept, got %q", tracker.TagBug, tag.Value())
	}
}

func TestModelEditMetaKeepsWhitespace(t *testing.T) {
	m, tr, _ := newTestModel(t, Options{})
	m.Update(keyOf(tea.KeyShiftTab))

	send(m, runes("e"))
	m.metaForm.GetField("projectName").(*components.TextInput).SetValue("  Castle Escape ")
	m.metaForm.GetField("nextMilestone").(*components.TextInput).SetValue("")
	send(m, keyOf(tea.KeyEnter))

	if got := tr.Meta.ProjectName(); got != "  Castle Escape " {
		t.Errorf("Expected project name stored as typed, got %q", got)
	}
	if got := tr.Meta.NextMilestone(); got != "" {
		t.Errorf("Expected empty milestone, got %q", got)
	}
}

func TestModelChecklistToggle(t *testing.T) {
	m, tr, _ := newTestModel(t, Options{})
	m.Update(keyOf(tea.KeyTab))
	m.Update(keyOf(tea.KeyTab))
	if m.Focus() != PaneChecklist {
		t.Fatalf("Expected checklist focus, got %v", m.Focus())
	}

	m.Update(runes("j"))
	m.Update(keyOf(tea.KeySpace))
	if !tr.Checklist.IsDone(tracker.ItemIconScreenshots) {
		t.Error("Space should toggle the selected item")
	}
	if !m.checks[1].Checked() || !m.checks[1].Focused() {
		t.Error("Checklist row should reflect the new state and keep focus")
	}

	m.Update(runes("k"))
	m.Update(runes("k"))
	if m.checkSel != 0 {
		t.Errorf("Selection should stop at the top, got %d", m.checkSel)
	}
}

func TestModelHelpOverlay(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})

	m.Update(runes("?"))
	if !m.helpOverlay.IsVisible() {
		t.Fatal("'?' should show help")
	}

	// Keys go to the overlay while it is open.
	send(m, runes("a"))
	if m.activeForm != nil {
		t.Error("Board keys should be ignored while help is open")
	}

	send(m, keyOf(tea.KeyEsc))
	if m.helpOverlay.IsVisible() {
		t.Error("Esc should close help")
	}
}

func TestModelStatusClears(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})

	m.Update(StatusMsg{Text: "first"})
	m.Update(StatusMsg{Text: "second"})

	m.Update(clearStatusMsg{seq: 1})
	if m.statusBar.Message() != "second" {
		t.Error("A stale clear should not remove a newer message")
	}
	m.Update(clearStatusMsg{seq: 2})
	if m.statusBar.Message() != "" {
		t.Error("Matching clear should remove the message")
	}
}

func TestModelWindowSizeAndView(t *testing.T) {
	m, tr, _ := newTestModel(t, Options{SessionID: "abcdef0123456789", Backend: "memory"})
	tr.Tasks.AddTask("Add sprint animation to Killer", tracker.TagFeature)
	tr.Feedback.AddFeedback("Razy", "Got stuck", tracker.SeverityLow)
	send(m, RefreshMsg{})

	for _, size := range []tea.WindowSizeMsg{{Width: 120, Height: 40}, {Width: 70, Height: 30}} {
		m.Update(size)
		if m.width != size.Width || m.height != size.Height {
			t.Errorf("Window size not stored: %dx%d", m.width, m.height)
		}

		view := m.View()
		for _, want := range []string{
			"My Roblox Horror Game",
			"Backlog / Sprint Board",
			"Playtest Feedback",
			"Release Checklist",
			"Add sprint animation",
			"Razy",
			"abcdef01",
		} {
			if !strings.Contains(view, want) {
				t.Errorf("View at width %d should contain %q", size.Width, want)
			}
		}
	}
}

func TestModelViewShowsActiveForm(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	send(m, runes("a"))

	if !strings.Contains(m.View(), "+ Add Task") {
		t.Error("View should render the open form")
	}
}

func TestRenderOverlayWithoutSize(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	got := m.renderOverlay("base", "overlay")
	if got != "base\noverlay" {
		t.Errorf("Unexpected overlay without size %q", got)
	}
	if m.renderOverlay("base", "") != "base" {
		t.Error("Empty overlay should return the base view")
	}
}

func TestNextStatus(t *testing.T) {
	tests := []struct {
		in, want tracker.TaskStatus
	}{
		{tracker.StatusTodo, tracker.StatusDoing},
		{tracker.StatusDoing, tracker.StatusDone},
		{tracker.StatusDone, tracker.StatusTodo},
		{"bogus", tracker.StatusTodo},
	}
	for _, tt := range tests {
		if got := nextStatus(tt.in); got != tt.want {
			t.Errorf("nextStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPaneString(t *testing.T) {
	if PaneTasks.String() != "Backlog / Sprint Board" {
		t.Errorf("Unexpected title %q", PaneTasks.String())
	}
	if Pane(99).String() != "?" {
		t.Error("Unknown pane should render '?'")
	}
}
