// Package tui provides the interactive devtracker board.
package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/devtracker/internal/logging"
	"github.com/dbmrq/devtracker/internal/tracker"
	"github.com/dbmrq/devtracker/internal/tui/components"
	"github.com/dbmrq/devtracker/internal/tui/styles"
)

// Pane identifies a card of the board.
type Pane int

const (
	PaneMeta Pane = iota
	PaneTasks
	PaneFeedback
	PaneChecklist
	paneCount
)

// String returns the pane title.
func (p Pane) String() string {
	switch p {
	case PaneMeta:
		return "Project"
	case PaneTasks:
		return "Backlog / Sprint Board"
	case PaneFeedback:
		return "Playtest Feedback"
	case PaneChecklist:
		return "Release Checklist"
	default:
		return "?"
	}
}

// Form IDs.
const (
	formTask     = "task"
	formFeedback = "feedback"
	formMeta     = "meta"
)

// Options configures the board.
type Options struct {
	// SessionID is shown in the header.
	SessionID string
	// Backend is the storage backend name shown in the header.
	Backend string
	// Unsaved marks a session whose storage is unavailable. Quitting asks
	// for confirmation.
	Unsaved bool
	Logger  *logging.Logger
}

// Model is the Bubble Tea model for the devtracker board.
type Model struct {
	tracker *tracker.Tracker
	opts    Options
	logger  *logging.Logger

	// Components
	header       *components.Header
	taskList     *components.TaskList
	feedbackList *components.FeedbackList
	checks       []*components.Checkbox
	statusBar    *components.StatusBar
	helpOverlay  *components.HelpOverlay
	confirmDlg   *components.ConfirmDialog

	taskForm     *components.Form
	feedbackForm *components.Form
	metaForm     *components.Form
	activeForm   *components.Form

	// State
	focus     Pane
	checkSel  int
	statusSeq int

	// Window dimensions
	width  int
	height int

	quitting bool
}

// New creates the board over tr. tr is initialized if it was not already.
func New(tr *tracker.Tracker, opts Options) *Model {
	tr.Initialize()

	logger := opts.Logger
	if logger == nil {
		logger = logging.Global()
	}

	m := &Model{
		tracker:      tr,
		opts:         opts,
		logger:       logger.With("component", "tui"),
		header:       components.NewHeader(),
		taskList:     components.NewTaskList(),
		feedbackList: components.NewFeedbackList(),
		statusBar:    components.NewStatusBar(),
		helpOverlay:  components.NewHelpOverlay(),
		confirmDlg:   components.NewConfirmDialog(),
		taskForm:     newTaskForm(),
		feedbackForm: newFeedbackForm(),
		metaForm:     newMetaForm(),
		focus:        PaneTasks,
	}

	for _, it := range tracker.ChecklistItems {
		cb := components.NewCheckbox(string(it), it.Label())
		cb.SetHint(it.Hint())
		m.checks = append(m.checks, cb)
	}

	m.header.SetSessionID(opts.SessionID)
	m.header.SetBackend(opts.Backend)
	m.statusBar.SetSaved(!opts.Unsaved)
	m.setFocus(PaneTasks)
	m.refresh()
	return m
}

func newTaskForm() *components.Form {
	text := components.NewTextInput("text", "Task")
	text.SetPlaceholder("ex: Add sprint animation to Killer")

	tag := components.NewChoice("tag", "Tag", tagOptions()...)
	tag.Select(string(tracker.DefaultTag))
	tag.SetPillStyle(func(v string) string {
		return styles.Pill(v).Render(tracker.Tag(v).Label())
	})

	f := components.NewForm(formTask, "New task")
	f.AddFields(text, tag, components.NewButton("submit", "+ Add Task"))
	return f
}

func tagOptions() []components.Option {
	opts := make([]components.Option, 0, len(tracker.Tags))
	for _, t := range tracker.Tags {
		opts = append(opts, components.Option{Value: string(t), Label: t.Label()})
	}
	return opts
}

func newFeedbackForm() *components.Form {
	tester := components.NewTextInput("tester", "Tester")
	tester.SetPlaceholder("ex: Razy / playtester #12")

	note := components.NewTextInput("note", "What happened?")
	note.SetPlaceholder("ex: Got stuck in gate collider in castle map when sprinting sideways")
	note.SetCharLimit(1000)

	opts := make([]components.Option, 0, len(tracker.Severities))
	for _, s := range tracker.Severities {
		opts = append(opts, components.Option{Value: string(s), Label: s.Label()})
	}
	sev := components.NewChoice("severity", "Severity", opts...)
	sev.Select(string(tracker.DefaultSeverity))
	sev.SetPillStyle(func(v string) string {
		return styles.Pill("sev").Render(tracker.Severity(v).Label())
	})

	f := components.NewForm(formFeedback, "Log feedback")
	f.SetSubtitle("Log bugs / pain points from testers during playtests.")
	f.AddFields(tester, note, sev, components.NewButton("submit", "+ Log Feedback"))
	return f
}

func newMetaForm() *components.Form {
	name := components.NewTextInput("projectName", "Project name")
	milestone := components.NewTextInput("nextMilestone", "Next milestone")
	milestone.SetPlaceholder(`Example: "Alpha Playtest 10/31", "Patch v0.2 Friday", etc.`)

	f := components.NewForm(formMeta, "Edit project")
	f.AddFields(name, milestone, components.NewButton("submit", "Save"))
	return f
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return refreshCmd
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Overlays capture input while visible.
	if _, ok := msg.(tea.KeyMsg); ok {
		if m.confirmDlg.IsVisible() {
			return m, m.confirmDlg.Update(msg)
		}
		if m.helpOverlay.IsVisible() {
			return m, m.helpOverlay.Update(msg)
		}
		if m.activeForm != nil {
			if msg.(tea.KeyMsg).String() == "ctrl+c" {
				return m.quit()
			}
			_, cmd := m.activeForm.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case RefreshMsg:
		m.refresh()
		return m, nil

	case StatusMsg:
		return m, m.setStatus(msg.Text, msg.Kind)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusBar.ClearMessage()
		}
		return m, nil

	case components.FormSubmittedMsg:
		return m.handleFormSubmit(msg)

	case components.FormCanceledMsg:
		m.closeForm()
		return m, nil

	case components.ConfirmYesMsg:
		return m.handleConfirmYes(msg)

	case components.ConfirmNoMsg, components.HelpClosedMsg:
		return m, nil

	case QuitMsg:
		return m.quit()
	}

	return m, nil
}

// handleKeyPress handles board keys outside forms and overlays.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()

	case "q":
		if m.opts.Unsaved {
			m.confirmDlg.ShowQuit()
			return m, nil
		}
		return m.quit()

	case "?":
		m.helpOverlay.Toggle()
		return m, nil

	case "tab":
		m.setFocus((m.focus + 1) % paneCount)
		return m, nil

	case "shift+tab":
		m.setFocus((m.focus + paneCount - 1) % paneCount)
		return m, nil
	}

	switch m.focus {
	case PaneMeta:
		return m.handleMetaKey(msg)
	case PaneTasks:
		return m.handleTaskKey(msg)
	case PaneFeedback:
		return m.handleFeedbackKey(msg)
	case PaneChecklist:
		return m.handleChecklistKey(msg)
	}
	return m, nil
}

func (m *Model) handleMetaKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "e", "enter":
		cmd := m.openForm(m.metaForm)
		meta := m.tracker.Meta.Get()
		m.metaForm.GetField("projectName").(*components.TextInput).SetValue(meta.ProjectName)
		m.metaForm.GetField("nextMilestone").(*components.TextInput).SetValue(meta.NextMilestone)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleTaskKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a", "n":
		return m, m.openForm(m.taskForm)
	case "1":
		return m, m.setSelectedStatus(tracker.StatusTodo)
	case "2":
		return m, m.setSelectedStatus(tracker.StatusDoing)
	case "3":
		return m, m.setSelectedStatus(tracker.StatusDone)
	case "s", "enter":
		task, ok := m.taskList.SelectedTask()
		if !ok {
			return m, nil
		}
		return m, m.setSelectedStatus(nextStatus(task.Status))
	case "x", "d", "delete":
		if task, ok := m.taskList.SelectedTask(); ok {
			m.confirmDlg.ShowDeleteTask(task.ID, task.Text)
		}
		return m, nil
	}
	m.taskList.Update(msg)
	return m, nil
}

func (m *Model) handleFeedbackKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a", "n":
		cmd := m.openForm(m.feedbackForm)
		// Severity starts over at the default for every entry.
		m.feedbackForm.GetField("severity").(*components.Choice).Select(string(tracker.DefaultSeverity))
		return m, cmd
	case "x", "d", "delete":
		if e, ok := m.feedbackList.SelectedEntry(); ok {
			m.confirmDlg.ShowDeleteFeedback(e.ID, e.Tester)
		}
		return m, nil
	}
	m.feedbackList.Update(msg)
	return m, nil
}

func (m *Model) handleChecklistKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.checkSel > 0 {
			m.checkSel--
		}
	case "down", "j":
		if m.checkSel < len(m.checks)-1 {
			m.checkSel++
		}
	case " ", "enter", "x":
		item := tracker.ChecklistItems[m.checkSel]
		done, ok := m.tracker.Checklist.Toggle(item)
		if !ok {
			return m, nil
		}
		m.logger.Debug("checklist toggled", "item", string(item), "done", done)
		m.refresh()
		return m, nil
	}
	m.focusChecks()
	return m, nil
}

// setSelectedStatus moves the selected task to status.
func (m *Model) setSelectedStatus(status tracker.TaskStatus) tea.Cmd {
	task, ok := m.taskList.SelectedTask()
	if !ok || task.Status == status {
		return nil
	}
	if !m.tracker.Tasks.SetStatus(task.ID, status) {
		return nil
	}
	m.logger.Debug("task status set", "id", task.ID, "status", string(status))
	m.refresh()
	return m.setStatus("Moved to "+status.Label(), components.MessageInfo)
}

// nextStatus cycles To-Do, Doing, Done.
func nextStatus(s tracker.TaskStatus) tracker.TaskStatus {
	for i, st := range tracker.Statuses {
		if st == s {
			return tracker.Statuses[(i+1)%len(tracker.Statuses)]
		}
	}
	return tracker.StatusTodo
}

func (m *Model) handleFormSubmit(msg components.FormSubmittedMsg) (tea.Model, tea.Cmd) {
	v := msg.Values
	switch msg.FormID {
	case formTask:
		task, ok := m.tracker.Tasks.AddTask(v["text"], tracker.ParseTag(v["tag"]))
		if !ok {
			return m, nil
		}
		m.logger.Debug("task added", "id", task.ID, "tag", string(task.Tag))
		m.taskList.GoToTop()
		m.closeForm()
		m.refresh()
		return m, m.setStatus("Task added", components.MessageSuccess)

	case formFeedback:
		entry, ok := m.tracker.Feedback.AddFeedback(v["tester"], v["note"], tracker.ParseSeverity(v["severity"]))
		if !ok {
			return m, nil
		}
		m.logger.Debug("feedback added", "id", entry.ID, "severity", string(entry.Severity))
		m.feedbackList.GoToTop()
		m.closeForm()
		m.refresh()
		return m, m.setStatus("Feedback logged", components.MessageSuccess)

	case formMeta:
		m.tracker.Meta.SetProjectName(v["projectName"])
		m.tracker.Meta.SetNextMilestone(v["nextMilestone"])
		m.closeForm()
		m.refresh()
		return m, m.setStatus("Project updated", components.MessageSuccess)
	}
	return m, nil
}

func (m *Model) handleConfirmYes(msg components.ConfirmYesMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case components.ConfirmDeleteTask:
		if m.tracker.Tasks.RemoveTask(msg.Target) {
			m.logger.Debug("task removed", "id", msg.Target)
			m.refresh()
			return m, m.setStatus("Task deleted", components.MessageInfo)
		}
	case components.ConfirmDeleteFeedback:
		if m.tracker.Feedback.RemoveFeedback(msg.Target) {
			m.logger.Debug("feedback removed", "id", msg.Target)
			m.refresh()
			return m, m.setStatus("Feedback deleted", components.MessageInfo)
		}
	case components.ConfirmQuit:
		return m.quit()
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) openForm(f *components.Form) tea.Cmd {
	m.activeForm = f
	m.statusBar.SetShortcuts(components.FormShortcuts)
	return f.Reset()
}

func (m *Model) closeForm() {
	if m.activeForm != nil {
		m.activeForm.Blur()
	}
	m.activeForm = nil
	m.setFocus(m.focus)
}

func (m *Model) setStatus(text string, kind components.MessageKind) tea.Cmd {
	m.statusSeq++
	m.statusBar.SetMessage(text, kind)
	return clearStatusAfter(m.statusSeq)
}

func (m *Model) setFocus(p Pane) {
	m.focus = p
	m.taskList.SetFocused(p == PaneTasks)
	m.feedbackList.SetFocused(p == PaneFeedback)
	m.focusChecks()

	switch p {
	case PaneMeta:
		m.statusBar.SetShortcuts(components.MetaShortcuts)
	case PaneTasks:
		m.statusBar.SetShortcuts(components.TaskShortcuts)
	case PaneFeedback:
		m.statusBar.SetShortcuts(components.FeedbackShortcuts)
	case PaneChecklist:
		m.statusBar.SetShortcuts(components.ChecklistShortcuts)
	}
}

func (m *Model) focusChecks() {
	for i, cb := range m.checks {
		if m.focus == PaneChecklist && i == m.checkSel {
			cb.Focus()
		} else {
			cb.Blur()
		}
	}
}

// refresh copies the tracker state into the views.
func (m *Model) refresh() {
	m.header.SetSummary(m.tracker.Summary())
	m.taskList.SetTasks(m.tracker.Tasks.Tasks())
	m.feedbackList.SetEntries(m.tracker.Feedback.Entries())
	for i, st := range m.tracker.Checklist.Items() {
		if i < len(m.checks) {
			m.checks[i].SetChecked(st.Done)
		}
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.header.SetWidth(width - 4)
	m.statusBar.SetWidth(width)
	m.helpOverlay.SetSize(60, 25)
	m.confirmDlg.SetSize(50)

	colWidth := m.columnWidth()
	// header card 5, checklist card 12, status bar 1, card chrome 3
	listHeight := height - 21
	if m.width < twoColumnWidth {
		listHeight /= 2
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.taskList.SetSize(colWidth-4, listHeight)
	m.feedbackList.SetSize(colWidth-4, listHeight)
	for _, f := range []*components.Form{m.taskForm, m.feedbackForm, m.metaForm} {
		f.SetWidth(colWidth - 4)
	}
}

// twoColumnWidth is the terminal width from which tasks and feedback are
// shown side by side.
const twoColumnWidth = 100

func (m *Model) columnWidth() int {
	if m.width >= twoColumnWidth {
		return m.width / 2
	}
	if m.width > 0 {
		return m.width
	}
	return 80
}

// View renders the board.
func (m *Model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	colWidth := m.columnWidth()

	tasks := m.renderPane(PaneTasks, colWidth, "", m.taskList.View(), m.taskForm)
	feedback := m.renderPane(PaneFeedback, colWidth,
		"Log bugs / pain points from testers during playtests.", m.feedbackList.View(), m.feedbackForm)

	var middle string
	if m.width >= twoColumnWidth {
		middle = lipgloss.JoinHorizontal(lipgloss.Top, tasks, feedback)
	} else {
		middle = lipgloss.JoinVertical(lipgloss.Left, tasks, feedback)
	}

	checkLines := make([]string, len(m.checks))
	for i, cb := range m.checks {
		checkLines[i] = cb.View()
	}
	checklist := m.renderPane(PaneChecklist, m.fullWidth(),
		"Run this before you push an update or ship a patch.", strings.Join(checkLines, "\n"), nil)

	header := m.renderPane(PaneMeta, m.fullWidth(), "", m.header.View(), m.metaForm)

	view := lipgloss.JoinVertical(lipgloss.Left, header, middle, checklist, m.statusBar.View())

	if m.helpOverlay.IsVisible() {
		view = m.renderOverlay(view, m.helpOverlay.View())
	}
	if m.confirmDlg.IsVisible() {
		view = m.renderOverlay(view, m.confirmDlg.View())
	}
	return view
}

func (m *Model) fullWidth() int {
	if m.width > 0 {
		return m.width
	}
	return 80
}

// renderPane draws one card. When form is the active form it replaces the
// card body.
func (m *Model) renderPane(p Pane, width int, subtitle, body string, form *components.Form) string {
	style := styles.PaneStyle
	if m.focus == p {
		style = styles.FocusedPaneStyle
	}
	style = style.Width(width - 2)

	var b strings.Builder
	if p != PaneMeta {
		b.WriteString(styles.PaneTitleStyle.Render(p.String()))
		b.WriteString("\n")
		if subtitle != "" {
			b.WriteString(styles.PaneSubtitleStyle.Render(subtitle))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if form != nil && form == m.activeForm {
		b.WriteString(form.View())
	} else {
		b.WriteString(body)
	}
	return style.Render(b.String())
}

// renderOverlay centers overlay over the screen in place of the base view.
func (m *Model) renderOverlay(base, overlay string) string {
	if overlay == "" {
		return base
	}
	if m.width <= 0 || m.height <= 0 {
		return base + "\n" + overlay
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}

// Focus returns the focused pane.
func (m *Model) Focus() Pane {
	return m.focus
}

// Run starts the board and blocks until the user quits or ctx is done.
func Run(ctx context.Context, tr *tracker.Tracker, opts Options) error {
	p := tea.NewProgram(New(tr, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
