// Package tracker provides the devtracker state containers: project meta,
// tasks, playtest feedback and the release checklist.
//
// Each container owns one storage key. It is hydrated once from storage and
// writes its full value back through a kv.Persister after every mutation.
// Invalid submissions are dropped silently; no domain call returns an error.
package tracker

import "strings"

// Storage keys, one per container.
const (
	KeyTasks    = "devtracker_tasks"
	KeyFeedback = "devtracker_feedback"
	KeyMeta     = "devtracker_meta"
	KeyChecks   = "devtracker_checks"
)

// Identifier prefixes.
const (
	TaskIDPrefix     = "task"
	FeedbackIDPrefix = "fb"
)

// DefaultTester is recorded when a feedback entry has no tester name.
const DefaultTester = "Anonymous"

// TaskStatus represents where a task sits on the board.
type TaskStatus string

const (
	// StatusTodo is the status of every new task.
	StatusTodo TaskStatus = "todo"
	// StatusDoing marks a task in progress.
	StatusDoing TaskStatus = "doing"
	// StatusDone marks a finished task.
	StatusDone TaskStatus = "done"
)

// Statuses lists every status in board order.
var Statuses = []TaskStatus{StatusTodo, StatusDoing, StatusDone}

// IsValid returns true if the status is a known value.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusTodo, StatusDoing, StatusDone:
		return true
	default:
		return false
	}
}

// IsOpen returns true for any status other than done.
func (s TaskStatus) IsOpen() bool {
	return s != StatusDone
}

// Label returns the button label for the status.
func (s TaskStatus) Label() string {
	switch s {
	case StatusTodo:
		return "To-Do"
	case StatusDoing:
		return "Doing"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// String returns the string representation of the status.
func (s TaskStatus) String() string {
	return string(s)
}

// ParseStatus normalizes s and reports whether it names a status.
func ParseStatus(s string) (TaskStatus, bool) {
	st := TaskStatus(strings.ToLower(strings.TrimSpace(s)))
	return st, st.IsValid()
}

// Tag classifies a task.
type Tag string

const (
	TagFeature Tag = "feature"
	TagBug     Tag = "bug"
	TagPolish  Tag = "polish"
)

// DefaultTag is used for new tasks when no valid tag is given.
const DefaultTag = TagFeature

// Tags lists every tag in form order.
var Tags = []Tag{TagFeature, TagBug, TagPolish}

// IsValid returns true if the tag is a known value.
func (t Tag) IsValid() bool {
	switch t {
	case TagFeature, TagBug, TagPolish:
		return true
	default:
		return false
	}
}

// Label returns the display name of the tag.
func (t Tag) Label() string {
	switch t {
	case TagFeature:
		return "Feature"
	case TagBug:
		return "Bug"
	case TagPolish:
		return "Polish"
	default:
		return string(t)
	}
}

// ParseTag normalizes s, returning DefaultTag for unknown values.
func ParseTag(s string) Tag {
	t := Tag(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return DefaultTag
	}
	return t
}

// Severity is the priority of a feedback entry.
type Severity string

const (
	SeverityLow  Severity = "low"
	SeverityMed  Severity = "med"
	SeverityHigh Severity = "high"
)

// DefaultSeverity is used for new feedback when no valid severity is given.
const DefaultSeverity = SeverityMed

// Severities lists every severity from least to most severe.
var Severities = []Severity{SeverityLow, SeverityMed, SeverityHigh}

// IsValid returns true if the severity is a known value.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMed, SeverityHigh:
		return true
	default:
		return false
	}
}

// Label returns the severity with its meaning, as shown in the form.
func (s Severity) Label() string {
	switch s {
	case SeverityLow:
		return "low (annoying)"
	case SeverityMed:
		return "med (hurts gameplay)"
	case SeverityHigh:
		return "high (game breaking)"
	default:
		return string(s)
	}
}

// ParseSeverity normalizes s, returning DefaultSeverity for unknown values.
// "medium" is accepted as med.
func ParseSeverity(s string) Severity {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "medium" {
		return SeverityMed
	}
	sev := Severity(v)
	if !sev.IsValid() {
		return DefaultSeverity
	}
	return sev
}

// Task is a single backlog item.
type Task struct {
	ID     string     `json:"id"`
	Text   string     `json:"text"`
	Status TaskStatus `json:"status"`
	Tag    Tag        `json:"tag"`
}

// FeedbackEntry is a note logged from a playtest.
type FeedbackEntry struct {
	ID       string   `json:"id"`
	Tester   string   `json:"tester"`
	Note     string   `json:"note"`
	Severity Severity `json:"severity"`
}

// ProjectMeta is the project header.
type ProjectMeta struct {
	ProjectName   string `json:"projectName"`
	NextMilestone string `json:"nextMilestone"`
}

// ChecklistState holds the four release checklist flags.
type ChecklistState struct {
	ReleaseNotesWritten    bool `json:"rn"`
	IconScreenshotsUpdated bool `json:"art"`
	MonetizationPassDone   bool `json:"monet"`
	QAPlaytestDone         bool `json:"qa"`
}
