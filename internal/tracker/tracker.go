package tracker

import (
	"sync"

	"github.com/dbmrq/devtracker/internal/kv"
	"github.com/dbmrq/devtracker/internal/logging"
)

// Tracker owns the four containers. Each container is independent: it has
// its own key, lock and write-through, and can be handed to a view on its own.
type Tracker struct {
	Meta      *Meta
	Tasks     *TaskList
	Feedback  *FeedbackList
	Checklist *Checklist

	store  *kv.Store
	logger *logging.Logger
	once   sync.Once
}

// Option configures a Tracker.
type Option func(*options)

type options struct {
	ids      IDSource
	defaults ProjectMeta
	logger   *logging.Logger
}

// WithIDSource sets the generator for task and feedback ids.
func WithIDSource(ids IDSource) Option {
	return func(o *options) { o.ids = ids }
}

// WithDefaults sets the project meta used until storage says otherwise.
func WithDefaults(meta ProjectMeta) Option {
	return func(o *options) { o.defaults = meta }
}

// WithLogger sets the logger. The global logger is used otherwise.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// DefaultMeta is the project meta of a fresh tracker.
var DefaultMeta = ProjectMeta{
	ProjectName:   "My Roblox Horror Game",
	NextMilestone: "Halloween Playtest 10/31",
}

// New builds a tracker that hydrates from store and writes through p.
// Call Initialize before first use.
func New(store *kv.Store, p kv.Persister, opts ...Option) *Tracker {
	o := options{defaults: DefaultMeta}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Global()
	}
	if store == nil {
		store = kv.NewStore(nil, o.logger)
	}
	if p == nil {
		p = store
	}

	return &Tracker{
		Meta:      NewMeta(p, o.defaults),
		Tasks:     NewTaskList(p, o.ids),
		Feedback:  NewFeedbackList(p, o.ids),
		Checklist: NewChecklist(p),
		store:     store,
		logger:    o.logger.With("component", "tracker"),
	}
}

// Initialize hydrates every container from storage. Only the first call
// has any effect.
func (t *Tracker) Initialize() {
	t.once.Do(func() {
		t.Meta.Hydrate(t.store)
		t.Tasks.Hydrate(t.store)
		t.Feedback.Hydrate(t.store)
		t.Checklist.Hydrate(t.store)

		s := t.Summary()
		t.logger.Info("tracker hydrated",
			"tasks", s.Tasks,
			"open_tasks", s.OpenTasks,
			"feedback", s.Feedback,
			"checklist_done", s.ChecklistDone,
		)
	})
}

// Initialized reports whether Initialize has run.
func (t *Tracker) Initialized() bool {
	return t.Meta.Hydrated() && t.Tasks.Hydrated() && t.Feedback.Hydrated() && t.Checklist.Hydrated()
}

// Summary is the header line of the board.
type Summary struct {
	ProjectName    string
	NextMilestone  string
	Tasks          int
	OpenTasks      int
	Feedback       int
	ChecklistDone  int
	ChecklistTotal int
}

// Summary returns the current header counts.
func (t *Tracker) Summary() Summary {
	meta := t.Meta.Get()
	return Summary{
		ProjectName:    meta.ProjectName,
		NextMilestone:  meta.NextMilestone,
		Tasks:          t.Tasks.Len(),
		OpenTasks:      t.Tasks.OpenCount(),
		Feedback:       t.Feedback.Count(),
		ChecklistDone:  t.Checklist.Done(),
		ChecklistTotal: t.Checklist.Total(),
	}
}
