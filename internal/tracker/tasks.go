package tracker

import (
	"strings"
	"sync"

	"github.com/dbmrq/devtracker/internal/kv"
)

// TaskList is the backlog, newest first.
type TaskList struct {
	container

	mu    sync.RWMutex
	tasks []Task
	ids   IDSource
}

// NewTaskList returns an empty task list that persists through p.
// A nil ids uses the package-level generator.
func NewTaskList(p kv.Persister, ids IDSource) *TaskList {
	if ids == nil {
		ids = defaultIDs
	}
	return &TaskList{
		container: newContainer(KeyTasks, p),
		tasks:     []Task{},
		ids:       ids,
	}
}

// Hydrate loads the stored list the first time it is called.
// Later calls are no-ops and return false.
func (l *TaskList) Hydrate(store *kv.Store) bool {
	return l.hydrateOnce(func() {
		tasks := kv.Load(store, l.key, []Task{})
		if tasks == nil {
			tasks = []Task{}
		}
		l.mu.Lock()
		l.tasks = tasks
		l.mu.Unlock()
	})
}

// AddTask prepends a new todo task. Blank text is ignored and an unknown tag
// becomes DefaultTag. The created task is returned with ok set when added.
func (l *TaskList) AddTask(text string, tag Tag) (task Task, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false
	}
	if !tag.IsValid() {
		tag = DefaultTag
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	task = Task{
		ID:     l.freshID(),
		Text:   text,
		Status: StatusTodo,
		Tag:    tag,
	}
	l.tasks = append([]Task{task}, l.tasks...)
	l.persistLocked()
	return task, true
}

// SetStatus changes the status of the task with id. Unknown ids and invalid
// statuses are ignored. It reports whether a task was found.
func (l *TaskList) SetStatus(id string, status TaskStatus) bool {
	if !status.IsValid() {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexLocked(id)
	if i < 0 {
		return false
	}
	l.tasks[i].Status = status
	l.persistLocked()
	return true
}

// RemoveTask deletes the task with id and reports whether it existed.
func (l *TaskList) RemoveTask(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexLocked(id)
	if i < 0 {
		return false
	}
	l.tasks = append(l.tasks[:i:i], l.tasks[i+1:]...)
	l.persistLocked()
	return true
}

// Tasks returns a copy of the list, newest first.
func (l *TaskList) Tasks() []Task {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Task(nil), l.tasks...)
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.tasks)
}

// Get returns the task with id.
func (l *TaskList) Get(id string) (Task, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i := l.indexLocked(id); i >= 0 {
		return l.tasks[i], true
	}
	return Task{}, false
}

// OpenCount returns the number of tasks that are not done.
func (l *TaskList) OpenCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := 0
	for _, t := range l.tasks {
		if t.Status.IsOpen() {
			n++
		}
	}
	return n
}

// CountByStatus returns the number of tasks with the given status.
func (l *TaskList) CountByStatus(status TaskStatus) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := 0
	for _, t := range l.tasks {
		if t.Status == status {
			n++
		}
	}
	return n
}

// Filter returns the tasks with the given status, newest first.
func (l *TaskList) Filter(status TaskStatus) []Task {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []Task
	for _, t := range l.tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

func (l *TaskList) indexLocked(id string) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// freshID draws ids until one is not already in the list.
func (l *TaskList) freshID() string {
	for {
		id := l.ids.New(TaskIDPrefix)
		if l.indexLocked(id) < 0 {
			return id
		}
	}
}

func (l *TaskList) persistLocked() {
	snapshot := make([]Task, len(l.tasks))
	copy(snapshot, l.tasks)
	l.persist(snapshot)
}
