package domain

// TaskList is an insertion-ordered collection of tasks. Names may repeat.
//
// Lookups and transitions act on the first task with a matching name;
// RemoveTask is the only operation that affects every match.
// A TaskList is not safe for concurrent use.
type TaskList struct {
	tasks []Task
}

// NewTaskList creates an empty task list.
func NewTaskList() *TaskList {
	return &TaskList{}
}

// AddTask appends a copy of task to the end of the list.
func (l *TaskList) AddTask(task Task) {
	l.tasks = append(l.tasks, task)
}

// RemoveTask removes every task named name and returns how many were removed.
// The relative order of the remaining tasks is preserved.
func (l *TaskList) RemoveTask(name string) int {
	kept := l.tasks[:0]
	for _, task := range l.tasks {
		if task.name != name {
			kept = append(kept, task)
		}
	}
	removed := len(l.tasks) - len(kept)

	// Clear the tail so dropped tasks are not retained by the backing array.
	for i := len(kept); i < len(l.tasks); i++ {
		l.tasks[i] = Task{}
	}
	l.tasks = kept
	return removed
}

// GetTask returns the first task named name.
// The returned pointer refers to the list's own storage and is only valid
// until the list is next modified by AddTask or RemoveTask.
func (l *TaskList) GetTask(name string) (*Task, bool) {
	for i := range l.tasks {
		if l.tasks[i].name == name {
			return &l.tasks[i], true
		}
	}
	return nil, false
}

// CompleteTask marks the first task named name as done.
// It reports false, and changes nothing, when no task matches.
func (l *TaskList) CompleteTask(name string) bool {
	return l.apply(name, (*Task).Complete)
}

// UncompleteTask resets the first task named name to ToDo.
func (l *TaskList) UncompleteTask(name string) bool {
	return l.apply(name, (*Task).Uncomplete)
}

// StartProgress marks the first task named name as in progress.
func (l *TaskList) StartProgress(name string) bool {
	return l.apply(name, (*Task).StartProgress)
}

// Tasks returns a snapshot of the list in insertion order.
func (l *TaskList) Tasks() []Task {
	snapshot := make([]Task, len(l.tasks))
	copy(snapshot, l.tasks)
	return snapshot
}

// Len returns the number of tasks in the list.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

func (l *TaskList) apply(name string, transition func(*Task)) bool {
	task, ok := l.GetTask(name)
	if !ok {
		return false
	}
	transition(task)
	return true
}
