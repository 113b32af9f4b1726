package domain

// Task is a named unit of work with a mutable status.
// The name is fixed at construction.
type Task struct {
	name   string
	status Status
}

// NewTask creates a new Task with the given name in the ToDo state.
// The name is not validated.
func NewTask(name string) Task {
	return Task{
		name:   name,
		status: StatusToDo,
	}
}

// Name returns the task name.
func (t Task) Name() string {
	return t.name
}

// Status returns the current status.
func (t Task) Status() Status {
	return t.status
}

// Complete marks the task as done.
func (t *Task) Complete() {
	t.status = StatusDone
}

// Uncomplete resets the task to its initial ToDo state, whatever it was before.
func (t *Task) Uncomplete() {
	t.status = StatusToDo
}

// StartProgress marks the task as in progress.
func (t *Task) StartProgress() {
	t.status = StatusInProgress
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.name
}
