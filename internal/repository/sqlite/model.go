package sqlite

// Task is a row of the tasks table.
// ID only records insertion order; it is never exposed outside the store.
type Task struct {
	ID       int64
	TaskName string
	Status   string
}
