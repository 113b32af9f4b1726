package sqlite

import (
	"context"
	"database/sql"

	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// memoryDSN opens a private in-memory database. Nothing is written to disk,
// so the store lives exactly as long as the process that opened it.
const memoryDSN = ":memory:"

// Repository defines the interface for task storage.
// Name-based operations follow list semantics: reads and status updates act on
// the earliest inserted match, deletes remove every match.
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *Task) error

	// Read operations
	GetTaskByName(ctx context.Context, name string) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	CountTasks(ctx context.Context) (int, error)

	// Update operations
	UpdateStatusByName(ctx context.Context, name string, status string) error

	// Delete operations
	DeleteTasksByName(ctx context.Context, name string) (int64, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository on a fresh in-memory database
func New(ctx context.Context) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Every connection to :memory: is a separate database; pin the pool to one
	// connection and never let it expire.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	// Run migrations
	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection, discarding all tasks
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask appends a new task
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `INSERT INTO tasks (task_name, status) VALUES (?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, task.TaskName, task.Status)
	if err != nil {
		return err
	}
	task.ID = id
	return nil
}

// GetTaskByName retrieves the earliest inserted task with the given name
func (r *SQLiteRepository) GetTaskByName(ctx context.Context, name string) (*Task, error) {
	query := `
	SELECT id, task_name, status
	FROM tasks
	WHERE task_name = ?
	ORDER BY id ASC
	LIMIT 1`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", name, name)
}

// ListTasks retrieves all tasks in insertion order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `SELECT id, task_name, status FROM tasks ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// CountTasks returns the number of stored tasks
func (r *SQLiteRepository) CountTasks(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count); err != nil {
		return 0, HandleDatabaseError("count tasks", err)
	}
	return count, nil
}

// UpdateStatusByName sets the status of the earliest inserted task with the given name
func (r *SQLiteRepository) UpdateStatusByName(ctx context.Context, name string, status string) error {
	query := `
	UPDATE tasks
	SET status = ?
	WHERE id = (SELECT id FROM tasks WHERE task_name = ? ORDER BY id ASC LIMIT 1)`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", name, status, name)
}

// DeleteTasksByName deletes every task with the given name and returns how many were deleted
func (r *SQLiteRepository) DeleteTasksByName(ctx context.Context, name string) (int64, error) {
	query := `DELETE FROM tasks WHERE task_name = ?`
	return ExecuteCountingRows(ctx, r.db, query, name)
}
