package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}

	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}

	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = ts.data[i].(int64)
		case *string:
			*v = ts.data[i].(string)
		}
	}

	return nil
}

// TestRows implements the Rows interface over a fixed set of scanners
type TestRows struct {
	rows    []*TestScanner
	current int
	err     error
}

func (tr *TestRows) Next() bool {
	if tr.current >= len(tr.rows) {
		return false
	}
	tr.current++
	return true
}

func (tr *TestRows) Scan(dest ...interface{}) error {
	return tr.rows[tr.current-1].Scan(dest...)
}

func (tr *TestRows) Err() error {
	return tr.err
}

func TestScanTask(t *testing.T) {
	tests := []struct {
		name        string
		scanner     *TestScanner
		expected    *Task
		expectError bool
	}{
		{
			name:     "Valid task",
			scanner:  &TestScanner{data: []interface{}{int64(7), "Write docs", "in_progress"}},
			expected: &Task{ID: 7, TaskName: "Write docs", Status: "in_progress"},
		},
		{
			name:        "Scan error",
			scanner:     &TestScanner{err: errors.New("scan failed")},
			expectError: true,
		},
		{
			name:        "Wrong column count",
			scanner:     &TestScanner{data: []interface{}{int64(1), "Only name"}},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScanTask(tt.scanner)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestScanTasks(t *testing.T) {
	t.Run("Multiple rows keep order", func(t *testing.T) {
		rows := &TestRows{rows: []*TestScanner{
			{data: []interface{}{int64(1), "first", "todo"}},
			{data: []interface{}{int64(2), "second", "done"}},
		}}

		result, err := ScanTasks(rows)
		assert.NoError(t, err)
		assert.Equal(t, []*Task{
			{ID: 1, TaskName: "first", Status: "todo"},
			{ID: 2, TaskName: "second", Status: "done"},
		}, result)
	})

	t.Run("No rows gives empty slice", func(t *testing.T) {
		result, err := ScanTasks(&TestRows{})
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("Row scan error", func(t *testing.T) {
		rows := &TestRows{rows: []*TestScanner{{err: errors.New("bad row")}}}
		_, err := ScanTasks(rows)
		assert.Error(t, err)
	})

	t.Run("Iteration error", func(t *testing.T) {
		_, err := ScanTasks(&TestRows{err: errors.New("iteration failed")})
		assert.Error(t, err)
	})
}
