package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusToDo, "todo"},
		{StatusInProgress, "in_progress"},
		{StatusDone, "done"},
		{Status(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, status := range AllStatuses() {
		assert.True(t, status.IsValid(), status.String())
	}
	assert.False(t, Status(-1).IsValid())
	assert.False(t, Status(3).IsValid())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Status
		expectError bool
	}{
		{name: "todo", input: "todo", expected: StatusToDo},
		{name: "in progress", input: "in_progress", expected: StatusInProgress},
		{name: "done", input: "done", expected: StatusDone},
		{name: "unknown value", input: "blocked", expectError: true},
		{name: "empty string", input: "", expectError: true},
		{name: "wrong case", input: "DONE", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseStatus(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestStatus_JSON(t *testing.T) {
	data, err := json.Marshal(map[string]Status{"status": StatusInProgress})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"in_progress"}`, string(data))

	var decoded struct {
		Status Status `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"status":"done"}`), &decoded))
	assert.Equal(t, StatusDone, decoded.Status)

	assert.Error(t, json.Unmarshal([]byte(`{"status":"later"}`), &decoded))

	_, err = json.Marshal(Status(9))
	assert.Error(t, err)
}
