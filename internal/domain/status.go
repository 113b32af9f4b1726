package domain

import "fmt"

// Status is the lifecycle state of a task.
// Any status may be set from any other; there is no transition graph.
type Status int

const (
	StatusToDo Status = iota
	StatusInProgress
	StatusDone
)

// String returns the wire form of the status.
func (s Status) String() string {
	switch s {
	case StatusToDo:
		return "todo"
	case StatusInProgress:
		return "in_progress"
	case StatusDone:
		return "done"
	default:
		return "unknown"
	}
}

// IsValid reports whether s is one of the three known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// AllStatuses returns every status in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusToDo, StatusInProgress, StatusDone}
}

// ParseStatus converts the wire form back into a Status.
func ParseStatus(s string) (Status, error) {
	for _, status := range AllStatuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return StatusToDo, fmt.Errorf("unknown task status %q", s)
}

// MarshalText implements encoding.TextMarshaler so JSON and YAML carry the wire form.
func (s Status) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("unknown task status %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
