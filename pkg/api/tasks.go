package api

import (
	"bytes"
	"encoding/json"
)

// CreateTaskRequest represents a request to create a new task.
// TaskDate is optional; an empty string is treated as "no date".
type CreateTaskRequest struct {
	TaskName string `json:"task_name"`
	Category string `json:"category"`
	TaskDate string `json:"task_date,omitempty"`
}

// UpdateTaskRequest represents a full replacement of a task's mutable
// fields. There are no partial updates: every field is written as given.
type UpdateTaskRequest struct {
	TaskName    string    `json:"task_name"`
	Category    string    `json:"category"`
	TaskDate    string    `json:"task_date,omitempty"`
	IsCompleted LooseBool `json:"is_completed"`
}

// RenameCategoryRequest represents a bulk rename of a category across
// all tasks owned by the authenticated user.
type RenameCategoryRequest struct {
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}

// RenameCategoryResponse reports how many tasks were relabeled.
// Zero is a valid result, not an error.
type RenameCategoryResponse struct {
	Updated int64 `json:"updated"`
}

// DeleteTaskResponse confirms a successful delete
type DeleteTaskResponse struct {
	Message string `json:"message"`
}

// LooseBool is a bool that tolerates the representations browser clients
// actually send for checkbox state: JSON true/false, the strings "true"
// and "false", and the numbers 1 and 0. Anything unrecognized decodes to
// false rather than failing the request.
type LooseBool bool

// UnmarshalJSON implements json.Unmarshaler
func (b *LooseBool) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("1")):
		*b = true
	case bytes.Equal(data, []byte(`"true"`)), bytes.Equal(data, []byte(`"1"`)):
		*b = true
	default:
		*b = false
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (b LooseBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}
