package models

// Task represents a single to-do item owned by exactly one user.
// DueDate is nil when the task has no date; Category is free text and
// can be renamed in bulk across a user's tasks.
type Task struct {
	ID          int64   `json:"task_id"`
	UserID      string  `json:"user_id"`
	TaskName    string  `json:"task_name"`
	Category    string  `json:"category"`
	DueDate     *string `json:"task_date"`
	IsCompleted bool    `json:"is_completed"`
}
