package storage

import (
	"context"

	"github.com/vkruglov/taskkeeper/internal/models"
)

// TaskStorage defines interface for task persistence. Every operation is
// scoped to an owning user id; a task is never visible or mutable outside
// operations carrying its owner's id.
type TaskStorage interface {
	// CreateTask inserts a new task and fills in its assigned ID
	CreateTask(ctx context.Context, task *models.Task) error

	// ListTasks returns all tasks owned by userID ordered by ascending
	// task id (insertion order). Returns an empty slice when the user
	// has no tasks.
	ListTasks(ctx context.Context, userID string) ([]*models.Task, error)

	// UpdateTask replaces all mutable fields of the task matching both
	// task.ID and task.UserID in a single statement.
	// Returns ErrTaskNotFound when no row matches both.
	UpdateTask(ctx context.Context, task *models.Task) error

	// DeleteTask deletes the task matching both taskID and userID.
	// Returns ErrTaskNotFound when no row matches both.
	DeleteTask(ctx context.Context, userID string, taskID int64) error

	// RenameCategory relabels every task owned by userID whose category
	// equals oldName. Returns the number of rows changed; zero is not
	// an error.
	RenameCategory(ctx context.Context, userID, oldName, newName string) (int64, error)
}
