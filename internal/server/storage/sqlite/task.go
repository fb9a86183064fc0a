package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vkruglov/taskkeeper/internal/models"
	"github.com/vkruglov/taskkeeper/internal/server/storage"
)

// CreateTask inserts a new task and fills in its assigned ID
func (s *Storage) CreateTask(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (user_id, name, category, due_date, completed)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		task.UserID,
		task.TaskName,
		task.Category,
		nullableString(task.DueDate),
		task.IsCompleted,
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted task id: %w", err)
	}
	task.ID = id

	return nil
}

// ListTasks returns all tasks owned by userID ordered by ascending task id
func (s *Storage) ListTasks(ctx context.Context, userID string) ([]*models.Task, error) {
	query := `
		SELECT id, user_id, name, category, due_date, completed
		FROM tasks
		WHERE user_id = ?
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTask replaces all mutable fields of the task matching both
// task.ID and task.UserID. The WHERE clause matches on id AND user_id:
// a task id that exists but belongs to another user must report
// ErrTaskNotFound, never touch the row.
func (s *Storage) UpdateTask(ctx context.Context, task *models.Task) error {
	query := `
		UPDATE tasks
		SET name = ?, category = ?, due_date = ?, completed = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		task.TaskName,
		task.Category,
		nullableString(task.DueDate),
		task.IsCompleted,
		task.ID,
		task.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrTaskNotFound
	}

	return nil
}

// DeleteTask deletes the task matching both taskID and userID
func (s *Storage) DeleteTask(ctx context.Context, userID string, taskID int64) error {
	query := `DELETE FROM tasks WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrTaskNotFound
	}

	return nil
}

// RenameCategory relabels every task owned by userID whose category
// equals oldName. Zero affected rows is a valid no-op.
func (s *Storage) RenameCategory(ctx context.Context, userID, oldName, newName string) (int64, error) {
	query := `UPDATE tasks SET category = ? WHERE category = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, newName, oldName, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to rename category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}

// scanTask scans one task row, converting the nullable due_date column
func scanTask(rows *sql.Rows) (*models.Task, error) {
	task := &models.Task{}
	var dueDate sql.NullString

	err := rows.Scan(
		&task.ID,
		&task.UserID,
		&task.TaskName,
		&task.Category,
		&dueDate,
		&task.IsCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan task: %w", err)
	}

	if dueDate.Valid {
		task.DueDate = &dueDate.String
	}

	return task, nil
}

// nullableString converts an optional string to its SQL representation
func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
