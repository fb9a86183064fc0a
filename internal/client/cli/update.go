package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vkruglov/taskkeeper/internal/models"
	"github.com/vkruglov/taskkeeper/pkg/api"
)

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	task, err := c.findTask(ctx, args, "update")
	if err != nil {
		return err
	}

	// The server replaces all mutable fields together, so prompt for
	// each one with the current value as the default
	name, err := readInput(fmt.Sprintf("Name [%s]: ", task.TaskName))
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if name == "" {
		name = task.TaskName
	}

	category, err := readInput(fmt.Sprintf("Category [%s]: ", task.Category))
	if err != nil {
		return fmt.Errorf("failed to read category: %w", err)
	}
	if category == "" {
		category = task.Category
	}

	currentDate := ""
	if task.DueDate != nil {
		currentDate = *task.DueDate
	}
	date, err := readInput(fmt.Sprintf("Date [%s] ('-' to clear): ", currentDate))
	if err != nil {
		return fmt.Errorf("failed to read date: %w", err)
	}
	switch date {
	case "":
		date = currentDate
	case "-":
		date = ""
	}

	updated, err := c.apiClient.UpdateTask(ctx, task.ID, api.UpdateTaskRequest{
		TaskName:    name,
		Category:    category,
		TaskDate:    date,
		IsCompleted: api.LooseBool(task.IsCompleted),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Updated task %d.\n", updated.ID)

	return nil
}

// findTask parses the task id argument and locates the task in the
// user's list
func (c *Cli) findTask(ctx context.Context, args []string, command string) (*models.Task, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("missing task id. Usage: taskkeeper %s <id>", command)
	}

	taskID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid task id: %s", args[0])
	}

	tasks, err := c.apiClient.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	for _, task := range tasks {
		if task.ID == taskID {
			return task, nil
		}
	}

	return nil, fmt.Errorf("task %d not found", taskID)
}
