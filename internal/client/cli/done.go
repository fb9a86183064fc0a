package cli

import (
	"context"
	"fmt"

	"github.com/vkruglov/taskkeeper/pkg/api"
)

func (c *Cli) runDone(ctx context.Context, args []string) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	task, err := c.findTask(ctx, args, "done")
	if err != nil {
		return err
	}

	date := ""
	if task.DueDate != nil {
		date = *task.DueDate
	}

	if _, err := c.apiClient.UpdateTask(ctx, task.ID, api.UpdateTaskRequest{
		TaskName:    task.TaskName,
		Category:    task.Category,
		TaskDate:    date,
		IsCompleted: true,
	}); err != nil {
		return err
	}

	fmt.Printf("Marked task %d as completed.\n", task.ID)

	return nil
}
