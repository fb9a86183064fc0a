package cli

import (
	"context"
	"fmt"

	"github.com/vkruglov/taskkeeper/pkg/api"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing task name. Usage: taskkeeper add <name> [category] [date]")
	}

	req := api.CreateTaskRequest{TaskName: args[0]}
	if len(args) > 1 {
		req.Category = args[1]
	}
	if len(args) > 2 {
		req.TaskDate = args[2]
	}

	task, err := c.apiClient.CreateTask(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("Added task %d: %s\n", task.ID, task.TaskName)

	return nil
}
