package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing task id. Usage: taskkeeper rm <id>")
	}

	taskID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id: %s", args[0])
	}

	if err := c.apiClient.DeleteTask(ctx, taskID); err != nil {
		return err
	}

	fmt.Printf("Deleted task %d.\n", taskID)

	return nil
}
