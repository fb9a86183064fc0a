package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runList(ctx context.Context) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	tasks, err := c.apiClient.ListTasks(ctx)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks yet. Use 'taskkeeper add' to create one.")
		return nil
	}

	for _, task := range tasks {
		mark := " "
		if task.IsCompleted {
			mark = "x"
		}

		line := fmt.Sprintf("[%s] %d. %s", mark, task.ID, task.TaskName)
		if task.Category != "" {
			line += fmt.Sprintf("  (%s)", task.Category)
		}
		if task.DueDate != nil {
			line += fmt.Sprintf("  due %s", *task.DueDate)
		}
		fmt.Println(line)
	}

	return nil
}
