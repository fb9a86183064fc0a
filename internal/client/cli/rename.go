package cli

import (
	"context"
	"fmt"

	"github.com/vkruglov/taskkeeper/pkg/api"
)

func (c *Cli) runRenameCategory(ctx context.Context, args []string) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	if len(args) < 2 {
		return fmt.Errorf("usage: taskkeeper rename-category <old> <new>")
	}

	resp, err := c.apiClient.RenameCategory(ctx, api.RenameCategoryRequest{
		OldName: args[0],
		NewName: args[1],
	})
	if err != nil {
		return err
	}

	fmt.Printf("Renamed category %q to %q on %d task(s).\n", args[0], args[1], resp.Updated)

	return nil
}
