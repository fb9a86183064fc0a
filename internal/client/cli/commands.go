package cli

import (
	"context"
	"fmt"
	"os"
)

// Run dispatches a command. Unknown commands print usage and exit
// non-zero.
func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "register":
		err = c.runRegister(ctx)
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "list":
		err = c.runList(ctx)
	case "add":
		err = c.runAdd(ctx, args)
	case "update":
		err = c.runUpdate(ctx, args)
	case "done":
		err = c.runDone(ctx, args)
	case "rm":
		err = c.runDelete(ctx, args)
	case "rename-category":
		err = c.runRenameCategory(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
