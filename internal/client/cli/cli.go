package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/vkruglov/taskkeeper/internal/client/api"
	"github.com/vkruglov/taskkeeper/internal/client/storage"
)

// Cli wires the API client and the local session store into the
// command handlers
type Cli struct {
	apiClient *api.Client
	sessions  storage.SessionStorage
}

// New creates a new CLI
func New(apiClient *api.Client, sessions storage.SessionStorage) *Cli {
	return &Cli{
		apiClient: apiClient,
		sessions:  sessions,
	}
}

// requireSession loads the stored session, rejects expired ones, and
// attaches the token to the API client. Every task command goes through
// here first.
func (c *Cli) requireSession(ctx context.Context) (*storage.Session, error) {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if err == storage.ErrSessionNotFound {
			return nil, fmt.Errorf("not logged in. Please run 'taskkeeper login' first")
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if session.Expired() {
		return nil, fmt.Errorf("session expired. Please run 'taskkeeper login' again")
	}

	c.apiClient.SetToken(session.Token)
	return session, nil
}

// PrintUsage prints command line usage
func PrintUsage() {
	fmt.Println("Taskkeeper - multi-user to-do list")
	fmt.Println()
	fmt.Println("Usage: taskkeeper [options] <command> [args]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH      Path to local database (default: taskkeeper-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                       Register new user (logs you in)")
	fmt.Println("  login                          Login to server")
	fmt.Println("  logout                         Forget the stored session")
	fmt.Println("  status                         Show login status")
	fmt.Println("  list                           List your tasks")
	fmt.Println("  add <name> [category] [date]   Add a task")
	fmt.Println("  update <id>                    Edit a task interactively")
	fmt.Println("  done <id>                      Mark a task completed")
	fmt.Println("  rm <id>                        Delete a task")
	fmt.Println("  rename-category <old> <new>    Rename a category across your tasks")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  taskkeeper register")
	fmt.Println("  taskkeeper add 'Buy milk' Groceries 2026-09-01")
	fmt.Println("  taskkeeper done 3")
	fmt.Println("  taskkeeper rename-category Work Job")
	fmt.Println("  taskkeeper --server https://example.com list")
}

// readInput reads one line from stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword reads a password without echoing it
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}
