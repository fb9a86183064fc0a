package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/vkruglov/taskkeeper/internal/client/storage"
)

func (c *Cli) runLogout(ctx context.Context) error {
	// Tokens are stateless; logout is purely local
	if err := c.sessions.DeleteSession(ctx); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			fmt.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	fmt.Println("Logged out.")

	return nil
}
