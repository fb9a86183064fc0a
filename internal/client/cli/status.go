package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vkruglov/taskkeeper/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			fmt.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	if session.Expired() {
		fmt.Printf("Session for %s has expired. Please run 'taskkeeper login' again.\n", session.Username)
		return nil
	}

	expires := time.Unix(session.ExpiresAt, 0)
	fmt.Printf("Logged in as %s (token expires %s).\n", session.Username, expires.Format(time.RFC1123))

	return nil
}
