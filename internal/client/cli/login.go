package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/vkruglov/taskkeeper/internal/client/storage"
	"github.com/vkruglov/taskkeeper/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	resp, err := c.apiClient.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	session := &storage.Session{
		Username:  username,
		Token:     resp.Token,
		ExpiresAt: time.Now().Unix() + resp.ExpiresIn,
	}
	if err := c.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Printf("Logged in as %s.\n", username)

	return nil
}
