package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/vkruglov/taskkeeper/internal/client/storage"
	"github.com/vkruglov/taskkeeper/internal/validation"
	"github.com/vkruglov/taskkeeper/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	fmt.Println("=== Registration ===")
	fmt.Println()

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	if err := validation.ValidateUsername(username); err != nil {
		return err
	}

	password, err := readPassword(fmt.Sprintf("Password (min %d chars): ", validation.MinPasswordLen))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirmPassword, err := readPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirmPassword {
		return fmt.Errorf("passwords do not match")
	}

	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	resp, err := c.apiClient.Register(ctx, api.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	// Registration is also a login: store the issued token right away
	session := &storage.Session{
		Username:  username,
		Token:     resp.Token,
		ExpiresAt: time.Now().Unix() + resp.ExpiresIn,
	}
	if err := c.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Println()
	fmt.Printf("Registered and logged in as %s.\n", username)

	return nil
}
