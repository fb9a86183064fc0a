package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vkruglov/taskkeeper/internal/models"
	"github.com/vkruglov/taskkeeper/pkg/api"
)

// tokenHeader is the custom header the server reads the access token
// from. It carries the raw token, no "Bearer" prefix.
const tokenHeader = "jwt_token"

// Client represents an HTTP client for the taskkeeper server
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken sets the access token attached to authenticated requests
func (c *Client) SetToken(token string) {
	c.token = token
}

// Register registers a new user. The server issues a token right away;
// registration doubles as a login.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login authenticates an existing user
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// ListTasks returns all tasks owned by the authenticated user
func (c *Client) ListTasks(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	if err := c.doRequest(ctx, http.MethodGet, "/api/tasks", nil, &tasks); err != nil {
		return nil, fmt.Errorf("list tasks request failed: %w", err)
	}
	return tasks, nil
}

// CreateTask creates a new task
func (c *Client) CreateTask(ctx context.Context, req api.CreateTaskRequest) (*models.Task, error) {
	var task models.Task
	if err := c.doRequest(ctx, http.MethodPost, "/api/tasks", req, &task); err != nil {
		return nil, fmt.Errorf("create task request failed: %w", err)
	}
	return &task, nil
}

// UpdateTask replaces all mutable fields of a task
func (c *Client) UpdateTask(ctx context.Context, taskID int64, req api.UpdateTaskRequest) (*models.Task, error) {
	var task models.Task
	url := fmt.Sprintf("/api/tasks/%d", taskID)
	if err := c.doRequest(ctx, http.MethodPut, url, req, &task); err != nil {
		return nil, fmt.Errorf("update task request failed: %w", err)
	}
	return &task, nil
}

// DeleteTask deletes a task by id
func (c *Client) DeleteTask(ctx context.Context, taskID int64) error {
	url := fmt.Sprintf("/api/tasks/%d", taskID)
	if err := c.doRequest(ctx, http.MethodDelete, url, nil, nil); err != nil {
		return fmt.Errorf("delete task request failed: %w", err)
	}
	return nil
}

// RenameCategory bulk-renames a category across the user's tasks
func (c *Client) RenameCategory(ctx context.Context, req api.RenameCategoryRequest) (*api.RenameCategoryResponse, error) {
	var resp api.RenameCategoryResponse
	if err := c.doRequest(ctx, http.MethodPut, "/api/categories", req, &resp); err != nil {
		return nil, fmt.Errorf("rename category request failed: %w", err)
	}
	return &resp, nil
}

// doRequest performs an HTTP request
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(tokenHeader, c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}
