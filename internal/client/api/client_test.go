package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkruglov/taskkeeper/internal/models"
	"github.com/vkruglov/taskkeeper/pkg/api"
)

func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.TokenResponse{Token: "issued-token", ExpiresIn: 3600})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Register(context.Background(), api.RegisterRequest{
		Username: "alice",
		Password: "correcthorse",
	})
	require.NoError(t, err)
	assert.Equal(t, "issued-token", resp.Token)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
}

func TestClient_TokenHeader(t *testing.T) {
	// Authenticated calls carry the raw token in the custom header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "my-token", r.Header.Get("jwt_token"))
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]*models.Task{})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("my-token")

	tasks, err := client.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestClient_ListTasks(t *testing.T) {
	date := "2026-09-01"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]*models.Task{
			{ID: 1, UserID: "u1", TaskName: "buy milk", Category: "Groceries", DueDate: &date},
			{ID: 2, UserID: "u1", TaskName: "call mom", IsCompleted: true},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("tok")

	tasks, err := client.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "buy milk", tasks[0].TaskName)
	require.NotNil(t, tasks[0].DueDate)
	assert.Equal(t, date, *tasks[0].DueDate)
	assert.Nil(t, tasks[1].DueDate)
	assert.True(t, tasks[1].IsCompleted)
}

func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{
			Error:   "Unauthorized",
			Message: "invalid username or password",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Login(context.Background(), api.LoginRequest{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid username or password")
}

func TestClient_DeleteTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/tasks/7", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.DeleteTaskResponse{Message: "task deleted"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("tok")

	require.NoError(t, client.DeleteTask(context.Background(), 7))
}
