package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vkruglov/taskkeeper/internal/models"
	"github.com/vkruglov/taskkeeper/internal/server/storage"
	"github.com/vkruglov/taskkeeper/pkg/api"
)

// TaskHandler handles the task CRUD and category routes. Every route is
// mounted behind the auth middleware; the owning user id always comes
// from the request context, never from the request body.
type TaskHandler struct {
	logger      *slog.Logger
	taskStorage storage.TaskStorage
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(logger *slog.Logger, taskStorage storage.TaskStorage) *TaskHandler {
	return &TaskHandler{
		logger:      logger,
		taskStorage: taskStorage,
	}
}

// List handles GET /api/tasks
// Returns all tasks owned by the authenticated user, oldest first.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("user id not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	tasks, err := h.taskStorage.ListTasks(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list tasks", slog.Any("error", err), slog.String("user_id", userID))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, tasks, http.StatusOK)
}

// Create handles POST /api/tasks
// An empty task_date means the task has no date; is_completed always
// starts out false.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("user id not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode create task request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	task := &models.Task{
		UserID:   userID,
		TaskName: req.TaskName,
		Category: req.Category,
		DueDate:  normalizeDate(req.TaskDate),
	}

	if err := h.taskStorage.CreateTask(ctx, task); err != nil {
		h.logger.ErrorContext(ctx, "failed to create task", slog.Any("error", err), slog.String("user_id", userID))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "task created",
		slog.Int64("task_id", task.ID),
		slog.String("user_id", userID))

	h.sendJSON(w, task, http.StatusCreated)
}

// Update handles PUT /api/tasks/{id}
// All mutable fields are replaced together in one statement. The update
// matches on task id and owner together: a task that exists but belongs
// to someone else is indistinguishable from a missing one.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("user id not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	taskID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.sendError(w, "invalid task id", http.StatusBadRequest)
		return
	}

	var req api.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode update task request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	task := &models.Task{
		ID:          taskID,
		UserID:      userID,
		TaskName:    req.TaskName,
		Category:    req.Category,
		DueDate:     normalizeDate(req.TaskDate),
		IsCompleted: bool(req.IsCompleted),
	}

	if err := h.taskStorage.UpdateTask(ctx, task); err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			h.sendError(w, "task not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update task", slog.Any("error", err),
			slog.Int64("task_id", taskID), slog.String("user_id", userID))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "task updated",
		slog.Int64("task_id", taskID),
		slog.String("user_id", userID))

	h.sendJSON(w, task, http.StatusOK)
}

// Delete handles DELETE /api/tasks/{id}
// Deleting a task that is already gone, or that belongs to another
// user, reports 404 rather than a server error.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("user id not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	taskID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.sendError(w, "invalid task id", http.StatusBadRequest)
		return
	}

	if err := h.taskStorage.DeleteTask(ctx, userID, taskID); err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			h.sendError(w, "task not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete task", slog.Any("error", err),
			slog.Int64("task_id", taskID), slog.String("user_id", userID))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "task deleted",
		slog.Int64("task_id", taskID),
		slog.String("user_id", userID))

	h.sendJSON(w, api.DeleteTaskResponse{Message: "task deleted"}, http.StatusOK)
}

// RenameCategory handles PUT /api/categories
// Bulk-relabels every task of the authenticated user in the old
// category. Touching zero tasks is a valid no-op.
func (h *TaskHandler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("user id not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.RenameCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode rename category request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.taskStorage.RenameCategory(ctx, userID, req.OldName, req.NewName)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to rename category", slog.Any("error", err), slog.String("user_id", userID))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "category renamed",
		slog.String("user_id", userID),
		slog.String("old_name", req.OldName),
		slog.String("new_name", req.NewName),
		slog.Int64("updated", updated))

	h.sendJSON(w, api.RenameCategoryResponse{Updated: updated}, http.StatusOK)
}

// normalizeDate maps absent dates to nil. Empty string means the client
// sent no date; the literal "undefined" guards against a known frontend
// bug that serializes a missing field as that string.
func normalizeDate(date string) *string {
	if date == "" || date == "undefined" {
		return nil
	}
	return &date
}

// sendJSON writes a JSON response
func (h *TaskHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError writes a JSON error response
func (h *TaskHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
