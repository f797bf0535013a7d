package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/autoops/taskboard/internal/models"
	"github.com/autoops/taskboard/internal/services"
	"go.uber.org/zap"
)

// TaskCreator defines the interface that the task creation service must implement.
type TaskCreator interface {
	Create(ctx context.Context, userID int64, in services.TaskInput) (*models.Task, error)
}

// NewTasksCreateHandler returns an HTTP handler creating a task for the caller.
// @Summary Create task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskRequest body handlers.TaskRequest true "Task fields"
// @Success 201 {object} models.Task
// @Failure 400 {object} handlers.MessageResponse "Missing title"
// @Failure 503 {object} handlers.MessageResponse "Storage unavailable"
// @Router /api/tasks [post]
func NewTasksCreateHandler(svc TaskCreator, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req TaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
			return
		}

		task, err := svc.Create(r.Context(), claims.UserID, req.input())
		if err != nil {
			if errors.Is(err, services.ErrTitleRequired) {
				writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Title is required"})
				return
			}
			serverError(w, log, err, "Server error creating task")
			return
		}

		writeJSON(w, http.StatusCreated, task)
	}
}
