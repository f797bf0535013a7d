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

// TaskUpdater defines the interface that the task update service must implement.
type TaskUpdater interface {
	Update(ctx context.Context, userID, id int64, in services.TaskInput) (*models.Task, error)
}

// NewTasksUpdateHandler returns an HTTP handler replacing the mutable
// fields of the caller's task. A task owned by someone else is
// indistinguishable from a missing one.
// @Summary Update task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task row id"
// @Param taskRequest body handlers.TaskRequest true "Task fields"
// @Success 200 {object} models.Task
// @Failure 400 {object} handlers.MessageResponse "Missing title"
// @Failure 404 {object} handlers.MessageResponse "Task not found"
// @Failure 503 {object} handlers.MessageResponse "Storage unavailable"
// @Router /api/tasks/{id} [put]
func NewTasksUpdateHandler(svc TaskUpdater, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		id, ok := taskIDParam(w, r)
		if !ok {
			return
		}

		var req TaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
			return
		}

		task, err := svc.Update(r.Context(), claims.UserID, id, req.input())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTaskNotFound):
				writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Task not found"})
			case errors.Is(err, services.ErrTitleRequired):
				writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Title is required"})
			default:
				serverError(w, log, err, "Server error updating task")
			}
			return
		}

		writeJSON(w, http.StatusOK, task)
	}
}
