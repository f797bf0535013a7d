package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/autoops/taskboard/internal/services"
	"go.uber.org/zap"
)

// TaskDeleter defines the interface that the task deletion service must implement.
type TaskDeleter interface {
	Delete(ctx context.Context, userID, id int64) error
}

// NewTasksDeleteHandler returns an HTTP handler deleting the caller's task.
// @Summary Delete task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task row id"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.MessageResponse "Task not found"
// @Failure 503 {object} handlers.MessageResponse "Storage unavailable"
// @Router /api/tasks/{id} [delete]
func NewTasksDeleteHandler(svc TaskDeleter, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		id, ok := taskIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, id); err != nil {
			if errors.Is(err, services.ErrTaskNotFound) {
				writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Task not found"})
				return
			}
			serverError(w, log, err, "Server error deleting task")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Task deleted successfully"})
	}
}
