package handlers

import (
	"context"
	"net/http"

	"github.com/autoops/taskboard/internal/models"
	"go.uber.org/zap"
)

// TaskLister defines the interface that the task listing service must implement.
type TaskLister interface {
	List(ctx context.Context, userID int64) ([]models.Task, error)
}

// NewTasksListHandler returns an HTTP handler listing the caller's tasks.
// @Summary List tasks
// @Description Returns the caller's tasks, newest-created first.
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Task
// @Failure 503 {object} handlers.MessageResponse "Storage unavailable"
// @Router /api/tasks [get]
func NewTasksListHandler(svc TaskLister, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		tasks, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			serverError(w, log, err, "Server error")
			return
		}

		writeJSON(w, http.StatusOK, tasks)
	}
}
