package handlers

import (
	"context"
	"net/http"

	"github.com/autoops/taskboard/internal/models"
	"go.uber.org/zap"
)

// TeamLister defines the interface that the team directory service must implement.
type TeamLister interface {
	Team(ctx context.Context) ([]models.TeamMember, error)
}

// NewUsersHandler returns an HTTP handler listing every user for the
// team view, newest-created first.
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TeamMember
// @Failure 503 {object} handlers.MessageResponse "Storage unavailable"
// @Router /api/users [get]
func NewUsersHandler(svc TeamLister, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := svc.Team(r.Context())
		if err != nil {
			serverError(w, log, err, "Server error fetching users")
			return
		}

		writeJSON(w, http.StatusOK, members)
	}
}
