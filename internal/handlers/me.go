package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/autoops/taskboard/internal/middlewares"
	"github.com/autoops/taskboard/internal/models"
	"github.com/autoops/taskboard/internal/services"
	"go.uber.org/zap"
)

// CurrentUserProvider resolves the authenticated user's account.
type CurrentUserProvider interface {
	CurrentUser(ctx context.Context, userID int64) (*models.UserDB, error)
}

// CurrentUser is the account detail served by /api/auth/me
type CurrentUser struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FullName  string     `json:"fullName"`
	CreatedAt *time.Time `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin"`
}

// MeResponse wraps the current user
// swagger:model MeResponse
type MeResponse struct {
	User CurrentUser `json:"user"`
}

// NewMeHandler returns an HTTP handler for the current-user lookup.
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MeResponse
// @Failure 404 {object} handlers.MessageResponse "Token user no longer exists"
// @Router /api/auth/me [get]
func NewMeHandler(svc CurrentUserProvider, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeJSON(w, http.StatusUnauthorized, MessageResponse{Message: "Token is missing"})
			return
		}

		user, err := svc.CurrentUser(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeJSON(w, http.StatusNotFound, MessageResponse{Message: "User not found"})
				return
			}
			serverError(w, log, err, "Server error")
			return
		}

		resp := MeResponse{User: CurrentUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			FullName: user.FullName.String,
		}}
		createdAt := user.CreatedAt
		resp.User.CreatedAt = &createdAt
		if user.LastLogin.Valid {
			lastLogin := user.LastLogin.Time
			resp.User.LastLogin = &lastLogin
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
