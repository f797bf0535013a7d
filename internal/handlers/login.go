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

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, *models.UserDB, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: alice
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret1
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Success message
	// example: Login successful
	Message string `json:"message"`

	// Signed bearer token, valid for 7 days
	Token string `json:"token"`

	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate a user and return a signed bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Token returned"
// @Failure 400 {object} handlers.MessageResponse "Missing fields"
// @Failure 401 {object} handlers.MessageResponse "Invalid username or password"
// @Failure 503 {object} handlers.MessageResponse "Storage unavailable"
// @Router /api/auth/login [post]
func NewLoginHandler(svc Loginer, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
			return
		}

		token, user, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				writeJSON(w, http.StatusBadRequest, MessageResponse{
					Message: "Username and password are required",
				})
			case errors.Is(err, services.ErrInvalidCredentials):
				writeJSON(w, http.StatusUnauthorized, MessageResponse{
					Message: "Invalid username or password",
				})
			default:
				serverError(w, log, err, "Server error during login")
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Message:  "Login successful",
			Token:    token,
			UserID:   user.ID,
			Username: user.Username,
			FullName: user.FullName.String,
		})
	}
}
