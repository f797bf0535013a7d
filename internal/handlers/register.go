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

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string, fullName *string) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// example: alice
	Username string `json:"username"`

	// Email
	// required: true
	// example: a@x.com
	Email string `json:"email"`

	// Password, minimum 6 characters
	// required: true
	// example: secret1
	Password string `json:"password"`

	// Optional display name
	// example: Alice Smith
	FullName *string `json:"fullName"`
}

// RegisteredUser is the user echo in a successful registration response
type RegisteredUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// example: User registered successfully
	Message string `json:"message"`

	User RegisteredUser `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new account with a hashed password and sends a best-effort welcome email.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.MessageResponse "Validation failure or duplicate username/email"
// @Failure 503 {object} handlers.MessageResponse "Storage unavailable"
// @Router /api/auth/register [post]
func NewRegisterHandler(svc Registerer, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
			return
		}

		user, err := svc.Register(r.Context(), req.Username, req.Email, req.Password, req.FullName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				writeJSON(w, http.StatusBadRequest, MessageResponse{
					Message: "Username, email, and password are required",
				})
			case errors.Is(err, services.ErrPasswordTooShort):
				writeJSON(w, http.StatusBadRequest, MessageResponse{
					Message: "Password must be at least 6 characters",
				})
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeJSON(w, http.StatusBadRequest, MessageResponse{
					Message: "Username or email already exists",
				})
			default:
				serverError(w, log, err, "Server error during registration")
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully",
			User: RegisteredUser{
				ID:       user.ID,
				Username: user.Username,
				Email:    user.Email,
				FullName: user.FullName.String,
			},
		})
	}
}
