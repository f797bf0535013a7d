package handlers

import (
	"net/http"
	"strconv"

	"github.com/autoops/taskboard/internal/jwt"
	"github.com/autoops/taskboard/internal/middlewares"
	"github.com/autoops/taskboard/internal/services"
	"github.com/go-chi/chi/v5"
)

// TaskRequest represents the JSON body for creating or updating a task
// swagger:model TaskRequest
type TaskRequest struct {
	// Client-supplied external id; generated when empty
	// example: PROJ-1
	TaskID string `json:"taskId"`

	// Type tag
	// example: task
	Type string `json:"type"`

	// Title
	// required: true
	// example: Write spec
	Title string `json:"title"`

	Description string `json:"description"`
	Assignee    string `json:"assignee"`

	// example: medium
	Priority string `json:"priority"`

	// example: todo
	Status string `json:"status"`
}

func (req TaskRequest) input() services.TaskInput {
	return services.TaskInput{
		TaskID:      req.TaskID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Assignee:    req.Assignee,
		Priority:    req.Priority,
		Status:      req.Status,
	}
}

// requireClaims fetches the auth middleware's claims. A nil result means
// the route was wired without the guard; reject as unauthenticated.
func requireClaims(w http.ResponseWriter, r *http.Request) (*jwt.Claims, bool) {
	claims := middlewares.GetClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, MessageResponse{Message: "Token is missing"})
		return nil, false
	}
	return claims, true
}

// taskIDParam parses the {id} route parameter. An unparseable id cannot
// name any task, so it answers the same 404 as a missing row.
func taskIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Task not found"})
		return 0, false
	}
	return id, true
}
