package handlers

import "net/http"

// HealthResponse reports service liveness
// swagger:model HealthResponse
type HealthResponse struct {
	// Status
	// example: ok
	Status string `json:"status"`

	// Human-readable detail
	// example: Server is running
	Message string `json:"message"`
}

// NewHealthHandler returns the liveness probe handler.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /api/health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Message: "Server is running",
		})
	}
}
