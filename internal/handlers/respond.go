package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/autoops/taskboard/internal/database"
	"go.uber.org/zap"
)

// MessageResponse is the generic `{"message": ...}` body used for status
// and error responses.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// serverError maps an unclassified failure: an unreachable database
// answers 503, everything else a generic 500. The cause is logged
// server-side only.
func serverError(w http.ResponseWriter, log *zap.SugaredLogger, err error, msg string) {
	if database.IsUnavailable(err) {
		log.Warnw("database unavailable", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, MessageResponse{
			Message: "Database connection unavailable",
		})
		return
	}

	log.Errorw(msg, "error", err)
	writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: msg})
}
