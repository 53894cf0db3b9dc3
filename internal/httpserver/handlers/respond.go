package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/syncmarks/syncmarks/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeValidationError maps a rejected payload to 400.
func writeValidationError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// writeStorageError maps a store failure to 503: the batch was rolled back
// whole and the client may retry.
func writeStorageError(w http.ResponseWriter, log logger.Logger, op string, err error) {
	log.Error("storage failure", logger.String("op", op), logger.Error(err))
	writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "storage unavailable"})
}
