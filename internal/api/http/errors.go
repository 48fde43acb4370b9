package http

import (
	"encoding/json"
	"net/http"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/logger"
)

// errorResponse is the general error envelope.
type errorResponse struct {
	Error       string `json:"error"`
	Description string `json:"description"`
}

// stateErrorResponse is the distinct envelope for unknown classification
// tokens, so clients can special-case "unknown filter" from "bad input".
type stateErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsUnsupportedState(err):
		logger.Warn(err.Error())
		writeJSON(w, http.StatusBadRequest, stateErrorResponse{Error: err.Error()})
	case domain.IsNotFound(err):
		logger.Warn(err.Error())
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found", Description: err.Error()})
	case domain.IsForbidden(err):
		logger.Warn(err.Error())
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "Forbidden", Description: err.Error()})
	case domain.IsValidation(err):
		logger.Warn(err.Error())
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation error", Description: err.Error()})
	case domain.IsConflict(err):
		logger.Warn(err.Error())
		writeJSON(w, http.StatusConflict, errorResponse{Error: "Conflict", Description: err.Error()})
	default:
		logger.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal error", Description: "internal server error"})
	}
}
