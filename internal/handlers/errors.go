package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"familyfinance/internal/logger"
	"familyfinance/internal/validation"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func respondWithError(w http.ResponseWriter, log *logger.Logger, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Error(logMsg, "status", status, "error", err)
	}

	respondJSON(w, status, errorResponse{Error: userMsg})
}

// respondWithServiceError reports validation problems to the caller and hides everything else
func respondWithServiceError(w http.ResponseWriter, log *logger.Logger, err error) {
	var vErr validation.ValidationError
	if errors.As(err, &vErr) {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Message, Field: vErr.Field})
		return
	}
	respondWithError(w, log, http.StatusInternalServerError, ErrInternalServerError, "", err)
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
