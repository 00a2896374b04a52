package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Health Check

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status": "healthy",
		"gcal":   "disconnected",
	}

	if s.calendar != nil && s.calendar.IsAuthenticated() {
		status["gcal"] = "connected"
	}

	respondJSON(w, http.StatusOK, status)
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode JSON response")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
