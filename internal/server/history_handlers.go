package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/procrastify/server/internal/store"
)

// Browsing history API

func (s *Server) handleStoreHistory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		History []store.HistoryEntry `json:"history"`
	}

	// A missing history field decodes to nil and stores an empty batch.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Msg("failed to decode history payload")
		respondError(w, http.StatusInternalServerError, "Failed to process history")
		return
	}

	count := s.history.Replace(req.History)
	log.Info().Int("count", count).Msg("history batch replaced")

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "History received and stored successfully",
		"count":   count,
	})
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"history": s.history.Current(),
	})
}
