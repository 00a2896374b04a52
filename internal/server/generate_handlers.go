package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/procrastify/server/internal/persona"
)

// Generation API

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Inp string `json:"inp"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.Inp == "" {
		respondError(w, http.StatusBadRequest, "inp is required")
		return
	}

	category, prompt := persona.Classify(req.Inp)
	log.Debug().Str("category", string(category)).Msg("classified prompt")

	outcome, err := s.generator.Generate(r.Context(), prompt)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate content")
		respondError(w, http.StatusInternalServerError, "Failed to generate content")
		return
	}

	// An empty-but-well-formed model response is a 200 with a placeholder,
	// not an error.
	if text := outcome.PlaceholderText(); text != "" {
		log.Warn().Str("placeholder", text).Msg("model returned no usable content")
		respondJSON(w, http.StatusOK, map[string]interface{}{"text": text})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"text": outcome.Part})
}
