package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/procrastify/server/internal/gcal"
)

// Calendar API

func (s *Server) handleListCalendarEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.calendar.ListUpcomingEvents(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch calendar events")
		respondError(w, http.StatusInternalServerError, "Failed to fetch calendar events")
		return
	}

	if events == nil {
		events = []gcal.Event{}
	}

	respondJSON(w, http.StatusOK, events)
}
