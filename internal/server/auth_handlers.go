package server

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Google OAuth flow

func (s *Server) handleGoogleAuth(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, s.calendar.AuthURL(), http.StatusFound)
}

func (s *Server) handleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "No authorization code received", http.StatusBadRequest)
		return
	}

	token, err := s.calendar.ExchangeCode(r.Context(), code)
	if err != nil {
		log.Error().Err(err).Msg("failed to exchange authorization code")
		http.Error(w, "Error retrieving tokens", http.StatusInternalServerError)
		return
	}

	// Tokens stay server-side; the log line is for local development.
	log.Info().
		Time("expiry", token.Expiry).
		Bool("has_refresh_token", token.RefreshToken != "").
		Msg("google calendar tokens acquired")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "Tokens generated. You can close this tab and return to the extension.")
}
