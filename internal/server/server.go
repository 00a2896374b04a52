package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/procrastify/server/internal/gcal"
	"github.com/procrastify/server/internal/gemini"
	"github.com/procrastify/server/internal/store"
)

// CalendarService is the calendar capability the handlers depend on.
type CalendarService interface {
	AuthURL() string
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)
	ListUpcomingEvents(ctx context.Context) ([]gcal.Event, error)
	IsAuthenticated() bool
}

// Generator is the text-generation capability the handlers depend on.
type Generator interface {
	Generate(ctx context.Context, prompt string) (gemini.Outcome, error)
}

type Server struct {
	calendar      CalendarService
	generator     Generator
	history       *store.HistoryCache
	httpSrv       *http.Server
	port          int
	allowedOrigin string
}

// ServerConfig holds the dependencies and settings for server creation
type ServerConfig struct {
	Calendar      CalendarService
	Generator     Generator
	History       *store.HistoryCache
	Port          int
	AllowedOrigin string
}

func New(cfg ServerConfig) *Server {
	s := &Server{
		calendar:      cfg.Calendar,
		generator:     cfg.Generator,
		history:       cfg.History,
		port:          cfg.Port,
		allowedOrigin: cfg.AllowedOrigin,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpSrv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.corsMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /health", s.handleHealthCheck)

	// Google OAuth flow
	mux.HandleFunc("GET /auth/google", s.handleGoogleAuth)
	mux.HandleFunc("GET /auth/google/callback", s.handleGoogleCallback)

	// Calendar API
	mux.HandleFunc("GET /api/calendar", s.handleListCalendarEvents)

	// Browsing history API
	mux.HandleFunc("POST /api/history", s.handleStoreHistory)
	mux.HandleFunc("GET /api/get-history", s.handleGetHistory)

	// Generation API
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
}

func (s *Server) Start() error {
	log.Info().Int("port", s.port).Msg("starting HTTP server")
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler returns the server's HTTP handler for testing purposes
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// corsMiddleware allows requests from the extension's origin only.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight requests
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
