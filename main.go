package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/procrastify/server/internal/config"
	"github.com/procrastify/server/internal/gcal"
	"github.com/procrastify/server/internal/gemini"
	"github.com/procrastify/server/internal/server"
	"github.com/procrastify/server/internal/store"
)

func main() {
	cfg := config.LoadFromEnv()
	initLogger(cfg)

	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		log.Warn().Msg("GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET not set, calendar authorization will fail")
	}

	geminiClient := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	if !geminiClient.IsConfigured() {
		log.Warn().Msg("API_KEY not set, generation requests will fail")
	}

	tokens := store.NewTokenStore()
	history := store.NewHistoryCache()

	gcalClient := gcal.NewClient(gcal.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.RedirectURL,
	}, tokens)

	srv := server.New(server.ServerConfig{
		Calendar:      gcalClient,
		Generator:     geminiClient,
		History:       history,
		Port:          cfg.HTTPPort,
		AllowedOrigin: cfg.AllowedOrigin,
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server error")
		}
	}()

	waitForShutdown(srv)
}

func initLogger(cfg *config.Config) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func waitForShutdown(srv *server.Server) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
}
