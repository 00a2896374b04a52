package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()
}

type Config struct {
	// Required
	GeminiAPIKey       string
	GoogleClientID     string
	GoogleClientSecret string

	// Optional with defaults
	HTTPPort      int
	RedirectURL   string
	AllowedOrigin string
	GeminiModel   string
	Debug         bool
}

func LoadFromEnv() *Config {
	port := getEnvAsIntOrDefault("PROCRASTIFY_HTTP_PORT", 5000)

	return &Config{
		// Required
		GeminiAPIKey:       os.Getenv("API_KEY"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),

		// Optional with defaults
		HTTPPort:      port,
		RedirectURL:   getEnvOrDefault("PROCRASTIFY_REDIRECT_URL", fmt.Sprintf("http://localhost:%d/auth/google/callback", port)),
		AllowedOrigin: getEnvOrDefault("PROCRASTIFY_ALLOWED_ORIGIN", "http://localhost:5173"),
		GeminiModel:   getEnvOrDefault("PROCRASTIFY_GEMINI_MODEL", "gemini-pro"),
		Debug:         getEnvAsBoolOrDefault("PROCRASTIFY_DEBUG", false),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
