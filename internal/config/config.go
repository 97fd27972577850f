// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults for optional settings.
const (
	DefaultAddr     = "127.0.0.1:8080"
	DefaultSMTPHost = "smtp.gmail.com"
	DefaultSMTPPort = 465
)

// Config holds all service settings. Optional collaborators (storage, email,
// narrative) stay disabled when their settings are absent.
type Config struct {
	Addr        string
	DatabaseURL string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	EmailSender  string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:        envOr("MOODMIRROR_ADDR", DefaultAddr),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		SMTPHost:     envOr("SMTP_HOST", DefaultSMTPHost),
		SMTPPort:     DefaultSMTPPort,
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("EMAIL_PASSWORD"),
		EmailSender:  os.Getenv("EMAIL_SENDER"),

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:   os.Getenv("OPENAI_MODEL"),
	}

	if port := os.Getenv("SMTP_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", port, err)
		}
		cfg.SMTPPort = p
	}

	// The SMTP username defaults to the sender address (Gmail app passwords).
	if cfg.SMTPUsername == "" {
		cfg.SMTPUsername = cfg.EmailSender
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
