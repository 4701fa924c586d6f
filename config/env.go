package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup. It is
// constructed once in main and passed by reference; no package keeps a
// mutable copy of its own.
type Config struct {
	Port          string
	BaseURL       string
	DatabaseURL   string
	RedisURL      string
	MensaBaseURL  string
	QwantBaseURL  string
	TunnelDomain  string
	EncryptionKey string

	SlackClientID      string
	SlackClientSecret  string
	SlackSigningSecret string
}

const defaultQwantBaseURL = "https://api.qwant.com/v3"

func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: .env file not loaded")
		}
	}
}

func Load() (*Config, error) {
	c := &Config{
		Port:               os.Getenv("PORT"),
		BaseURL:            os.Getenv("BASE_URL"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisURL:           os.Getenv("REDIS_URL"),
		MensaBaseURL:       os.Getenv("MENSA_BASE_URL"),
		QwantBaseURL:       os.Getenv("QWANT_BASE_URL"),
		TunnelDomain:       os.Getenv("TUNNEL_DOMAIN"),
		EncryptionKey:      os.Getenv("ENCRYPTION_KEY"),
		SlackClientID:      os.Getenv("SLACK_CLIENT_ID"),
		SlackClientSecret:  os.Getenv("SLACK_CLIENT_SECRET"),
		SlackSigningSecret: os.Getenv("SLACK_SIGNING_SECRET"),
	}

	if c.Port == "" {
		c.Port = "8080"
	}
	if c.QwantBaseURL == "" {
		c.QwantBaseURL = defaultQwantBaseURL
	}

	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("config: DATABASE_URL is not set")
	}
	if c.MensaBaseURL == "" {
		return nil, fmt.Errorf("config: MENSA_BASE_URL is not set")
	}
	if c.BaseURL == "" {
		return nil, fmt.Errorf("config: BASE_URL is not set")
	}
	if c.SlackClientID == "" || c.SlackClientSecret == "" {
		return nil, fmt.Errorf("config: SLACK_CLIENT_ID and SLACK_CLIENT_SECRET must be set")
	}

	return c, nil
}
