package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration.
type Config struct {
	// Server
	ServerAddr string
	ServerPort int

	// Database
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Activation
	ActivationWindow time.Duration
	AppBaseURL       string

	// SMTP
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		// Server defaults
		ServerAddr: getEnv("SERVER_ADDR", "0.0.0.0"),
		ServerPort: getEnvInt("SERVER_PORT", 8080),

		// Database defaults (matches podman setup: make postgres-start)
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 25432),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "simple_signup"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Activation window, configured in days
		ActivationWindow: time.Duration(getEnvInt("ACTIVATION_WINDOW_DAYS", 7)) * 24 * time.Hour,
		AppBaseURL:       getEnv("APP_BASE_URL", "http://localhost:8080"),

		// SMTP (optional; activation emails are skipped when unset)
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", ""),
		SMTPFromName: getEnv("SMTP_FROM_NAME", ""),
	}

	if cfg.ActivationWindow <= 0 {
		return nil, fmt.Errorf("ACTIVATION_WINDOW_DAYS must be positive")
	}

	return cfg, nil
}

// HasSMTP returns true if an outgoing mail server is configured.
func (c *Config) HasSMTP() bool {
	return c.SMTPHost != "" && c.SMTPFrom != ""
}

// ActivationWindowDays returns the activation window in whole days, as shown
// to users in the activation email.
func (c *Config) ActivationWindowDays() int {
	return int(c.ActivationWindow / (24 * time.Hour))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
