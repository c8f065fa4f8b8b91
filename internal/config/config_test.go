package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any env vars that might interfere
	envVars := []string{"SERVER_ADDR", "SERVER_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "ACTIVATION_WINDOW_DAYS", "APP_BASE_URL"}
	for _, v := range envVars {
		os.Unsetenv(v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Check defaults
	if cfg.ServerAddr != "0.0.0.0" {
		t.Errorf("ServerAddr = %q, want %q", cfg.ServerAddr, "0.0.0.0")
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 8080)
	}
	if cfg.DBHost != "localhost" {
		t.Errorf("DBHost = %q, want %q", cfg.DBHost, "localhost")
	}
	if cfg.DBSSLMode != "disable" {
		t.Errorf("DBSSLMode = %q, want %q", cfg.DBSSLMode, "disable")
	}
	if cfg.ActivationWindow != 7*24*time.Hour {
		t.Errorf("ActivationWindow = %v, want %v", cfg.ActivationWindow, 7*24*time.Hour)
	}
	if cfg.ActivationWindowDays() != 7 {
		t.Errorf("ActivationWindowDays = %d, want 7", cfg.ActivationWindowDays())
	}
	if cfg.HasSMTP() {
		t.Error("HasSMTP should be false with no SMTP_HOST configured")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("DB_HOST", "db.example.com")
	os.Setenv("ACTIVATION_WINDOW_DAYS", "3")
	os.Setenv("SMTP_HOST", "mail.example.com")
	os.Setenv("SMTP_FROM", "noreply@example.com")
	defer func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("DB_HOST")
		os.Unsetenv("ACTIVATION_WINDOW_DAYS")
		os.Unsetenv("SMTP_HOST")
		os.Unsetenv("SMTP_FROM")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ServerPort != 9090 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 9090)
	}
	if cfg.DBHost != "db.example.com" {
		t.Errorf("DBHost = %q, want %q", cfg.DBHost, "db.example.com")
	}
	if cfg.ActivationWindow != 3*24*time.Hour {
		t.Errorf("ActivationWindow = %v, want %v", cfg.ActivationWindow, 3*24*time.Hour)
	}
	if !cfg.HasSMTP() {
		t.Error("HasSMTP should be true with SMTP_HOST and SMTP_FROM set")
	}
}

func TestLoad_RejectsNonPositiveWindow(t *testing.T) {
	os.Setenv("ACTIVATION_WINDOW_DAYS", "0")
	defer os.Unsetenv("ACTIVATION_WINDOW_DAYS")

	if _, err := Load(); err == nil {
		t.Error("Load should fail when ACTIVATION_WINDOW_DAYS is zero")
	}
}
