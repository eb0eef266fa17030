package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
		_ = os.Unsetenv(env)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Port != 3001 {
		t.Errorf("port = %d, want 3001", cfg.Port)
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("upload dir = %q, want uploads", cfg.UploadDir)
	}
	if cfg.FetchMaxBytes != 50<<20 {
		t.Errorf("fetch max bytes = %d, want %d", cfg.FetchMaxBytes, 50<<20)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Logging.Level)
	}
	if cfg.BotEnabled() {
		t.Error("bot must be disabled without a token")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("WEBHOOK_URL", "https://bot.example.com")
	t.Setenv("ELEVENLABS_API_KEY", "xi-secret")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Port)
	}
	if !cfg.BotEnabled() {
		t.Error("bot must be enabled with a token")
	}
	if cfg.WebhookURL != "https://bot.example.com" {
		t.Errorf("webhook url = %q", cfg.WebhookURL)
	}
	if cfg.ElevenLabsAPIKey != "xi-secret" {
		t.Errorf("api key = %q", cfg.ElevenLabsAPIKey)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "PORT=4000\nELEVENLABS_API_KEY=from-file\n"
	if err := os.WriteFile(envPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := LoadFrom(envPath)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Port != 4000 {
		t.Errorf("port = %d, want 4000", cfg.Port)
	}
	if cfg.ElevenLabsAPIKey != "from-file" {
		t.Errorf("api key = %q, want from-file", cfg.ElevenLabsAPIKey)
	}
}

func TestLoad_EnvBeatsDotEnv(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("PORT=4000\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("PORT", "5000")

	cfg, err := LoadFrom(envPath)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Port != 5000 {
		t.Errorf("port = %d, want env var to win", cfg.Port)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "70000")

	_, err := LoadFrom("")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "port") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_InvalidWebhookURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEBHOOK_URL", "not a url")

	_, err := LoadFrom("")
	if err == nil {
		t.Fatal("expected validation error")
	}
}
