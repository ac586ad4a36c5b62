package infra

import (
	"testing"
	"time"
)

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error when GEMINI_API_KEY is missing")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected port: %s", cfg.Port)
	}
	if cfg.GeminiTextModel != "gemini-2.5-flash" {
		t.Fatalf("unexpected text model: %s", cfg.GeminiTextModel)
	}
	if cfg.GeminiImageModel != "imagen-4.0-generate-001" {
		t.Fatalf("unexpected image model: %s", cfg.GeminiImageModel)
	}
	if cfg.RequestTimeout != 120*time.Second {
		t.Fatalf("unexpected request timeout: %s", cfg.RequestTimeout)
	}
	if cfg.CORSAllowedOrigins != nil {
		t.Fatalf("expected no CORS origins by default")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_TEXT_MODEL", "gemini-exp")
	t.Setenv("DESIGN_REQUEST_TIMEOUT_SECONDS", "30")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.GeminiTextModel != "gemini-exp" {
		t.Fatalf("override not applied: %s", cfg.GeminiTextModel)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.RequestTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}
