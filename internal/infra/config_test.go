package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DataDir != "data" {
		t.Fatalf("DataDir = %q, want data", cfg.DataDir)
	}
	if cfg.FramePacing != 2*time.Second {
		t.Fatalf("FramePacing = %v, want 2s", cfg.FramePacing)
	}
	if cfg.GeminiAPIKey != "" {
		t.Fatalf("GeminiAPIKey should default to empty (synthetic mode)")
	}
}

func TestLoadConfigHonorsEnvironment(t *testing.T) {
	t.Setenv("PORT", "1919")
	t.Setenv("FRAME_PACING_MS", "500")
	t.Setenv("ALLOWED_ORIGINS", "https://studio.example.com, http://localhost:3000 ")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "1919" {
		t.Fatalf("Port = %q, want 1919", cfg.Port)
	}
	if cfg.FramePacing != 500*time.Millisecond {
		t.Fatalf("FramePacing = %v, want 500ms", cfg.FramePacing)
	}
	want := []string{"https://studio.example.com", "http://localhost:3000"}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != want[0] || cfg.AllowedOrigins[1] != want[1] {
		t.Fatalf("AllowedOrigins = %#v, want %#v", cfg.AllowedOrigins, want)
	}
}

func TestLoadConfigIgnoresMalformedInt(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.RateLimitPerMin != 30 {
		t.Fatalf("RateLimitPerMin = %d, want fallback 30", cfg.RateLimitPerMin)
	}
}
