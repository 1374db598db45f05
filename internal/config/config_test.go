package config

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.CatalogBaseURL != DefaultCatalogBaseURL {
		t.Errorf("CatalogBaseURL = %q, want %q", cfg.CatalogBaseURL, DefaultCatalogBaseURL)
	}
	if cfg.FallbackImageURL != DefaultFallbackImageURL {
		t.Errorf("FallbackImageURL = %q, want %q", cfg.FallbackImageURL, DefaultFallbackImageURL)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want %q", cfg.UserAgent, DefaultUserAgent)
	}
	if cfg.ClientTimeout != "30s" {
		t.Errorf("ClientTimeout = %q, want 30s", cfg.ClientTimeout)
	}
	if cfg.Server.Port != 8080 || cfg.Web.Port != 8081 || cfg.Metrics.Port != 9090 {
		t.Errorf("unexpected ports: grpc=%d web=%d metrics=%d", cfg.Server.Port, cfg.Web.Port, cfg.Metrics.Port)
	}
	if !cfg.Web.Enabled {
		t.Error("Expected web surface to be enabled by default")
	}
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_CATALOG_BASE_URL", "http://catalog.internal")
	t.Setenv("APP_FALLBACK_IMAGE_URL", "http://img.internal/missing.png")
	t.Setenv("APP_SERVER_PORT", "9999")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.CatalogBaseURL != "http://catalog.internal" {
		t.Errorf("CatalogBaseURL = %q", cfg.CatalogBaseURL)
	}
	if cfg.FallbackImageURL != "http://img.internal/missing.png" {
		t.Errorf("FallbackImageURL = %q", cfg.FallbackImageURL)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"not-a-level", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
