package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Port:            "8080",
		DBPath:          "./data/constructor.db",
		GroqAPIKey:      "key",
		GroqModel:       "llama-3.3-70b-versatile",
		GroqTimeout:     60 * time.Second,
		GenerationLimit: 50,
		HistoryLimit:    20,
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.GroqModel != "llama-3.3-70b-versatile" {
		t.Errorf("GroqModel = %q", cfg.GroqModel)
	}
	if cfg.GenerationLimit != 50 {
		t.Errorf("GenerationLimit = %d", cfg.GenerationLimit)
	}
	if cfg.HistoryLimit != 20 {
		t.Errorf("HistoryLimit = %d", cfg.HistoryLimit)
	}
	if cfg.GroqTimeout != 60*time.Second {
		t.Errorf("GroqTimeout = %v", cfg.GroqTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GENERATION_LIMIT", "5")
	t.Setenv("GROQ_TIMEOUT", "30s")
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GenerationLimit != 5 {
		t.Errorf("GenerationLimit = %d, want 5", cfg.GenerationLimit)
	}
	if cfg.GroqTimeout != 30*time.Second {
		t.Errorf("GroqTimeout = %v, want 30s", cfg.GroqTimeout)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %q", cfg.Port)
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "GROQ_API_KEY") {
		t.Fatalf("Load without api key: err = %v", err)
	}
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GENERATION_LIMIT", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GenerationLimit != 50 {
		t.Errorf("GenerationLimit = %d, want fallback 50", cfg.GenerationLimit)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Port = "" }},
		{"empty db path", func(c *Config) { c.DBPath = "" }},
		{"missing api key", func(c *Config) { c.GroqAPIKey = "" }},
		{"empty model", func(c *Config) { c.GroqModel = "" }},
		{"zero limit", func(c *Config) { c.GenerationLimit = 0 }},
		{"zero history", func(c *Config) { c.HistoryLimit = 0 }},
	}
	for _, tt := range tests {
		cfg := validConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tt.name)
		}
	}

	if err := validConfig().Validate(); err != nil {
		t.Errorf("valid config: Validate() = %v", err)
	}
}

func TestIsDevelopment(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"", true},
		{"http://localhost:3000", true},
		{"http://127.0.0.1:3000", true},
		{"https://constructor.example.com", false},
	}
	for _, tt := range tests {
		cfg := validConfig()
		cfg.FrontendURL = tt.url
		if got := cfg.IsDevelopment(); got != tt.want {
			t.Errorf("IsDevelopment(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}
