package config

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvKeywords, "")
	t.Setenv(EnvLocation, "")
	t.Setenv(EnvTarget, "")
	t.Setenv(EnvMaxPages, "")

	cfg := DefaultConfig()
	if cfg.BaseURL != "https://jooble.org" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Keywords != "tableau" || cfg.Location != "us" {
		t.Fatalf("defaults = %q/%q", cfg.Keywords, cfg.Location)
	}
	if cfg.Target != 120 || cfg.MaxPages != 4 {
		t.Fatalf("defaults = %d/%d", cfg.Target, cfg.MaxPages)
	}
}

func TestDefaultConfigEnvOverrides(t *testing.T) {
	t.Setenv(EnvAPIKey, "secret-key")
	t.Setenv(EnvKeywords, "data analyst")
	t.Setenv(EnvLocation, "uk")
	t.Setenv(EnvTarget, "60")
	t.Setenv(EnvMaxPages, "2")

	cfg := DefaultConfig()
	if cfg.APIKey != "secret-key" {
		t.Fatalf("APIKey = %q", cfg.APIKey)
	}
	if cfg.Keywords != "data analyst" || cfg.Location != "uk" {
		t.Fatalf("overrides = %q/%q", cfg.Keywords, cfg.Location)
	}
	if cfg.Target != 60 || cfg.MaxPages != 2 {
		t.Fatalf("overrides = %d/%d", cfg.Target, cfg.MaxPages)
	}
}

func TestDefaultConfigBadIntFallsBack(t *testing.T) {
	t.Setenv(EnvTarget, "not-a-number")
	cfg := DefaultConfig()
	if cfg.Target != 120 {
		t.Fatalf("Target = %d, want 120", cfg.Target)
	}
}

func TestValidateMissingCredential(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("Validate() = %v, want ErrMissingCredential", err)
	}

	cfg.APIKey = "   "
	if err := cfg.Validate(); !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("Validate() with blank key = %v, want ErrMissingCredential", err)
	}

	cfg.APIKey = "abc123"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestMaskedKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", "not set"},
		{"ab", "ab..."},
		{"abcdef123456", "abcd..."},
	}
	for _, tt := range tests {
		cfg := Config{APIKey: tt.key}
		if got := cfg.MaskedKey(); got != tt.want {
			t.Fatalf("MaskedKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" a , ,b,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("splitCSV() = %#v", got)
	}
}
