package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENV", "SERVER_ADDR", "CORS_ORIGIN", "RATE_LIMIT_MAX", "REDIS_URL", "TLS_ENABLED", "TLS_CA_FILE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.ServerAddr != ":8000" {
		t.Errorf("ServerAddr = %q, want :8000", cfg.ServerAddr)
	}
	if cfg.CORSOrigin != "http://localhost:5173" {
		t.Errorf("CORSOrigin = %q, want http://localhost:5173", cfg.CORSOrigin)
	}
	if cfg.RateLimitMax != 100 {
		t.Errorf("RateLimitMax = %d, want 100", cfg.RateLimitMax)
	}
	if cfg.RedisURL != "" {
		t.Errorf("RedisURL = %q, want empty", cfg.RedisURL)
	}
	if cfg.TLSEnabled {
		t.Error("TLSEnabled should default to false")
	}
	if !cfg.IsDev() {
		t.Error("IsDev() should be true by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("CORS_ORIGIN", "https://mood.example.com")
	t.Setenv("RATE_LIMIT_MAX", "25")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("TLS_ENABLED", "1")
	t.Setenv("TLS_CA_FILE", "/etc/ca.pem")

	cfg := Load()

	if cfg.IsDev() {
		t.Error("IsDev() should be false in production")
	}
	if cfg.ServerAddr != ":9090" {
		t.Errorf("ServerAddr = %q, want :9090", cfg.ServerAddr)
	}
	if cfg.CORSOrigin != "https://mood.example.com" {
		t.Errorf("CORSOrigin = %q", cfg.CORSOrigin)
	}
	if cfg.RateLimitMax != 25 {
		t.Errorf("RateLimitMax = %d, want 25", cfg.RateLimitMax)
	}
	if cfg.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("RedisURL = %q", cfg.RedisURL)
	}
	if !cfg.IsMTLSEnabled() {
		t.Error("IsMTLSEnabled() should be true with TLS and CA file set")
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset", "", 7},
		{"valid", "42", 42},
		{"not a number", "lots", 7},
		{"zero", "0", 7},
		{"negative", "-3", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)
			if got := getEnvInt("TEST_INT", 7); got != tt.want {
				t.Errorf("getEnvInt(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}
