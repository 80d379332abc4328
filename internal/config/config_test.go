package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveConfigPath(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		envValue string
		want     string
	}{
		{"flag takes precedence", "/path/from/flag", "/path/from/env", "/path/from/flag"},
		{"env when no flag", "", "/path/from/env", "/path/from/env"},
		{"empty when neither", "", "", ""},
		{"whitespace flag", "  ", "/path/from/env", "/path/from/env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigPath, tt.envValue)
			got := ResolveConfigPath(tt.flag)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.Host != "0.0.0.0" {
		t.Errorf("expected host 0.0.0.0, got %s", cfg.API.Host)
	}
	if cfg.API.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.API.Port)
	}
	if cfg.Database.Path != "hydrasig.db" {
		t.Errorf("expected database path hydrasig.db, got %s", cfg.Database.Path)
	}
	if cfg.Codec.LegacyLabels {
		t.Error("expected legacy labels off by default")
	}
	if cfg.TextOptions().LegacyLabels {
		t.Error("expected default text options")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
codec:
  legacy_labels: true
  default_origin: "example.com"

api:
  host: "127.0.0.1"
  port: 9090
  api_key: "secret"

database:
  path: "/var/lib/hydrasig/sig.db"

zones:
  directory: "test-zones"
  files:
    - "extra.zone"

logging:
  level: "debug"
  structured: true
  structured_format: "keyvalue"
  extra_fields:
    service: "hydrasig"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.Codec.LegacyLabels || !cfg.TextOptions().LegacyLabels {
		t.Error("expected legacy labels enabled")
	}
	if cfg.Codec.DefaultOrigin != "example.com." {
		t.Errorf("expected normalized origin, got %s", cfg.Codec.DefaultOrigin)
	}
	if cfg.API.Host != "127.0.0.1" || cfg.API.Port != 9090 || cfg.API.APIKey != "secret" {
		t.Errorf("unexpected api config: %+v", cfg.API)
	}
	if cfg.Database.Path != "/var/lib/hydrasig/sig.db" {
		t.Errorf("unexpected database path %s", cfg.Database.Path)
	}
	if cfg.Zones.Directory != "test-zones" || len(cfg.Zones.Files) != 1 {
		t.Errorf("unexpected zones config: %+v", cfg.Zones)
	}
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("expected log level DEBUG, got %s", cfg.Logging.Level)
	}
	lc := cfg.LogConfig()
	if !lc.Structured || lc.StructuredFormat != "keyvalue" || lc.ExtraFields["service"] != "hydrasig" {
		t.Errorf("unexpected logging config: %+v", lc)
	}
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path/to/config.yaml")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "api:\n  port: [invalid")
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"api port zero", func(c *Config) { c.API.Port = 0 }, true},
		{"api port too large", func(c *Config) { c.API.Port = 70000 }, true},
		{"api disabled ignores port", func(c *Config) { c.API.Enabled = false; c.API.Port = 0 }, false},
		{"empty database path", func(c *Config) { c.Database.Path = " " }, true},
		{"bad origin", func(c *Config) { c.Codec.DefaultOrigin = "a..b" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateNormalizesLogging(t *testing.T) {
	cfg := Default()
	cfg.Logging = LoggingConfig{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Level != "INFO" || cfg.Logging.StructuredFormat != "json" || cfg.Logging.ExtraFields == nil {
		t.Errorf("logging not normalized: %+v", cfg.Logging)
	}
}
