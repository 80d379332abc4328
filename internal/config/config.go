// Package config provides configuration types, loading and validation for
// HydraSIG.
//
// Configuration is read from an optional YAML file layered over Default. The
// file path comes from the -config flag or the HYDRASIG_CONFIG environment
// variable.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jroosing/hydrasig/internal/dns"
	"github.com/jroosing/hydrasig/internal/logging"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted by ResolveConfigPath.
const EnvConfigPath = "HYDRASIG_CONFIG"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:            "INFO",
			StructuredFormat: "json",
			ExtraFields:      map[string]string{},
		},
		API: APIConfig{
			Enabled: true,
			Host:    "0.0.0.0",
			Port:    8080,
		},
		Database: DatabaseConfig{Path: "hydrasig.db"},
	}
}

// ResolveConfigPath returns the flag value when set, otherwise $HYDRASIG_CONFIG.
func ResolveConfigPath(flagValue string) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv(EnvConfigPath))
}

// Load reads the YAML file at path over Default and validates the result.
// An empty path yields the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	// Normalize management API
	if cfg.API.Host == "" {
		cfg.API.Host = "0.0.0.0"
	}
	if cfg.API.Enabled {
		if cfg.API.Port <= 0 || cfg.API.Port > 65535 {
			return errors.New("api.port must be 1..65535")
		}
	}

	if strings.TrimSpace(cfg.Database.Path) == "" {
		return errors.New("database.path must be set")
	}

	if o := strings.TrimSpace(cfg.Codec.DefaultOrigin); o != "" {
		if _, err := dns.EncodeName(o); err != nil {
			return fmt.Errorf("codec.default_origin: %w", err)
		}
		cfg.Codec.DefaultOrigin = dns.Fqdn(o)
	}
	return nil
}

// TextOptions returns the presentation options selected by the codec settings.
func (cfg *Config) TextOptions() dns.TextOptions {
	return dns.TextOptions{LegacyLabels: cfg.Codec.LegacyLabels}
}

// LogConfig converts the logging section for logging.Configure.
func (cfg *Config) LogConfig() logging.Config {
	return logging.Config{
		Level:            cfg.Logging.Level,
		Structured:       cfg.Logging.Structured,
		StructuredFormat: cfg.Logging.StructuredFormat,
		IncludePID:       cfg.Logging.IncludePID,
		ExtraFields:      cfg.Logging.ExtraFields,
	}
}
