package config

// CodecConfig controls the SIG presentation codec.
type CodecConfig struct {
	// LegacyLabels selects the RFC 2065 presentation form, which has no labels
	// field. It is the process-wide default for parsing and formatting.
	LegacyLabels bool `json:"legacy_labels" yaml:"legacy_labels"`
	// DefaultOrigin completes relative signer names when a request gives none.
	DefaultOrigin string `json:"default_origin" yaml:"default_origin"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `json:"level"                  yaml:"level"`
	Structured       bool              `json:"structured"             yaml:"structured"`
	StructuredFormat string            `json:"structured_format"      yaml:"structured_format"`
	IncludePID       bool              `json:"include_pid"            yaml:"include_pid"`
	ExtraFields      map[string]string `json:"extra_fields,omitempty" yaml:"extra_fields,omitempty"`
}

// APIConfig contains management API settings.
//
// Note: APIKey is intentionally treated as a secret and should not be returned by API endpoints.
type APIConfig struct {
	Enabled bool   `json:"enabled"           yaml:"enabled"`
	Host    string `json:"host"              yaml:"host"`
	Port    int    `json:"port"              yaml:"port"`
	APIKey  string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// DatabaseConfig locates the SQLite record store.
type DatabaseConfig struct {
	Path string `json:"path" yaml:"path"`
}

// ZonesConfig lists zone files loaded at startup. Directory is scanned in
// addition to the explicit Files.
type ZonesConfig struct {
	Directory string   `json:"directory"       yaml:"directory"`
	Files     []string `json:"files,omitempty" yaml:"files,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Codec    CodecConfig    `json:"codec"    yaml:"codec"`
	Logging  LoggingConfig  `json:"logging"  yaml:"logging"`
	API      APIConfig      `json:"api"      yaml:"api"`
	Database DatabaseConfig `json:"database" yaml:"database"`
	Zones    ZonesConfig    `json:"zones"    yaml:"zones"`
}
