package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables that override the file
const (
	EnvClientID = "IGDB_CLIENT_ID"
	EnvToken    = "IGDB_TOKEN"
	EnvBaseURL  = "IGDB_BASE_URL"
)

// ErrMissingCredentials is returned when no IGDB credentials are configured
var ErrMissingCredentials = errors.New("igdb credentials missing: set api.client_id and api.token or IGDB_CLIENT_ID and IGDB_TOKEN")

// Config represents the application configuration
type Config struct {
	Version int             `toml:"version"`
	API     APISettings     `toml:"api"`
	Catalog CatalogSettings `toml:"catalog"`
	UI      UISettings      `toml:"ui"`
	Log     LogSettings     `toml:"log"`
}

// APISettings configures the IGDB client
type APISettings struct {
	BaseURL  string   `toml:"base_url"`
	ClientID string   `toml:"client_id"`
	Token    string   `toml:"token"`
	Timeout  Duration `toml:"timeout"`
	LogLevel string   `toml:"log_level"` // none, basic or body
}

// CatalogSettings configures loading
type CatalogSettings struct {
	BatchSize int `toml:"batch_size"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowCovers bool `toml:"show_covers"`
	AltScreen  bool `toml:"alt_screen"`
}

// LogSettings configures the log file
type LogSettings struct {
	File string `toml:"file"`
}

// Duration is a time.Duration stored as text ("30s")
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	if path == "" {
		return NewConfigService()
	}
	return &configService{filePath: path}
}

// DefaultPath returns <user config dir>/gamehub/config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "gamehub", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, falling back to defaults when it
// does not exist. Environment overrides are applied in both cases.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cfg.ApplyEnv()
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Missing keys
// keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file may hold the API token
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides API settings from the environment
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvClientID); v != "" {
		c.API.ClientID = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		c.API.Token = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.API.BaseURL = v
	}
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Catalog.BatchSize <= 0 {
		return fmt.Errorf("catalog.batch_size must be > 0")
	}
	if c.Catalog.BatchSize > 500 {
		return fmt.Errorf("catalog.batch_size must be <= 500")
	}
	if c.API.Timeout.Duration < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	switch c.API.LogLevel {
	case "", "none", "basic", "body":
	default:
		return fmt.Errorf("api.log_level must be none, basic or body")
	}
	return nil
}

// RequireCredentials fails when the client id or token is empty
func (c *Config) RequireCredentials() error {
	if c.API.ClientID == "" || c.API.Token == "" {
		return ErrMissingCredentials
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL:  "https://api.igdb.com/v4/",
			Timeout:  Duration{30 * time.Second},
			LogLevel: "none",
		},
		Catalog: CatalogSettings{
			BatchSize: 100,
		},
		UI: UISettings{
			ShowCovers: false,
			AltScreen:  true,
		},
		Log: LogSettings{
			File: "gamehub.log",
		},
	}
}
