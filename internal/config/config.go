package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Version   int             `toml:"version"`
	Helper    HelperConfig    `toml:"helper"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	UI        UISettings      `toml:"ui"`
}

// HelperConfig configures the external helper search provider.
type HelperConfig struct {
	// Path is the helper executable invoked per query. Empty disables
	// the provider's search surface.
	Path string `toml:"path"`
	// TimeoutSeconds bounds one helper invocation.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// ClipboardConfig configures the clipboard history provider.
type ClipboardConfig struct {
	MaxItems       int `toml:"max_items"`
	PollIntervalMS int `toml:"poll_interval_ms"`
}

// UISettings represents UI-related configuration.
type UISettings struct {
	AccentColor    string `toml:"accent_color"`
	MaxVisibleRows int    `toml:"max_visible_rows"`
}

// ConfigService handles configuration management.
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service storing its file under the
// user config directory.
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	paletteDir := filepath.Join(configDir, "palette")
	os.MkdirAll(paletteDir, 0755)

	return &configService{
		filePath: filepath.Join(paletteDir, "config.toml"),
	}
}

// Load loads the configuration, falling back to defaults when the file
// does not exist yet.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default location.
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path.
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills zero-valued fields so a partial config file still
// yields a usable configuration.
func applyDefaults(cfg *Config) {
	if cfg.Helper.TimeoutSeconds <= 0 {
		cfg.Helper.TimeoutSeconds = 5
	}
	if cfg.Clipboard.MaxItems <= 0 {
		cfg.Clipboard.MaxItems = 100
	}
	if cfg.Clipboard.PollIntervalMS <= 0 {
		cfg.Clipboard.PollIntervalMS = 1000
	}
	if cfg.UI.AccentColor == "" {
		cfg.UI.AccentColor = "99"
	}
	if cfg.UI.MaxVisibleRows <= 0 {
		cfg.UI.MaxVisibleRows = 15
	}
}
