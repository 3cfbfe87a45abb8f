// Package config manages the cvadmin configuration directory. It handles
// loading, saving, and initializing the TOML configuration, with
// environment-variable overrides for scripted use.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	ConfigDirName = ".cvadmin"
	ConfigFile    = "config.toml"
	SessionFile   = "session.json"
	JournalFile   = "journal.db"
	LogFile       = "cvadmin.log"
)

// Config represents the cvadmin configuration.
type Config struct {
	BaseURL         string `toml:"base_url"`
	DefaultPageSize int    `toml:"default_page_size"`
	LogLevel        string `toml:"log_level"`
	LogToFile       bool   `toml:"log_to_file"`

	path string // path to the config directory
}

// Dir returns the configuration directory, honoring CVADMIN_CONFIG.
func Dir() (string, error) {
	if dir := os.Getenv("CVADMIN_CONFIG"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ConfigDirName), nil
}

// Load loads the configuration, applying .env and environment overrides.
func Load() (*Config, error) {
	// .env is optional; system environment wins over file defaults.
	_ = godotenv.Load(".env")

	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config (run 'cvadmin init' first): %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.path = dir
	cfg.applyEnv()
	cfg.applyDefaults()

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base_url is not configured")
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CVADMIN_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("CVADMIN_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("CVADMIN_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.DefaultPageSize = n
		}
	}
}

func (c *Config) applyDefaults() {
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = 10
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Save writes the configuration back to disk.
func (c *Config) Save() error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(filepath.Join(c.path, ConfigFile), data, 0644)
}

// Path returns the configuration directory path.
func (c *Config) Path() string {
	return c.path
}

// SessionPath returns the path to the persisted session file.
func (c *Config) SessionPath() string {
	return filepath.Join(c.path, SessionFile)
}

// JournalPath returns the path to the local mutation journal database.
func (c *Config) JournalPath() string {
	return filepath.Join(c.path, JournalFile)
}

// LogPath returns the path to the rotating log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.path, LogFile)
}

// Initialize creates the config directory with an initial configuration.
func Initialize(baseURL string) (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(configPath); err == nil {
		return nil, fmt.Errorf("cvadmin is already configured (%s)", configPath)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	cfg := &Config{BaseURL: baseURL, path: dir}
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		return nil, err
	}
	return cfg, nil
}
