// ABOUTME: Daylog configuration with backend selection and habit definitions.
// ABOUTME: JSON config file at the XDG path plus DAYLOG_* environment overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"

	"github.com/harperreed/daylog/internal/macro"
	"github.com/harperreed/daylog/internal/models"
	"github.com/harperreed/daylog/internal/store"
)

// Config stores daylog configuration. Habit definitions live here so
// every analytics call receives them explicitly instead of re-reading
// global state.
type Config struct {
	// Backend selects the storage backend: "json" (default) or "sqlite".
	Backend string `json:"backend,omitempty" env:"DAYLOG_BACKEND"`

	// DataDir is the root directory for the store. JSON puts
	// metrics.json here, SQLite puts daylog.db here. Supports ~
	// expansion. Defaults to ~/.local/share/daylog.
	DataDir string `json:"data_dir,omitempty" env:"DAYLOG_DATA_DIR"`

	// DocsDir is the directory of daily documents (YYYY-MM-DD.md).
	// Defaults to <DataDir>/days.
	DocsDir string `json:"docs_dir,omitempty" env:"DAYLOG_DOCS_DIR"`

	// Habits are the configured habit definitions matched against the
	// Daily Habits checklist. Defaults ship for first run.
	Habits []models.HabitDefinition `json:"habits,omitempty"`

	// Macro estimation endpoint (OpenAI-compatible). Estimation is
	// skipped when BaseURL is empty.
	MacroBaseURL string `json:"macro_base_url,omitempty" env:"DAYLOG_MACRO_BASE_URL"`
	MacroModel   string `json:"macro_model,omitempty" env:"DAYLOG_MACRO_MODEL"`
	MacroAPIKey  string `json:"macro_api_key,omitempty" env:"DAYLOG_MACRO_API_KEY"`
}

// GetBackend returns the configured backend, defaulting to "json".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "json"
	}
	return c.Backend
}

// GetDataDir returns the data directory with ~ expanded.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return store.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDocsDir returns the daily documents directory with ~ expanded.
func (c *Config) GetDocsDir() string {
	if c.DocsDir == "" {
		return filepath.Join(c.GetDataDir(), "days")
	}
	return ExpandPath(c.DocsDir)
}

// GetHabits returns the configured habits, or the default set.
func (c *Config) GetHabits() []models.HabitDefinition {
	if len(c.Habits) == 0 {
		return models.DefaultHabits
	}
	return c.Habits
}

// Estimator builds the macro estimator, or nil when unconfigured.
func (c *Config) Estimator() macro.Estimator {
	if c.MacroBaseURL == "" {
		return nil
	}
	model := c.MacroModel
	if model == "" {
		model = "gpt-4o-mini"
	}
	return macro.NewChatEstimator(c.MacroBaseURL, model, c.MacroAPIKey)
}

// OpenStorage creates a Store implementation for the configured backend.
func (c *Config) OpenStorage() (store.Store, error) {
	dataDir := c.GetDataDir()
	switch backend := c.GetBackend(); backend {
	case "json":
		return store.NewJSONStore(filepath.Join(dataDir, "metrics.json"), c.GetHabits()), nil
	case "sqlite":
		return store.OpenSQLite(filepath.Join(dataDir, "daylog.db"), c.GetHabits())
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "daylog", "config.json")
}

// Load reads config from disk, then applies environment overrides.
func Load() (*Config, error) {
	path := GetConfigPath()
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
