package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds application configuration
type Config struct {
	// Output format for lookup commands: "text" or "json"
	// Default: "text"
	OutputFormat string

	// Discogs API settings
	Discogs DiscogsConfig

	// Lookup history settings
	History HistoryConfig

	// Logging settings
	Log LogConfig
}

// DiscogsConfig holds Discogs specific configuration
type DiscogsConfig struct {
	APIKey string

	// Request timeout in seconds (0 disables the deadline)
	// Default: 60
	Timeout int

	// Suffix appended to the client's User-Agent
	UserAgent string

	// Empty means the SDK default
	BaseURL string

	// Requests per second (0 disables throttling)
	// Default: 1
	RateLimit float64
}

// HistoryConfig holds lookup history configuration
type HistoryConfig struct {
	Enabled bool
	Path    string
}

// LogConfig holds logging configuration
type LogConfig struct {
	// One of zerolog's level names
	// Default: "warn"
	Level string

	// Optional log file, rotated when it grows
	File string
}

// TimeoutDuration returns the request timeout as a time.Duration
func (d DiscogsConfig) TimeoutDuration() time.Duration {
	return time.Duration(d.Timeout) * time.Second
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	v.AddConfigPath(getConfigDir())
	v.AddConfigPath(".")

	v.SetDefault("output_format", FormatText)
	v.SetDefault("discogs.timeout", 60)
	v.SetDefault("discogs.rate_limit", 1.0)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", filepath.Join(getDataDir(), "history.db"))
	v.SetDefault("log.level", "warn")

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// CRATE_DISCOGS_API_KEY overrides discogs.api_key, and so on
	v.SetEnvPrefix("CRATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		OutputFormat: v.GetString("output_format"),
		Discogs: DiscogsConfig{
			APIKey:    v.GetString("discogs.api_key"),
			Timeout:   v.GetInt("discogs.timeout"),
			UserAgent: v.GetString("discogs.user_agent"),
			BaseURL:   v.GetString("discogs.base_url"),
			RateLimit: v.GetFloat64("discogs.rate_limit"),
		},
		History: HistoryConfig{
			Enabled: v.GetBool("history.enabled"),
			Path:    v.GetString("history.path"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
			File:  v.GetString("log.file"),
		},
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "crate")
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// getDataDir returns the directory holding the history database
func getDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(homeDir, ".local", "share", "crate")
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// GetDataDir returns the data directory path (public helper)
func GetDataDir() string {
	return getDataDir()
}

// Save writes configuration to file
func (c *Config) Save() error {
	v := viper.New()

	configFile := filepath.Join(getConfigDir(), "config.yaml")

	v.Set("output_format", c.OutputFormat)
	v.Set("discogs.api_key", c.Discogs.APIKey)
	v.Set("discogs.timeout", c.Discogs.Timeout)
	v.Set("discogs.user_agent", c.Discogs.UserAgent)
	v.Set("discogs.base_url", c.Discogs.BaseURL)
	v.Set("discogs.rate_limit", c.Discogs.RateLimit)
	v.Set("history.enabled", c.History.Enabled)
	v.Set("history.path", c.History.Path)
	v.Set("log.level", c.Log.Level)
	v.Set("log.file", c.Log.File)

	return v.WriteConfigAs(configFile)
}
