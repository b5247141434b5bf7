package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Chart  ChartConfig  `toml:"chart"`
	Server ServerConfig `toml:"server"`
	Build  BuildConfig  `toml:"build"`
}

// ChartConfig selects the chart fetch strategy and its endpoints.
//
// Strategy is resolved once at startup; it is one of "direct", "scrape" or
// "backend".
type ChartConfig struct {
	Strategy   string `toml:"strategy"`
	JSONHost   string `toml:"json_host"`
	ChartHost  string `toml:"chart_host"`
	ProxyURL   string `toml:"proxy_url"`
	BackendURL string `toml:"backend_url"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// BuildConfig contains defaults for playlist builds.
type BuildConfig struct {
	Count         int     `toml:"count"`
	RatePerSecond float64 `toml:"rate_per_second"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrMissingConfig, path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
