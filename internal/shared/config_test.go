package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Chart.Strategy != "scrape" {
			t.Errorf("expected default strategy scrape, got %s", config.Chart.Strategy)
		}

		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}

		if config.Chart.ChartHost != "www.billboard.com" {
			t.Errorf("expected chart host www.billboard.com, got %s", config.Chart.ChartHost)
		}

		if config.Build.Count != 10 {
			t.Errorf("expected default count 10, got %d", config.Build.Count)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Chart.Strategy != defaultConfig.Chart.Strategy {
			t.Errorf("created config strategy doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[chart]
strategy = "direct"
json_host = "https://charts.example.com"
chart_host = "charts.example.com"
proxy_url = "https://proxy.example.com"
backend_url = "http://localhost:9090"

[server]
host = "0.0.0.0"
port = 3000

[build]
count = 5
rate_per_second = 2.5
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Chart.Strategy != "direct" {
			t.Errorf("expected strategy direct, got %s", config.Chart.Strategy)
		}

		if config.Server.Port != 3000 {
			t.Errorf("expected server port 3000, got %d", config.Server.Port)
		}

		if config.Build.RatePerSecond != 2.5 {
			t.Errorf("expected rate 2.5, got %f", config.Build.RatePerSecond)
		}

		if config.Chart.JSONHost != "https://charts.example.com" {
			t.Errorf("expected json host https://charts.example.com, got %s", config.Chart.JSONHost)
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}
