package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Provider string `yaml:"provider"` // mock, yahoo, eodhd
		BaseURL  string `yaml:"base_url"` // eodhd endpoint override
		APIKey   string `yaml:"api_key"`
	} `yaml:"data_source"`
	Tickers []string `yaml:"tickers"`
	Output  struct {
		Format string `yaml:"format"` // text, markdown, csv
	} `yaml:"output"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; defaults make the mock
// provider usable with no configuration at all.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("FINCOMPARE_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("EODHD_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "mock"
	}
	if cfg.DataSource.BaseURL == "" {
		cfg.DataSource.BaseURL = "https://eodhd.com/api"
	}
	if len(cfg.Tickers) == 0 {
		cfg.Tickers = []string{"AAPL", "MSFT", "AMZN"}
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch strings.ToLower(c.DataSource.Provider) {
	case "mock", "yahoo":
	case "eodhd":
		if c.DataSource.APIKey == "" {
			return fmt.Errorf("data_source.api_key is required for the eodhd provider")
		}
	default:
		return fmt.Errorf("data_source.provider must be mock, yahoo, or eodhd, got %q", c.DataSource.Provider)
	}
	switch c.Output.Format {
	case "text", "markdown", "csv":
	default:
		return fmt.Errorf("output.format must be text, markdown, or csv, got %q", c.Output.Format)
	}
	return nil
}
