package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "mock", cfg.DataSource.Provider)
	assert.Equal(t, "https://eodhd.com/api", cfg.DataSource.BaseURL)
	assert.Equal(t, []string{"AAPL", "MSFT", "AMZN"}, cfg.Tickers)
	assert.Equal(t, "text", cfg.Output.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data_source:
  provider: eodhd
  api_key: demo
tickers: [TSLA, KO]
output:
  format: markdown
proxy: http://127.0.0.1:7890
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "eodhd", cfg.DataSource.Provider)
	assert.Equal(t, "demo", cfg.DataSource.APIKey)
	assert.Equal(t, []string{"TSLA", "KO"}, cfg.Tickers)
	assert.Equal(t, "markdown", cfg.Output.Format)
	assert.Equal(t, "http://127.0.0.1:7890", cfg.Proxy)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_source:\n  provider: mock\n"), 0o644))

	t.Setenv("FINCOMPARE_PROVIDER", "yahoo")
	t.Setenv("EODHD_API_KEY", "from-env")
	t.Setenv("HTTPS_PROXY", "http://proxy:8080")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "yahoo", cfg.DataSource.Provider)
	assert.Equal(t, "from-env", cfg.DataSource.APIKey)
	assert.Equal(t, "http://proxy:8080", cfg.Proxy)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tickers: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.DataSource.Provider = "bloomberg"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.DataSource.Provider = "eodhd"
	assert.Error(t, cfg.Validate(), "eodhd without api key must fail")
	cfg.DataSource.APIKey = "demo"
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Output.Format = "xml"
	assert.Error(t, cfg.Validate())
}
