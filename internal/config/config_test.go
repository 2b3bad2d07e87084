package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "primes.yaml", "format: json\nmax_query: 100000\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, uint64(100000), cfg.MaxQuery)
	assert.Equal(t, 10, cfg.Count, "unset fields keep defaults")
	assert.False(t, cfg.Verbose)
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "primes.toml", "format = \"text\"\nverbose = true\ncount = 25\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 25, cfg.Count)
}

func TestLoad_UnknownYAMLField(t *testing.T) {
	path := writeConfig(t, "primes.yml", "fromat: json\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML config")
}

func TestLoad_UnknownTOMLField(t *testing.T) {
	path := writeConfig(t, "primes.toml", "max_qeury = 5\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field "max_qeury"`)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "primes.ini", "format=json\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config extension")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate_AggregatesErrors(t *testing.T) {
	cfg := Config{Format: "xml", Count: -1}
	err := cfg.Validate()
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), `invalid format "xml"`)
	assert.Contains(t, errs[1].Error(), "count must be non-negative")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, "primes.yaml", "format: xml\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
