package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ValidFormats are the accepted output formats.
var ValidFormats = []string{"text", "json"}

// Config holds CLI defaults.
type Config struct {
	// Format is the output format: "text" or "json".
	Format string `yaml:"format" toml:"format"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose" toml:"verbose"`

	// MaxQuery is the largest n is-prime accepts. Zero means unlimited.
	MaxQuery uint64 `yaml:"max_query" toml:"max_query"`

	// Count is how many primes next prints when --count is not given.
	Count int `yaml:"count" toml:"count"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format: "text",
		Count:  10,
	}
}

// Load reads path over the defaults and validates the result.
// An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse TOML config: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("failed to parse TOML config: unknown field %q", undecoded[0].String())
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs error
	if !slices.Contains(ValidFormats, c.Format) {
		errs = multierr.Append(errs, fmt.Errorf("invalid format %q: must be one of %v", c.Format, ValidFormats))
	}
	if c.Count < 0 {
		errs = multierr.Append(errs, fmt.Errorf("count must be non-negative, got %d", c.Count))
	}
	return errs
}
