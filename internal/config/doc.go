// Package config loads CLI defaults from a YAML or TOML file.
//
// The format is chosen by file extension (.yaml, .yml, .toml). Unknown YAML
// fields are rejected. Values not present in the file keep their defaults,
// and command-line flags override both.
package config
