// Package config loads optional stdlibgen settings from a TOML or YAML file.
// Nothing is read unless a path is given explicitly. CLI flags override file
// values by being applied to the returned struct after loading.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the run options that can be set from a file.
type Config struct {
	// Verbose enables debug logging on stderr
	Verbose bool `toml:"verbose" yaml:"verbose"`

	// DryRun prints the generated text to stdout instead of writing the output file
	DryRun bool `toml:"dry_run" yaml:"dry_run"`
}

// partialConfig distinguishes a key being absent (nil pointer) from a key
// being explicitly set to its zero value.
type partialConfig struct {
	Verbose *bool `toml:"verbose" yaml:"verbose"`
	DryRun  *bool `toml:"dry_run" yaml:"dry_run"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{}
}

// Load reads the config file at path. The format is chosen by extension:
// .toml, or .yaml/.yml. An empty path returns defaults without error.
// A path that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var partial partialConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &partial)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q in %s", undecoded[0].String(), path)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&partial); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}

	if partial.Verbose != nil {
		cfg.Verbose = *partial.Verbose
	}
	if partial.DryRun != nil {
		cfg.DryRun = *partial.DryRun
	}

	return cfg, nil
}
