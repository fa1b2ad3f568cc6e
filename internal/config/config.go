// Package config loads the showcase run configuration from YAML.
//
// Example showcase.yaml:
//
//	demos: [distinct, groupby]
//	verbose: true
//
// An empty demos list selects every registered demonstration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/solidstream/catalog"
)

// ErrInvalidConfig indicates a configuration that fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the showcase run configuration.
type Config struct {
	// Demos lists demonstration names to run, in order. Empty means all.
	Demos []string `yaml:"demos"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{}
}

// Load reads and validates the file at path. An empty path yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML data and validates it. Unknown fields are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that every listed demo is registered and none repeats.
func (c Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Demos))
	for _, name := range c.Demos {
		if _, err := catalog.Lookup(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: demo %q listed twice", ErrInvalidConfig, name)
		}
		seen[name] = struct{}{}
	}

	return nil
}

// Selected resolves the configured demos, or every demo when none is listed.
func (c Config) Selected() ([]catalog.Demo, error) {
	if len(c.Demos) == 0 {
		return catalog.Demos(), nil
	}
	out := make([]catalog.Demo, 0, len(c.Demos))
	for _, name := range c.Demos {
		d, err := catalog.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, nil
}
