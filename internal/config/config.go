// Package config reads the optional sqlxref TOML configuration file.
// Flags override file values; file values override defaults.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the tool-wide settings.
type Config struct {
	// Workers bounds concurrent file parsing.
	Workers int `toml:"workers"`
	// Format is the default report format: table, csv, html, or json.
	Format string `toml:"format"`
	// SchemaPath is the default reference schema file for compare.
	SchemaPath string `toml:"schema_path"`
	// StripComments removes comments from recorded statement text.
	StripComments bool `toml:"strip_comments"`
	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Workers: runtime.NumCPU(),
		Format:  "table",
	}
}

// Load reads the configuration file at path on top of the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open file %q: %w", path, err)
	}
	defer f.Close()

	return parse(f, cfg)
}

func parse(r io.Reader, cfg Config) (Config, error) {
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode error: %w", err)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}
