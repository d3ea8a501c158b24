package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no config path
// is given explicitly.
const DefaultFileName = ".strscript.yml"

// Config holds the launcher settings. The interpreter core itself takes no
// configuration beyond the gas limit.
type Config struct {
	LogLevel       string `yaml:"log_level"`
	Color          bool   `yaml:"color"`
	Gas            int    `yaml:"gas"`
	MaxSourceBytes int64  `yaml:"max_source_bytes"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Color:    true,
	}
}

// Load reads the YAML file at path on top of the defaults. A missing file is
// only an error when required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return cfg, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, cfg.Validate()
		}
		return cfg, fmt.Errorf("config: parse %s: %w", abs, err)
	}
	return cfg, cfg.Validate()
}

// Level returns the parsed zerolog level.
func (c Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if _, err := c.Level(); err != nil {
		result = multierror.Append(result, fmt.Errorf("config: log_level: %w", err))
	}
	if c.Gas < 0 {
		result = multierror.Append(result, fmt.Errorf("config: gas must not be negative, got %d", c.Gas))
	}
	if c.MaxSourceBytes < 0 {
		result = multierror.Append(result, fmt.Errorf("config: max_source_bytes must not be negative, got %d", c.MaxSourceBytes))
	}
	return result.ErrorOrNil()
}
