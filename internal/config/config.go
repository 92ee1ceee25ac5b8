// Package config loads the command-line tool's configuration from TOML
// files. Settings cover highlight appearance and logging; a missing file
// yields the defaults, so configuration is always optional.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/selmark"
)

// Config holds the tool's settings.
type Config struct {
	// Tag is the element wrapped around highlighted text.
	Tag string `toml:"tag"`

	// Color is the highlight background color.
	Color string `toml:"color"`

	// Attr is the attribute carrying mark identifiers; empty disables them.
	Attr string `toml:"attr"`

	// Snap expands selections to word boundaries by default.
	Snap bool `toml:"snap"`

	// LogLevel is the minimum level logged (trace..fatal, off).
	LogLevel string `toml:"log_level"`

	// LogFormat selects console or json log output.
	LogFormat string `toml:"log_format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Tag:       selmark.DefaultTag,
		Color:     selmark.DefaultColor,
		Attr:      selmark.DefaultIDAttr,
		Snap:      false,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load reads configuration from the given path. A missing file is not an
// error: the defaults are returned. A file that exists but does not parse
// returns a *ParseError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse("<reader>", data)
}

// parse unmarshals TOML on top of the defaults.
func parse(source string, data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			perr.Line, perr.Column = de.Position()
		}
		return nil, perr
	}
	return cfg, nil
}

// Validate checks the configuration for values the tool cannot use.
func (c *Config) Validate() error {
	if !validName(c.Tag) {
		return fmt.Errorf("tag %q: %w", c.Tag, ErrInvalidValue)
	}
	if strings.TrimSpace(c.Color) == "" {
		return fmt.Errorf("color must not be empty: %w", ErrInvalidValue)
	}
	if c.Attr != "" && !validName(c.Attr) {
		return fmt.Errorf("attr %q: %w", c.Attr, ErrInvalidValue)
	}
	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "off", "disabled":
	default:
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalidValue)
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("log_format %q: %w", c.LogFormat, ErrInvalidValue)
	}
	return nil
}

// validName accepts tag and attribute names: an ASCII letter followed by
// letters, digits, or hyphens.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '-'):
		default:
			return false
		}
	}
	return true
}

// Locate resolves the configuration path to load: an explicit path wins,
// then selmark.toml in the working directory, then the user's config
// directory. The returned path may not exist; Load treats that as the
// default configuration.
func Locate(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("selmark.toml"); err == nil {
		return "selmark.toml"
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "selmark", "config.toml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "selmark", "config.toml")
	}
	return "selmark.toml"
}
