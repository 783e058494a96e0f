// Package config loads the optional YAML configuration for svg2png.
// Nothing is read unless a config name or path is given explicitly.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	svg2png "github.com/alnah/go-svg2png"
	"github.com/alnah/go-svg2png/internal/fileutil"
	"github.com/alnah/go-svg2png/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// configDirName is the directory under os.UserConfigDir searched for named configs.
const configDirName = "go-svg2png"

// MaxPathLength bounds path fields.
const MaxPathLength = 4096

// Config holds conversion settings. Relative paths are resolved against the
// base directory (the executable's directory unless --dir is given).
type Config struct {
	Source      string `yaml:"source"`      // SVG input (default: abel-labs-logo.svg)
	Destination string `yaml:"destination"` // PNG output (default: abel-labs-logo.png)
	Preview     string `yaml:"preview"`     // HTML fallback page (default: render-logo.html)
	Width       int    `yaml:"width"`       // pixels (default: 880)
	Height      int    `yaml:"height"`      // pixels (default: 240)
	Renderer    string `yaml:"renderer"`    // "rsvg", "native", "browser" (default: "rsvg")
	Timeout     string `yaml:"timeout"`     // Go duration, e.g. "30s" (empty = library default)
	Strict      bool   `yaml:"strict"`      // native renderer rejects unsupported elements
}

// DefaultConfig returns the logo export settings.
func DefaultConfig() *Config {
	return &Config{
		Source:      svg2png.SourceName,
		Destination: svg2png.DestinationName,
		Preview:     svg2png.PreviewName,
		Width:       svg2png.DefaultWidth,
		Height:      svg2png.DefaultHeight,
		Renderer:    svg2png.DefaultRenderer,
	}
}

// Validate checks every field. Called by LoadConfig, and by the CLI after
// merging flags.
func (c *Config) Validate() error {
	for name, value := range map[string]string{
		"source":      c.Source,
		"destination": c.Destination,
		"preview":     c.Preview,
	} {
		if value == "" {
			return fmt.Errorf("%w: %s: cannot be empty", ErrInvalidConfig, name)
		}
		if len(value) > MaxPathLength {
			return fmt.Errorf("%w: %s: %d chars, max %d", ErrInvalidConfig, name, len(value), MaxPathLength)
		}
	}

	if err := svg2png.ValidateDimensions(c.Width, c.Height); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if !svg2png.IsValidRenderer(c.Renderer) {
		return fmt.Errorf("%w: renderer: %q (must be one of %s)",
			ErrInvalidConfig, c.Renderer, strings.Join(svg2png.RendererNames(), ", "))
	}

	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

// TimeoutDuration parses Timeout. Empty returns 0 (use the library default).
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout: %v", ErrInvalidConfig, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: timeout: must be positive, got %s", ErrInvalidConfig, c.Timeout)
	}
	return d, nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched in the current directory and ~/.config/go-svg2png/.
// Keys absent from the file (or zero) take their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills zero-valued fields from DefaultConfig.
// A zero width in the file is therefore "unset", not invalid.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Source == "" {
		c.Source = d.Source
	}
	if c.Destination == "" {
		c.Destination = d.Destination
	}
	if c.Preview == "" {
		c.Preview = d.Preview
	}
	if c.Width == 0 {
		c.Width = d.Width
	}
	if c.Height == 0 {
		c.Height = d.Height
	}
	if c.Renderer == "" {
		c.Renderer = d.Renderer
	}
	c.Renderer = strings.ToLower(c.Renderer)
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-svg2png/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
