package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"drilldown/internal/analytics"
	"drilldown/internal/logging"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".drilldown.yaml"

// Config holds all drilldown configuration.
type Config struct {
	// Where event-log files come from
	Source SourceConfig `yaml:"source"`

	// Prompt and chart presentation
	Display DisplayConfig `yaml:"display"`

	// Logging
	Logging logging.Config `yaml:"logging"`
}

// SourceConfig locates the event-log files.
type SourceConfig struct {
	Dir             string `yaml:"dir"`
	Recursive       bool   `yaml:"recursive"`
	Pattern         string `yaml:"pattern"`          // glob matched against file names
	Prefix          string `yaml:"prefix"`           // stripped before the date is read
	ReadConcurrency int    `yaml:"read_concurrency"` // files read in parallel
}

// DisplayConfig configures the terminal output.
type DisplayConfig struct {
	Theme      string `yaml:"theme"`       // "light", "dark" or "auto"
	ChartFloor int    `yaml:"chart_floor"` // minimum bar chart axis width
	PageSize   int    `yaml:"page_size"`   // options visible per prompt
}

// ValidThemes lists the accepted display.theme values.
var ValidThemes = []string{"auto", "light", "dark"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Pattern:         analytics.DefaultFilePrefix + "*",
			Prefix:          analytics.DefaultFilePrefix,
			ReadConcurrency: 4,
		},
		Display: DisplayConfig{
			Theme:      "auto",
			ChartFloor: analytics.ChartFloor,
			PageSize:   13,
		},
		Logging: logging.Config{
			Level: "info",
			Dir:   filepath.Join(".drilldown", "logs"),
		},
	}
}

// DefaultPath returns the first config file that exists: ./.drilldown.yaml, then
// $HOME/.config/drilldown/config.yaml. It returns "" when neither exists.
func DefaultPath() string {
	candidates := []string{DefaultFileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "drilldown", "config.yaml"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads the config at path on top of the defaults, then applies environment
// overrides. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Return defaults if config file doesn't exist
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("DRILLDOWN_DIR"); dir != "" {
		c.Source.Dir = dir
	}
	if raw := os.Getenv("DRILLDOWN_RECURSIVE"); raw != "" {
		if recursive, err := strconv.ParseBool(raw); err == nil {
			c.Source.Recursive = recursive
		}
	}
	if theme := os.Getenv("DRILLDOWN_THEME"); theme != "" {
		c.Display.Theme = strings.ToLower(theme)
	}
	if level := os.Getenv("DRILLDOWN_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
		c.Logging.DebugMode = true
	}
}

// Validate checks values that would otherwise fail later in the run.
func (c *Config) Validate() error {
	if c.Source.Pattern == "" {
		return fmt.Errorf("source.pattern must not be empty")
	}
	if c.Source.ReadConcurrency < 1 {
		return fmt.Errorf("source.read_concurrency must be at least 1, got %d", c.Source.ReadConcurrency)
	}
	if c.Display.ChartFloor < 1 {
		return fmt.Errorf("display.chart_floor must be positive, got %d", c.Display.ChartFloor)
	}
	if c.Display.PageSize < 3 {
		return fmt.Errorf("display.page_size must be at least 3, got %d", c.Display.PageSize)
	}

	validTheme := false
	for _, t := range ValidThemes {
		if c.Display.Theme == t {
			validTheme = true
			break
		}
	}
	if !validTheme {
		return fmt.Errorf("invalid display theme: %s (valid: %v)", c.Display.Theme, ValidThemes)
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}
