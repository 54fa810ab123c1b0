// Package logging provides config-driven categorized logging for drilldown.
// Logs go to a single file under the configured directory, one named zap logger per
// category. Logging is controlled by debug_mode - when false, nothing is written.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot       Category = "boot"       // Startup, config resolution
	CategoryIngest     Category = "ingest"     // Directory scan, file reads
	CategoryParse      Category = "parse"      // Payload decoding, action extraction
	CategoryAggregate  Category = "aggregate"  // Tree construction
	CategoryNavigation Category = "navigation" // Drill-down state machine
	CategoryRender     Category = "render"     // Terminal prompts and views
	CategoryReport     Category = "report"     // Non-interactive summaries
)

// Config mirrors the logging section of the config file.
type Config struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"`
	JSONFormat bool            `yaml:"json_format"`
	Dir        string          `yaml:"dir"`
	Categories map[string]bool `yaml:"categories"`
}

var (
	mu      sync.RWMutex
	config  Config
	base    = zap.NewNop()
	loggers = make(map[Category]*zap.SugaredLogger)
	nop     = zap.NewNop().Sugar()
	logPath string
)

// Initialize builds the file logger from cfg. With debug mode off it is a no-op and
// every category logger discards its output.
func Initialize(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	config = cfg
	loggers = make(map[Category]*zap.SugaredLogger)
	base = zap.NewNop()
	logPath = ""

	if !cfg.DebugMode {
		return nil
	}

	level, err := zap.ParseAtomicLevel(levelOrDefault(cfg.Level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_drilldown.log", time.Now().Format("2006-01-02")))

	zc := zap.NewProductionConfig()
	zc.Level = level
	zc.Encoding = "console"
	zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	if cfg.JSONFormat {
		zc.Encoding = "json"
		zc.EncoderConfig = zap.NewProductionEncoderConfig()
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.Sampling = nil

	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	base = logger
	logPath = path

	boot := base.Named(string(CategoryBoot)).Sugar()
	boot.Infow("logging initialized", "path", path, "level", level.String(), "json", cfg.JSONFormat)
	return nil
}

func levelOrDefault(level string) string {
	if level == "" {
		return "info"
	}
	if level == "warning" {
		return "warn"
	}
	return level
}

// IsDebugMode returns whether logging is enabled at all.
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return config.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return categoryEnabledLocked(category)
}

func categoryEnabledLocked(category Category) bool {
	if !config.DebugMode {
		return false
	}
	enabled, exists := config.Categories[string(category)]
	if !exists {
		return true // Enable by default if not specified
	}
	return enabled
}

// Path returns the log file in use, or "" when logging is off.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

// Get returns (or creates) the logger for a category.
// Returns a no-op logger if debug mode or the category is disabled.
func Get(category Category) *zap.SugaredLogger {
	mu.RLock()
	if !categoryEnabledLocked(category) {
		mu.RUnlock()
		return nop
	}
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}
	l := base.Named(string(category)).Sugar()
	loggers[category] = l
	return l
}

// Sync flushes buffered entries. Call before exit.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = base.Sync()
}
