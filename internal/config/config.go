package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/riordanpawley/keynav/internal/domain"
)

// FileName is the per-directory config file
const FileName = ".keynav.json"

// Config represents the full keynav configuration
type Config struct {
	Scroll   ScrollConfig   `json:"scroll"`
	Commands CommandsConfig `json:"commands"`
	Hints    HintsConfig    `json:"hints"`
	Opener   OpenerConfig   `json:"opener"`
	Fetch    FetchConfig    `json:"fetch"`
	Log      LogConfig      `json:"log"`
}

// ScrollConfig contains scroll distances
type ScrollConfig struct {
	Step         int `json:"step"`         // Units per j/k
	UnitsPerLine int `json:"unitsPerLine"` // Units per terminal line
	MaxCount     int `json:"maxCount"`     // Largest accepted repeat count
}

// CommandsConfig contains command buffer settings
type CommandsConfig struct {
	TimeoutMs int `json:"timeoutMs"`
}

// HintsConfig selects which element kinds receive hints
type HintsConfig struct {
	Enabled []string `json:"enabled"`
}

// OpenerConfig contains the external browser launcher
type OpenerConfig struct {
	Command string `json:"command"` // Empty means the platform default
}

// FetchConfig contains HTTP loading settings
type FetchConfig struct {
	TimeoutMs int    `json:"timeoutMs"`
	UserAgent string `json:"userAgent"`
}

// LogConfig contains log file settings
type LogConfig struct {
	Dir   string `json:"dir"`
	Level string `json:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	enabled := make([]string, 0, len(domain.AllKinds()))
	for _, k := range domain.AllKinds() {
		enabled = append(enabled, k.String())
	}

	return &Config{
		Scroll: ScrollConfig{
			Step:         60,
			UnitsPerLine: 20,
			MaxCount:     9999,
		},
		Commands: CommandsConfig{
			TimeoutMs: 1000,
		},
		Hints: HintsConfig{
			Enabled: enabled,
		},
		Fetch: FetchConfig{
			TimeoutMs: 10000,
			UserAgent: "keynav/" + Version,
		},
		Log: LogConfig{
			Dir:   filepath.Join(homeDir, ".keynav", "logs"),
			Level: "info",
		},
	}
}

// CommandTimeout returns the idle timeout of the command buffer
func (c *Config) CommandTimeout() time.Duration {
	return time.Duration(c.Commands.TimeoutMs) * time.Millisecond
}

// FetchTimeout returns the HTTP fetch timeout
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutMs) * time.Millisecond
}

// Kinds returns the set of element kinds that receive hints
func (c HintsConfig) Kinds() (map[domain.ElementKind]bool, error) {
	kinds := make(map[domain.ElementKind]bool, len(c.Enabled))
	for _, name := range c.Enabled {
		k, ok := domain.ParseKind(name)
		if !ok {
			return nil, fmt.Errorf("unknown element kind %q in hints.enabled", name)
		}
		kinds[k] = true
	}
	return kinds, nil
}

// SlogLevel returns the configured level, or Info if it is not recognized
func (c LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Validate checks values that cannot be repaired by defaults
func (c *Config) Validate() error {
	if c.Scroll.Step < 0 || c.Scroll.UnitsPerLine < 0 || c.Scroll.MaxCount < 0 {
		return fmt.Errorf("scroll values must not be negative")
	}
	if _, err := c.Hints.Kinds(); err != nil {
		return err
	}
	return nil
}

// GlobalPath returns the user-wide config file location
func GlobalPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "keynav", "config.json")
}

// LoadConfig loads configuration with priority:
// 1. .keynav.json in dir
// 2. ~/.config/keynav/config.json
// 3. Defaults
func LoadConfig(dir string) (*Config, error) {
	candidates := []string{filepath.Join(dir, FileName)}
	if global := GlobalPath(); global != "" {
		candidates = append(candidates, global)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return LoadFile(path)
	}

	return DefaultConfig(), nil
}

// LoadFile loads configuration from an explicit path
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := ParseVersionedConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	cfg = MergeWithDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// SaveConfig saves configuration to the specified path with version information
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// Merge Scroll config
	if cfg.Scroll.Step == 0 {
		cfg.Scroll.Step = defaults.Scroll.Step
	}
	if cfg.Scroll.UnitsPerLine == 0 {
		cfg.Scroll.UnitsPerLine = defaults.Scroll.UnitsPerLine
	}
	if cfg.Scroll.MaxCount == 0 {
		cfg.Scroll.MaxCount = defaults.Scroll.MaxCount
	}

	if cfg.Commands.TimeoutMs == 0 {
		cfg.Commands.TimeoutMs = defaults.Commands.TimeoutMs
	}

	// A present but empty list disables hints entirely
	if cfg.Hints.Enabled == nil {
		cfg.Hints.Enabled = defaults.Hints.Enabled
	}

	// Merge Fetch config
	if cfg.Fetch.TimeoutMs == 0 {
		cfg.Fetch.TimeoutMs = defaults.Fetch.TimeoutMs
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = defaults.Fetch.UserAgent
	}

	// Merge Log config
	if cfg.Log.Dir == "" {
		cfg.Log.Dir = defaults.Log.Dir
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}
