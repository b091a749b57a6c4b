package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Config is the full host configuration.
type Config struct {
	Screen ScreenConfig `yaml:"screen"`
	Loop   LoopConfig   `yaml:"loop"`
	Log    LogConfig    `yaml:"log"`
}

// ScreenConfig is the simulated screen in pixels. It is fixed for a run.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoopConfig controls the frame driver.
type LoopConfig struct {
	FPS  int   `yaml:"fps"`
	Seed int64 `yaml:"seed"` // 0 = random based on time
}

// LogConfig controls where and how much the game logs.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Screen: ScreenConfig{Width: 1000, Height: 1000},
		Loop:   LoopConfig{FPS: 60},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads the configuration.
// Search order: customPath -> $PLANETDEFENSE_CONFIG -> ~/.planetdefense/config.yaml
// -> ./configs/planetdefense.yaml -> embedded default.
// Only an explicitly requested file is an error when missing; any file that
// is found but does not parse is an error.
func Load(customPath string) (Config, error) {
	if customPath == "" {
		customPath = GetEnv(EnvConfigPath, "")
	}
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", "planetdefense.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Loop.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.Loop.FPS)
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}

// ParseLevel returns the configured log level.
func (l LogConfig) ParseLevel() (log.Level, error) {
	if l.Level == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}

// userConfigPath returns the per-user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".planetdefense", "config.yaml")
}
