package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"folio/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version  int              `toml:"version"`
	Carousel CarouselSettings `toml:"carousel"`
	Gesture  GestureSettings  `toml:"gesture"`
	UI       UISettings       `toml:"ui"`
	Storage  StorageSettings  `toml:"storage"`
	Catalog  CatalogSettings  `toml:"catalog"`
	Log      LogSettings      `toml:"log"`
}

// CarouselSettings controls auto-advance
type CarouselSettings struct {
	IntervalMS int `toml:"interval_ms"` // <= 0 disables auto-advance
}

// Interval returns the auto-advance period
func (c CarouselSettings) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// GestureSettings holds mouse-drag thresholds in terminal cells
type GestureSettings struct {
	SwipeThreshold float64 `toml:"swipe_threshold"`
	TapThreshold   float64 `toml:"tap_threshold"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ReduceMotion bool   `toml:"reduce_motion"`
	Theme        string `toml:"theme"` // initial theme mode when nothing is stored
}

// StorageSettings locates the persistent key-value file
type StorageSettings struct {
	Path string `toml:"path"`
}

// CatalogSettings optionally replaces the embedded portfolio content
type CatalogSettings struct {
	Path string `toml:"path"`
}

// LogSettings configures the log file
type LogSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for path. An empty path selects
// the default location under the user config directory.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = filepath.Join(Dir(), "config.toml")
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Dir returns the folio config directory
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "folio")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, writing defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cs.Save(cfg); err != nil {
			return nil, err
		}
		cs.publishLoaded()
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded()
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (cs *configService) publishLoaded() {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
}

// Validate rejects values no component can work with
func (c *Config) Validate() error {
	if c.Gesture.SwipeThreshold < 0 || c.Gesture.TapThreshold < 0 {
		return fmt.Errorf("gesture thresholds must not be negative")
	}
	switch c.UI.Theme {
	case "", "system", "light", "dark":
	default:
		return fmt.Errorf("unknown theme %q", c.UI.Theme)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dir := Dir()
	return &Config{
		Version: 1,
		Carousel: CarouselSettings{
			IntervalMS: 5000,
		},
		Gesture: GestureSettings{
			// Terminal mouse coordinates are cells, not pixels
			SwipeThreshold: 6,
			TapThreshold:   2,
		},
		UI: UISettings{
			Theme: "system",
		},
		Storage: StorageSettings{
			Path: filepath.Join(dir, "storage.toml"),
		},
		Log: LogSettings{
			Level: "info",
			File:  filepath.Join(dir, "folio.log"),
		},
	}
}
