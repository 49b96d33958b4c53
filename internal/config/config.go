package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Managed window settings
	Window WindowConfig `json:"window"`

	// Logging settings
	Log LogConfig `json:"log"`

	// Regions where the window accepts input
	HotRegions []RegionConfig `json:"hot_regions"`
}

// WindowConfig holds settings for the managed overlay window
type WindowConfig struct {
	Title            string `json:"title"` // Window to take over; empty uses the foreground window
	Alpha            int    `json:"alpha"` // Layered window alpha, 0-255
	LegacyFocusStyle bool   `json:"legacy_focus_style"`
	Preview          bool   `json:"preview"` // Skip all native window changes
	FrameIntervalMs  int    `json:"frame_interval_ms"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `json:"level"` // "trace", "debug", "info", "warning", "error"
	File  string `json:"file"`  // Empty logs to stdout
}

// RegionConfig is a named screen rectangle in window pixels
type RegionConfig struct {
	Name   string `json:"name"`
	Left   int32  `json:"left"`
	Top    int32  `json:"top"`
	Right  int32  `json:"right"`
	Bottom int32  `json:"bottom"`
}

// Service manages configuration persistence
type Service struct {
	config   *Config
	filePath string
}

// New creates a new config service
func New() (*Service, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".clickthrough")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	return Open(filepath.Join(configDir, "config.json"))
}

// Open loads the config at path, writing defaults there when the file does not exist
func Open(configPath string) (*Service, error) {
	service := &Service{
		filePath: configPath,
		config:   getDefaultConfig(),
	}

	if _, err := os.Stat(configPath); err == nil {
		if err := service.Load(); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		if err := service.Save(); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	return service, nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Alpha:            255,
			LegacyFocusStyle: true,
			FrameIntervalMs:  16,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Normalize clamps out-of-range values in place
func (c *Config) Normalize() {
	if c.Window.Alpha < 0 {
		c.Window.Alpha = 0
	}
	if c.Window.Alpha > 255 {
		c.Window.Alpha = 255
	}
	if c.Window.FrameIntervalMs < 1 {
		c.Window.FrameIntervalMs = 16
	}

	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "trace", "debug", "info", "warning", "error":
		c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	default:
		c.Log.Level = "info"
	}
}

// Get returns the current configuration
func (s *Service) Get() *Config {
	return s.config
}

// Load loads configuration from file
func (s *Service) Load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, s.config); err != nil {
		return err
	}
	s.config.Normalize()
	return nil
}

// Save saves configuration to file
func (s *Service) Save() error {
	data, err := json.MarshalIndent(s.config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0644)
}

// Path returns the full path to the configuration file
func (s *Service) Path() string {
	return s.filePath
}

// UpdateHotRegions replaces the persisted hot regions
func (s *Service) UpdateHotRegions(regions []RegionConfig) error {
	s.config.HotRegions = regions
	return s.Save()
}
