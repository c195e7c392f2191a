// Package config holds the settings shared by the status-bar helpers.
//
// There is no configuration file: every setting has a default matching a
// stock Linux desktop and can be overridden from the environment.
package config

import (
	"fmt"
	"os"

	"obutils/internal/logging"
)

// Config holds the complete configuration.
type Config struct {
	Logging   LoggingConfig
	Keyboard  KeyboardConfig
	Sysfs     SysfsConfig
	Network   NetworkConfig
	Wallpaper WallpaperConfig
}

// LoggingConfig configures diagnostics on standard error.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Format is text or json.
	Format string
}

// KeyboardConfig configures the keyboard indicator.
type KeyboardConfig struct {
	// LEDsDir is the LED class directory.
	LEDsDir string
	// Display is the X display Fcitx4 is attached to.
	Display string
}

// SysfsConfig locates the kernel counters.
type SysfsConfig struct {
	// BacklightRoot is the backlight class directory.
	BacklightRoot string
	// BacklightDir is a specific backlight device. Empty means the first
	// device under BacklightRoot.
	BacklightDir string
	// NetDir is the network class directory.
	NetDir string
	// BlockDir lists whole block devices.
	BlockDir string
}

// NetworkConfig configures the throughput segment.
type NetworkConfig struct {
	// Interface to report. Empty means the first wireless interface.
	Interface string
}

// WallpaperConfig configures the wallpaper rotator.
type WallpaperConfig struct {
	// FehPath is the feh executable.
	FehPath string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Keyboard: KeyboardConfig{
			LEDsDir: DefaultLEDsDir,
			Display: DefaultDisplay,
		},
		Sysfs: SysfsConfig{
			BacklightRoot: DefaultBacklightRoot,
			NetDir:        DefaultNetDir,
			BlockDir:      DefaultBlockDir,
		},
		Wallpaper: WallpaperConfig{
			FehPath: DefaultFehPath,
		},
	}
}

// Load returns the defaults with environment overrides applied, validated.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides applies environment variable overrides.
func (c *Config) ApplyEnvOverrides() {
	// Logging overrides
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}

	// Keyboard overrides
	if v := os.Getenv(EnvLEDsDir); v != "" {
		c.Keyboard.LEDsDir = v
	}
	if v := os.Getenv(EnvDisplay); v != "" {
		c.Keyboard.Display = v
	}

	// Sysfs overrides
	if v := os.Getenv(EnvBacklightDir); v != "" {
		c.Sysfs.BacklightDir = v
	}
	if v := os.Getenv(EnvNetDir); v != "" {
		c.Sysfs.NetDir = v
	}
	if v := os.Getenv(EnvBlockDir); v != "" {
		c.Sysfs.BlockDir = v
	}

	if v := os.Getenv(EnvNetInterface); v != "" {
		c.Network.Interface = v
	}
	if v := os.Getenv(EnvFehPath); v != "" {
		c.Wallpaper.FehPath = v
	}
}

// LoggerConfig converts the logging section for the logging package.
func (c *Config) LoggerConfig(component string) (*logging.Config, error) {
	level, err := logging.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("config: logging.level: %w", err)
	}
	format, err := logging.ParseFormat(c.Logging.Format)
	if err != nil {
		return nil, fmt.Errorf("config: logging.format: %w", err)
	}
	cfg := logging.DefaultConfig()
	cfg.Level = level
	cfg.Format = format
	cfg.Component = component
	return cfg, nil
}

// NewLogger builds the logger for a program and installs it as the default.
func (c *Config) NewLogger(component string) (*logging.Logger, error) {
	lc, err := c.LoggerConfig(component)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(lc)
	if err != nil {
		return nil, err
	}
	logging.SetDefault(logger)
	return logger, nil
}
