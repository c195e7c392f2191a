package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"obutils/internal/logging"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration and returns ValidationErrors listing
// every problem found.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, ValidationError{Field: "logging.level", Message: err.Error()})
	}
	if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
		errs = append(errs, ValidationError{Field: "logging.format", Message: err.Error()})
	}

	errs = append(errs, validateDir("keyboard.leds_dir", c.Keyboard.LEDsDir, true)...)
	errs = append(errs, validateDir("sysfs.backlight_root", c.Sysfs.BacklightRoot, true)...)
	errs = append(errs, validateDir("sysfs.backlight_dir", c.Sysfs.BacklightDir, false)...)
	errs = append(errs, validateDir("sysfs.net_dir", c.Sysfs.NetDir, true)...)
	errs = append(errs, validateDir("sysfs.block_dir", c.Sysfs.BlockDir, true)...)

	if strings.ContainsRune(c.Network.Interface, '/') {
		errs = append(errs, ValidationError{
			Field:   "network.interface",
			Message: fmt.Sprintf("invalid interface name %q", c.Network.Interface),
		})
	}
	if c.Wallpaper.FehPath == "" {
		errs = append(errs, ValidationError{Field: "wallpaper.feh_path", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateDir(field, path string, required bool) ValidationErrors {
	if path == "" {
		if required {
			return ValidationErrors{{Field: field, Message: "must not be empty"}}
		}
		return nil
	}
	if !filepath.IsAbs(path) {
		return ValidationErrors{{Field: field, Message: fmt.Sprintf("must be absolute, got %q", path)}}
	}
	return nil
}
