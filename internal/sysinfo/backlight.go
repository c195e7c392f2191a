package sysinfo

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// BacklightDir returns the first backlight device under root.
func BacklightDir(root string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("sysinfo: list backlights: %w", err)
	}
	if len(entries) == 0 {
		return "", ErrNoBacklight
	}
	return filepath.Join(root, entries[0].Name()), nil
}

// BrightnessFile is the attribute that changes when the brightness does.
func BrightnessFile(dir string) string {
	return filepath.Join(dir, "brightness")
}

// Brightness returns the backlight level of the device in dir as a rounded
// percentage of its maximum.
func Brightness(dir string) (int, error) {
	cur, err := readUint(BrightnessFile(dir))
	if err != nil {
		return 0, err
	}
	maxLevel, err := readUint(filepath.Join(dir, "max_brightness"))
	if err != nil {
		return 0, err
	}
	if maxLevel == 0 {
		return 0, fmt.Errorf("sysinfo: %s: max_brightness is 0", dir)
	}
	return int(math.Round(float64(cur) / float64(maxLevel) * 100)), nil
}

func readUint(path string) (uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("sysinfo: read %s: %w", path, err)
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("sysinfo: parse %s: %w", path, err)
	}
	return v, nil
}
