// Package sysinfo reads the machine counters shown by the status-bar
// helpers: CPU time, memory, block and network I/O, battery, backlight,
// audio sink and wireless link.
//
// Counters that only make sense as a rate (CPU time, I/O bytes) are returned
// as raw cumulative values; callers keep the previous sample and take the
// difference.
package sysinfo

import "errors"

var (
	// ErrNoBattery is returned when the system reports no battery.
	ErrNoBattery = errors.New("sysinfo: no battery found")
	// ErrNoBacklight is returned when no backlight device exists.
	ErrNoBacklight = errors.New("sysinfo: no backlight device found")
	// ErrNoInterface is returned when a network interface cannot be found.
	ErrNoInterface = errors.New("sysinfo: network interface not found")
	// ErrNoSink is returned when pactl lists no sink.
	ErrNoSink = errors.New("sysinfo: no audio sink found")
	// ErrNotConnected is returned when a wireless interface has no link.
	ErrNotConnected = errors.New("sysinfo: wireless interface not connected")
)
