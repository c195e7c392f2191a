// Package leds reads keyboard lock indicators from the Linux LED class.
//
// Each keyboard input device exposes one directory per LED, named
// input<N>::<led>, with a brightness attribute holding "0" or "1".
package leds

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// DefaultDir is where the kernel exposes LED devices.
const DefaultDir = "/sys/class/leds"

// ErrNoDevice indicates that no input device exposes a Caps Lock LED.
var ErrNoDevice = errors.New("leds: no keyboard led device found")

var capsLockPattern = regexp.MustCompile(`^input(\d+)::capslock$`)

// State is the on/off state of the lock LEDs.
type State struct {
	CapsLock bool
	NumLock  bool
}

// Reader reads LED state below a sysfs directory.
type Reader struct {
	dir string
}

// NewReader returns a Reader rooted at dir. An empty dir means DefaultDir.
func NewReader(dir string) *Reader {
	if dir == "" {
		dir = DefaultDir
	}
	return &Reader{dir: dir}
}

// FindDeviceID returns N for the first input<N>::capslock entry, in
// directory order.
func (r *Reader) FindDeviceID() (int, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return 0, fmt.Errorf("leds: scan %s: %w", r.dir, err)
	}
	for _, entry := range entries {
		m := capsLockPattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return id, nil
	}
	return 0, ErrNoDevice
}

// ReadState reads both lock LEDs of input device id. There is no caching.
func (r *Reader) ReadState(id int) (State, error) {
	caps, err := r.read(id, "capslock")
	if err != nil {
		return State{}, err
	}
	num, err := r.read(id, "numlock")
	if err != nil {
		return State{}, err
	}
	return State{CapsLock: caps, NumLock: num}, nil
}

func (r *Reader) read(id int, led string) (bool, error) {
	path := filepath.Join(r.dir, fmt.Sprintf("input%d::%s", id, led), "brightness")
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("leds: read %s: %w", led, err)
	}
	return strings.TrimSpace(string(data)) == "1", nil
}
