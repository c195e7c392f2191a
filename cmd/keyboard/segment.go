package main

import (
	"context"
	"fmt"
	"log/slog"

	"obutils/internal/config"
	"obutils/internal/fcitx"
	"obutils/internal/leds"
	"obutils/internal/statusline"
)

// segment samples the sources the mode needs. The resolver and the LED
// device are fixed at startup.
type segment struct {
	mode     statusline.Mode
	resolver *fcitx.Resolver
	leds     *leds.Reader
	deviceID int
	bus      *fcitx.SessionBus
}

// newSegment locates the keyboard LEDs and probes the Fcitx dialects,
// Fcitx4 first, as required by mode.
func newSegment(ctx context.Context, cfg *config.Config, mode statusline.Mode, logger *slog.Logger) (*segment, error) {
	s := &segment{mode: mode}

	if mode.UsesLEDs() {
		s.leds = leds.NewReader(cfg.Keyboard.LEDsDir)
		id, err := s.leds.FindDeviceID()
		if err != nil {
			return nil, err
		}
		s.deviceID = id
		logger.Debug("keyboard leds found", "input", id)
	}

	if mode.UsesInputMethod() {
		bus, err := fcitx.ConnectSessionBus()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", fcitx.ErrNoBackend, err)
		}
		resolver, err := fcitx.Probe(ctx, logger,
			fcitx.NewLegacyClient(bus, cfg.Keyboard.Display),
			fcitx.NewControllerClient(bus),
		)
		if err != nil {
			bus.Close()
			return nil, err
		}
		s.bus = bus
		s.resolver = resolver
	}

	return s, nil
}

// Sample reads the active input method and the lock LEDs and renders them.
func (s *segment) Sample(ctx context.Context) (string, error) {
	var name string
	if s.mode.UsesInputMethod() {
		var err error
		if name, err = s.resolver.Current(ctx); err != nil {
			return "", err
		}
	}

	var state leds.State
	if s.mode.UsesLEDs() {
		var err error
		if state, err = s.leds.ReadState(s.deviceID); err != nil {
			return "", err
		}
	}

	return s.mode.Render(name, state), nil
}

// Close releases the bus connection, if any.
func (s *segment) Close() error {
	if s.bus == nil {
		return nil
	}
	return s.bus.Close()
}
