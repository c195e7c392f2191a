package main

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"obutils/internal/statusline"
	"obutils/internal/sysinfo"
)

type source interface {
	Brightness(dir string) (int, error)
	Sink(ctx context.Context) (sysinfo.SinkState, error)
	Battery() (sysinfo.BatteryInfo, error)
}

type systemSource struct{}

func (systemSource) Brightness(dir string) (int, error) { return sysinfo.Brightness(dir) }

func (systemSource) Sink(ctx context.Context) (sysinfo.SinkState, error) { return sysinfo.Sink(ctx) }

func (systemSource) Battery() (sysinfo.BatteryInfo, error) { return sysinfo.Battery() }

type panel struct {
	backlight string
	source    source
	logger    *slog.Logger
}

// line renders brightness, volume and battery separated by spaces. The
// battery part is left out on machines without a battery.
func (p *panel) line(ctx context.Context) (string, error) {
	pct, err := p.source.Brightness(p.backlight)
	if err != nil {
		return "", err
	}
	sink, err := p.source.Sink(ctx)
	if err != nil {
		return "", err
	}
	parts := []string{statusline.Brightness(pct), statusline.Volume(sink)}

	bat, err := p.source.Battery()
	switch {
	case errors.Is(err, sysinfo.ErrNoBattery):
		p.logger.Debug("no battery, segment hidden")
	case err != nil:
		return "", err
	default:
		parts = append(parts, statusline.Battery(bat))
	}

	return strings.Join(parts, " "), nil
}
