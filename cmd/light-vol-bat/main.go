// Command light-vol-bat prints the backlight level, the audio volume and the
// battery state on one status-bar line.
//
// Usage:
//
//	light-vol-bat
//
// The line is printed at startup, whenever pactl reports a sink event,
// whenever the backlight brightness changes, and every minute for the
// battery.
//
// Environment:
//
//	OBUTILS_BACKLIGHT_DIR  backlight device (default: first under /sys/class/backlight)
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"obutils/internal/config"
	"obutils/internal/sysinfo"
	"obutils/internal/watcher"
)

const batteryInterval = time.Minute

func main() {
	if len(os.Args) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: light-vol-bat")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := cfg.NewLogger("light-vol-bat")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Cancelling on signals also stops the pactl subscription.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backlight := cfg.Sysfs.BacklightDir
	if backlight == "" {
		if backlight, err = sysinfo.BacklightDir(cfg.Sysfs.BacklightRoot); err != nil {
			logger.Fatal("no backlight", "error", err)
		}
	}

	w, err := watcher.New([]string{sysinfo.BrightnessFile(backlight)}, watcher.DefaultPollInterval)
	if err != nil {
		logger.Fatal("watch brightness", "error", err)
	}
	if err := w.Start(); err != nil {
		logger.Fatal("watch brightness", "path", backlight, "error", err)
	}
	defer w.Stop()

	sinks, err := sysinfo.WatchSinks(ctx)
	if err != nil {
		logger.Fatal("watch audio sinks", "error", err)
	}

	p := &panel{backlight: backlight, source: systemSource{}, logger: logger.Logger}
	out := bufio.NewWriter(os.Stdout)
	emit := func() {
		line, err := p.line(ctx)
		if err != nil {
			logger.Fatal("sample failed", "error", err)
		}
		fmt.Fprintln(out, line)
		if err := out.Flush(); err != nil {
			logger.Fatal("write failed", "error", err)
		}
	}

	emit()

	ticker := time.NewTicker(batteryInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-sinks:
			if !ok {
				if ctx.Err() != nil {
					return
				}
				logger.Fatal("pactl subscription ended")
			}
			emit()
		case ev := <-w.Events():
			logger.Debug("brightness changed", "path", ev.Path)
			emit()
		case err := <-w.Errors():
			logger.Warn("brightness watcher", "error", err)
		case <-ticker.C:
			emit()
		}
	}
}
