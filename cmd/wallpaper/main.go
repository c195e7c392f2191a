// Command wallpaper sets a random background from a directory at a fixed
// interval, never picking the same image twice in a row.
//
// Usage:
//
//	wallpaper <background-dir> <interval-in-seconds>
//
// Images are searched recursively. The background is applied with feh
// (OBUTILS_FEH_PATH, default /usr/bin/feh).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"obutils/internal/config"
	"obutils/internal/wallpaper"
)

type args struct {
	dir      string
	interval time.Duration
}

func main() {
	a, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Usage: %s background-dir interval-in-seconds\n", os.Args[0])
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := cfg.NewLogger("wallpaper")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	images, err := wallpaper.LoadImages(a.dir)
	if err != nil {
		logger.Fatal("load images", "error", err)
	}
	logger.Info("rotating wallpapers", "images", len(images), "interval", a.interval)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := &wallpaper.Rotator{
		Images:   images,
		Interval: a.interval,
		Setter:   wallpaper.Feh{Path: cfg.Wallpaper.FehPath},
		Logger:   logger.Logger,
	}
	if err := r.Run(ctx); err != nil {
		logger.Fatal("set wallpaper", "error", err)
	}
}

func parseArgs(argv []string) (args, error) {
	if len(argv) != 2 {
		return args{}, fmt.Errorf("expected 2 arguments, got %d", len(argv))
	}
	secs, err := strconv.ParseUint(argv[1], 10, 32)
	if err != nil {
		return args{}, fmt.Errorf("interval: %w", err)
	}
	if secs == 0 {
		return args{}, fmt.Errorf("interval must be positive")
	}
	return args{dir: argv[0], interval: time.Duration(secs) * time.Second}, nil
}
