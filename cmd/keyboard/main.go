// Command keyboard prints the keyboard segment of the status bar: the
// display name of the active Fcitx input method followed by the Num Lock and
// Caps Lock indicators.
//
// Usage:
//
//	keyboard [fcitx|led]
//
// Without an argument both halves are printed. "fcitx" prints only the input
// method and "led" only the lock indicators. A line is printed whenever the
// segment changes; the state is polled every 50ms.
//
// Environment:
//
//	OBUTILS_LOG_LEVEL   debug, info, warn or error (default warn)
//	OBUTILS_LOG_FORMAT  text or json
//	OBUTILS_LEDS_DIR    LED class directory (default /sys/class/leds)
//	DISPLAY             X display, selects the Fcitx4 bus name
package main

import (
	"context"
	"fmt"
	"os"

	"obutils/internal/config"
	"obutils/internal/statusline"
)

const usage = "Usage: keyboard [fcitx|led]"

func main() {
	mode, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := cfg.NewLogger("keyboard")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// The segment runs until the panel kills it.
	ctx := context.Background()

	seg, err := newSegment(ctx, cfg, mode, logger.Logger)
	if err != nil {
		logger.Fatal("keyboard segment unavailable", "mode", mode.String(), "error", err)
	}
	defer seg.Close()

	loop := &statusline.Loop{
		Sample:    seg.Sample,
		Out:       os.Stdout,
		Interval:  statusline.PollInterval,
		KeepEmpty: mode == statusline.ModeLEDs,
	}
	if err := loop.Run(ctx); err != nil {
		logger.Fatal("keyboard segment failed", "error", err)
	}
}

func parseArgs(args []string) (statusline.Mode, error) {
	switch len(args) {
	case 0:
		return statusline.ModeBoth, nil
	case 1:
		return statusline.ParseMode(args[0])
	default:
		return statusline.ModeBoth, fmt.Errorf("too many arguments")
	}
}
