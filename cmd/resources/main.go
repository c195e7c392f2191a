// Command resources prints one status-bar line per second with CPU usage,
// memory and swap usage, wireless throughput and disk throughput.
//
// Usage:
//
//	resources
//
// Environment:
//
//	OBUTILS_NET_INTERFACE  interface to report (default: first wireless)
//	OBUTILS_NET_DIR        network class directory (default /sys/class/net)
//	OBUTILS_BLOCK_DIR      block device directory (default /sys/block)
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"obutils/internal/config"
	"obutils/internal/statusline"
	"obutils/internal/sysinfo"
)

const interval = time.Second

func main() {
	if len(os.Args) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: resources")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := cfg.NewLogger("resources")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()

	iface, err := pickInterface(cfg)
	if err != nil {
		logger.Fatal("no network interface", "error", err)
	}
	logger.Debug("reporting interface", "interface", iface)

	m := &monitor{
		iface:    iface,
		blockDir: cfg.Sysfs.BlockDir,
		source:   systemSource{},
	}
	if err := m.prime(ctx); err != nil {
		logger.Fatal("initial sample failed", "error", err)
	}

	w := bufio.NewWriter(os.Stdout)
	for {
		start := time.Now()
		line, err := m.line(ctx)
		if err != nil {
			logger.Fatal("sample failed", "error", err)
		}
		fmt.Fprintln(w, line)
		if err := w.Flush(); err != nil {
			logger.Fatal("write failed", "error", err)
		}
		if err := statusline.Sleep(ctx, time.Until(start.Add(interval))); err != nil {
			return
		}
	}
}

// pickInterface prefers the configured interface, then the first wireless
// one, then the first wired one.
func pickInterface(cfg *config.Config) (string, error) {
	if cfg.Network.Interface != "" {
		return cfg.Network.Interface, nil
	}
	nets, err := sysinfo.Interfaces(cfg.Sysfs.NetDir)
	if err != nil {
		return "", err
	}
	if nets.Wireless != "" {
		return nets.Wireless, nil
	}
	return nets.Wired, nil
}
