// Command obutils prints a single reading for scripts and panels.
//
// Usage:
//
//	obutils <ram|swap|battery|cpu>
//
// ram, swap and battery print one line and exit. cpu prints the CPU usage
// every second until killed.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"obutils/internal/config"
	"obutils/internal/statusline"
	"obutils/internal/sysinfo"
)

const usage = "Usage: obutils <ram|swap|battery|cpu>"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := cfg.NewLogger("obutils")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()
	switch os.Args[1] {
	case "ram":
		err = showMemory(ctx, os.Stdout, sysinfo.RAM)
	case "swap":
		err = showMemory(ctx, os.Stdout, sysinfo.Swap)
	case "battery":
		err = showBattery(os.Stdout)
	case "cpu":
		err = showCPU(ctx, os.Stdout, time.Second)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
	if err != nil {
		logger.Fatal("read failed", "reading", os.Args[1], "error", err)
	}
}

func showMemory(ctx context.Context, w io.Writer, read func(context.Context) (sysinfo.MemInfo, error)) error {
	m, err := read(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, statusline.Swap(m))
	return err
}

func showBattery(w io.Writer) error {
	b, err := sysinfo.Battery()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, statusline.Battery(b))
	return err
}

func showCPU(ctx context.Context, w io.Writer, interval time.Duration) error {
	return cpuLoop(ctx, w, interval, sysinfo.CPU)
}

// cpuLoop prints the usage since the previous sample on every tick. The first
// line is always 0%.
func cpuLoop(ctx context.Context, w io.Writer, interval time.Duration, sample func(context.Context) (sysinfo.CPUTimes, error)) error {
	prev, err := sample(ctx)
	if err != nil {
		return err
	}
	for {
		cur, err := sample(ctx)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, statusline.CPU(sysinfo.CPUPercent(prev, cur))); err != nil {
			return err
		}
		prev = cur
		if err := statusline.Sleep(ctx, interval); err != nil {
			return nil
		}
	}
}
