package sysinfo

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
)

// CPUTimes is the cumulative CPU time, in seconds, across all cores.
type CPUTimes struct {
	// Work is time spent in user, nice and system mode.
	Work float64
	// Total is Work plus idle, iowait, irq and softirq time.
	Total float64
}

// CPU samples the aggregate CPU times.
func CPU(ctx context.Context) (CPUTimes, error) {
	stats, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return CPUTimes{}, fmt.Errorf("sysinfo: cpu times: %w", err)
	}
	if len(stats) == 0 {
		return CPUTimes{}, fmt.Errorf("sysinfo: cpu times: empty result")
	}
	return cpuTimesFrom(stats[0]), nil
}

func cpuTimesFrom(s cpu.TimesStat) CPUTimes {
	work := s.User + s.Nice + s.System
	return CPUTimes{
		Work:  work,
		Total: work + s.Idle + s.Iowait + s.Irq + s.Softirq,
	}
}

// CPUPercent returns the share of work time between two samples, 0 to 100.
// It returns 0 when no time elapsed between them.
func CPUPercent(prev, cur CPUTimes) float64 {
	total := cur.Total - prev.Total
	if total <= 0 {
		return 0
	}
	p := (cur.Work - prev.Work) / total * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
