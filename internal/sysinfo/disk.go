package sysinfo

import (
	"context"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/disk"
)

// DiskIO is the cumulative number of bytes read and written.
type DiskIO struct {
	Read  uint64
	Write uint64
}

// Sub returns the bytes transferred since prev. A counter that went
// backwards counts as zero.
func (d DiskIO) Sub(prev DiskIO) DiskIO {
	return DiskIO{Read: delta(d.Read, prev.Read), Write: delta(d.Write, prev.Write)}
}

// Disk sums I/O over the whole disks listed in blockDir, so partitions are
// not counted twice.
func Disk(ctx context.Context, blockDir string) (DiskIO, error) {
	names, err := blockDevices(blockDir)
	if err != nil {
		return DiskIO{}, err
	}
	if len(names) == 0 {
		return DiskIO{}, nil
	}

	counters, err := disk.IOCountersWithContext(ctx, names...)
	if err != nil {
		return DiskIO{}, fmt.Errorf("sysinfo: disk counters: %w", err)
	}
	return sumDisks(counters, names), nil
}

func blockDevices(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("sysinfo: list block devices: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

func sumDisks(counters map[string]disk.IOCountersStat, names []string) DiskIO {
	var io DiskIO
	for _, name := range names {
		c, ok := counters[name]
		if !ok {
			continue
		}
		io.Read += c.ReadBytes
		io.Write += c.WriteBytes
	}
	return io
}

func delta(cur, prev uint64) uint64 {
	if cur < prev {
		return 0
	}
	return cur - prev
}
