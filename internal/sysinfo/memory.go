package sysinfo

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
)

// MemInfo is a total and available byte count.
type MemInfo struct {
	Total uint64
	Avail uint64
}

// Used returns Total minus Avail.
func (m MemInfo) Used() uint64 {
	if m.Avail > m.Total {
		return 0
	}
	return m.Total - m.Avail
}

// Percent returns the used share of Total, or 0 when Total is 0.
func (m MemInfo) Percent() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Used()) / float64(m.Total) * 100
}

// RAM reports physical memory, using the kernel's available estimate.
func RAM(ctx context.Context) (MemInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemInfo{}, fmt.Errorf("sysinfo: memory: %w", err)
	}
	return MemInfo{Total: vm.Total, Avail: vm.Available}, nil
}

// Swap reports swap space. Total is 0 when no swap is configured.
func Swap(ctx context.Context) (MemInfo, error) {
	sm, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return MemInfo{}, fmt.Errorf("sysinfo: swap: %w", err)
	}
	return MemInfo{Total: sm.Total, Avail: sm.Free}, nil
}
