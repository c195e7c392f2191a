package main

import (
	"context"
	"strings"

	"obutils/internal/statusline"
	"obutils/internal/sysinfo"
)

// source abstracts the counters so the line can be tested.
type source interface {
	CPU(ctx context.Context) (sysinfo.CPUTimes, error)
	RAM(ctx context.Context) (sysinfo.MemInfo, error)
	Swap(ctx context.Context) (sysinfo.MemInfo, error)
	Network(ctx context.Context, iface string) (sysinfo.NetIO, error)
	SSID(ctx context.Context, iface string) (string, error)
	Disk(ctx context.Context, blockDir string) (sysinfo.DiskIO, error)
}

type systemSource struct{}

func (systemSource) CPU(ctx context.Context) (sysinfo.CPUTimes, error) { return sysinfo.CPU(ctx) }
func (systemSource) RAM(ctx context.Context) (sysinfo.MemInfo, error)  { return sysinfo.RAM(ctx) }
func (systemSource) Swap(ctx context.Context) (sysinfo.MemInfo, error) { return sysinfo.Swap(ctx) }

func (systemSource) Network(ctx context.Context, iface string) (sysinfo.NetIO, error) {
	return sysinfo.Network(ctx, iface)
}

func (systemSource) SSID(ctx context.Context, iface string) (string, error) {
	return sysinfo.SSID(ctx, iface)
}

func (systemSource) Disk(ctx context.Context, blockDir string) (sysinfo.DiskIO, error) {
	return sysinfo.Disk(ctx, blockDir)
}

// monitor keeps the previous cumulative counters between two lines.
type monitor struct {
	iface    string
	blockDir string
	source   source

	cpu  sysinfo.CPUTimes
	net  sysinfo.NetIO
	disk sysinfo.DiskIO
}

// prime records the first counters so the first line shows rates.
func (m *monitor) prime(ctx context.Context) error {
	var err error
	if m.cpu, err = m.source.CPU(ctx); err != nil {
		return err
	}
	if m.net, err = m.source.Network(ctx, m.iface); err != nil {
		return err
	}
	if m.disk, err = m.source.Disk(ctx, m.blockDir); err != nil {
		return err
	}
	return nil
}

// line samples every counter and renders one status line.
func (m *monitor) line(ctx context.Context) (string, error) {
	cpu, err := m.source.CPU(ctx)
	if err != nil {
		return "", err
	}
	ram, err := m.source.RAM(ctx)
	if err != nil {
		return "", err
	}
	swap, err := m.source.Swap(ctx)
	if err != nil {
		return "", err
	}
	net, err := m.source.Network(ctx, m.iface)
	if err != nil {
		return "", err
	}
	disk, err := m.source.Disk(ctx, m.blockDir)
	if err != nil {
		return "", err
	}
	// A missing link only hides the network name.
	ssid, _ := m.source.SSID(ctx, m.iface)

	parts := []string{
		statusline.Label("C") + statusline.CPU(sysinfo.CPUPercent(m.cpu, cpu)),
		statusline.Label("M") + statusline.Memory(ram),
		statusline.Label("S") + statusline.Swap(swap),
		statusline.Network(ssid, net.Sub(m.net)),
		statusline.Disk(disk.Sub(m.disk)),
	}
	m.cpu, m.net, m.disk = cpu, net, disk

	return strings.Join(parts, statusline.Separator), nil
}
