package sysinfo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	psnet "github.com/shirou/gopsutil/v3/net"
)

// NetIO is the cumulative number of bytes received and sent.
type NetIO struct {
	Received uint64
	Sent     uint64
}

// Sub returns the bytes transferred since prev.
func (n NetIO) Sub(prev NetIO) NetIO {
	return NetIO{Received: delta(n.Received, prev.Received), Sent: delta(n.Sent, prev.Sent)}
}

// Network reports the counters of a single interface.
func Network(ctx context.Context, iface string) (NetIO, error) {
	stats, err := psnet.IOCountersWithContext(ctx, true)
	if err != nil {
		return NetIO{}, fmt.Errorf("sysinfo: network counters: %w", err)
	}
	return findInterface(stats, iface)
}

func findInterface(stats []psnet.IOCountersStat, iface string) (NetIO, error) {
	for _, s := range stats {
		if s.Name == iface {
			return NetIO{Received: s.BytesRecv, Sent: s.BytesSent}, nil
		}
	}
	return NetIO{}, fmt.Errorf("%w: %s", ErrNoInterface, iface)
}

// Networks names the first wired and first wireless interface.
// Either may be empty.
type Networks struct {
	Wired    string
	Wireless string
}

// Interfaces inspects the network class directory. Only interfaces backed by
// a device are considered; an interface is wireless when it exposes a
// wireless or phy80211 entry.
func Interfaces(dir string) (Networks, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Networks{}, fmt.Errorf("sysinfo: list interfaces: %w", err)
	}

	var n Networks
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if !exists(filepath.Join(path, "device")) {
			continue
		}
		if exists(filepath.Join(path, "wireless")) || exists(filepath.Join(path, "phy80211")) {
			if n.Wireless == "" {
				n.Wireless = e.Name()
			}
		} else if n.Wired == "" {
			n.Wired = e.Name()
		}
	}
	if n.Wired == "" && n.Wireless == "" {
		return n, ErrNoInterface
	}
	return n, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
