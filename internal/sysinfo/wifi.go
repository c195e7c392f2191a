package sysinfo

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// SSID returns the network the wireless interface is associated with.
func SSID(ctx context.Context, iface string) (string, error) {
	out, err := exec.CommandContext(ctx, "iw", "dev", iface, "link").Output()
	if err != nil {
		return "", fmt.Errorf("sysinfo: iw dev %s link: %w", iface, err)
	}
	return parseSSID(string(out))
}

func parseSSID(raw string) (string, error) {
	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if ssid, ok := strings.CutPrefix(line, "SSID: "); ok {
			return ssid, nil
		}
	}
	return "", ErrNotConnected
}
