package fcitx

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/godbus/dbus/v5"
)

// Fcitx4 D-Bus constants
const (
	legacyServicePrefix = "org.fcitx.Fcitx-"
	legacyPath          = dbus.ObjectPath("/inputmethod")
	legacyInterface     = "org.fcitx.Fcitx.InputMethod"
)

// LegacyServiceName returns the bus name Fcitx4 owns for an X display such as
// ":0" or "localhost:1.0". Fcitx4 suffixes its name with the display number
// and falls back to 0 when it cannot parse one.
func LegacyServiceName(display string) string {
	n := 0
	if i := strings.LastIndexByte(display, ':'); i >= 0 {
		num := display[i+1:]
		if j := strings.IndexByte(num, '.'); j >= 0 {
			num = num[:j]
		}
		if v, err := strconv.Atoi(num); err == nil && v >= 0 {
			n = v
		}
	}
	return legacyServicePrefix + strconv.Itoa(n)
}

// LegacyClient speaks the Fcitx4 interface. Both the current input method
// and the list are properties.
type LegacyClient struct {
	bus  Bus
	dest string
}

// NewLegacyClient returns a client for the Fcitx4 instance serving display.
func NewLegacyClient(bus Bus, display string) *LegacyClient {
	return &LegacyClient{bus: bus, dest: LegacyServiceName(display)}
}

// Dialect implements Client.
func (c *LegacyClient) Dialect() Dialect { return DialectLegacy }

// CurrentInputMethod implements Client.
func (c *LegacyClient) CurrentInputMethod(ctx context.Context) (string, error) {
	v, err := c.bus.Property(ctx, c.dest, legacyPath, legacyInterface, "CurrentIM")
	if err != nil {
		return "", fmt.Errorf("read current input method: %w", err)
	}
	return decodeString(legacyInterface+".CurrentIM", v)
}

// InputMethods implements Client. The loaded flag comes from the peer.
func (c *LegacyClient) InputMethods(ctx context.Context) ([]InputMethod, error) {
	v, err := c.bus.Property(ctx, c.dest, legacyPath, legacyInterface, "IMList")
	if err != nil {
		return nil, fmt.Errorf("read input method list: %w", err)
	}
	return decodeLegacyList(v)
}

var _ Client = (*LegacyClient)(nil)
