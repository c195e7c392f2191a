package statusline

import (
	"fmt"
	"math"

	"obutils/internal/sysinfo"
	"obutils/internal/units"
)

// Separator goes between two segments on one line.
const Separator = "  "

// Label renders a highlighted segment title such as "C:".
func Label(name string) string {
	return Highlight(name+":") + " "
}

// CPU renders a CPU usage percentage, right-aligned on three columns.
func CPU(percent float64) string {
	return fmt.Sprintf("%3.0f%%", math.Round(percent))
}

// Memory renders used and total memory with the used share.
func Memory(m sysinfo.MemInfo) string {
	return fmt.Sprintf("%s/%s (%.0f%%)", units.Size(m.Used()), units.Size(m.Total), math.Round(m.Percent()))
}

// Swap is Memory, or "N/A" when no swap is configured.
func Swap(m sysinfo.MemInfo) string {
	if m.Total == 0 {
		return "N/A"
	}
	return Memory(m)
}

// Network renders the bytes moved during the last interval. The SSID is
// shown when known.
func Network(ssid string, io sysinfo.NetIO) string {
	prefix := "📶"
	if ssid != "" {
		prefix += " " + ssid + " "
	}
	return fmt.Sprintf("%s⬇️ %s ⬆️ %s", prefix, units.Bytes(io.Received, 1), units.Bytes(io.Sent, 1))
}

// Disk renders the bytes read and written during the last interval.
func Disk(io sysinfo.DiskIO) string {
	icon := fmt.Sprintf("<span weight='bold' size='x-large' foreground='%s'>🖴</span>", HighlightColor)
	return fmt.Sprintf("%s ➡️ %s ⬅️ %s", icon, units.Bytes(io.Read, 1), units.Bytes(io.Write, 1))
}

// Brightness renders a backlight percentage with a moon phase.
func Brightness(percent int) string {
	var icon string
	switch {
	case percent < 20:
		icon = "🌑"
	case percent < 40:
		icon = "🌘"
	case percent < 60:
		icon = "🌗"
	case percent < 80:
		icon = "🌖"
	default:
		icon = "🌕"
	}
	return fmt.Sprintf("%s %d%%", icon, percent)
}

// Volume renders the sink volume, or a muted speaker.
func Volume(s sysinfo.SinkState) string {
	var icon string
	switch {
	case s.Muted:
		icon = "🔇"
	case s.Volume <= 35:
		icon = "🔈"
	case s.Volume <= 70:
		icon = "🔉"
	default:
		icon = "🔊"
	}
	return fmt.Sprintf("%s %d%%", icon, s.Volume)
}

// Battery renders the charge, a plug while on AC, and the wear level.
func Battery(b sysinfo.BatteryInfo) string {
	icon := "🔋"
	if b.Charging {
		icon = "🔌"
	}
	return fmt.Sprintf("%s%3.0f%% (%2.0f%% wear)", icon, b.Percent(), b.Wear())
}
