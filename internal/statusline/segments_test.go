package statusline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"obutils/internal/sysinfo"
)

func TestLabel(t *testing.T) {
	assert.Equal(t, "<span foreground='#ff9944'>C:</span> ", Label("C"))
}

func TestCPU(t *testing.T) {
	assert.Equal(t, "  0%", CPU(0))
	assert.Equal(t, " 43%", CPU(42.6))
	assert.Equal(t, "100%", CPU(100))
}

func TestMemory(t *testing.T) {
	m := sysinfo.MemInfo{Total: 16 << 30, Avail: 12 << 30}
	assert.Equal(t, "4.0 GiB/16 GiB (25%)", Memory(m))
	assert.Equal(t, "4.0 GiB/16 GiB (25%)", Swap(m))
	assert.Equal(t, "N/A", Swap(sysinfo.MemInfo{}))
}

func TestNetwork(t *testing.T) {
	io := sysinfo.NetIO{Received: 1536, Sent: 42}
	assert.Equal(t, "📶⬇️   1.5 K ⬆️  42 B", Network("", io))
	assert.Equal(t, "📶 home ⬇️   1.5 K ⬆️  42 B", Network("home", io))
}

func TestDisk(t *testing.T) {
	got := Disk(sysinfo.DiskIO{Read: 0, Write: 2 << 20})
	assert.Equal(t,
		"<span weight='bold' size='x-large' foreground='#ff9944'>🖴</span> ➡️   0 B ⬅️   2 M",
		got)
}

func TestBrightness(t *testing.T) {
	tests := map[int]string{
		0:   "🌑 0%",
		19:  "🌑 19%",
		20:  "🌘 20%",
		45:  "🌗 45%",
		79:  "🌖 79%",
		80:  "🌕 80%",
		100: "🌕 100%",
	}
	for pct, want := range tests {
		assert.Equal(t, want, Brightness(pct))
	}
}

func TestVolume(t *testing.T) {
	assert.Equal(t, "🔇 50%", Volume(sysinfo.SinkState{Muted: true, Volume: 50}))
	assert.Equal(t, "🔈 35%", Volume(sysinfo.SinkState{Volume: 35}))
	assert.Equal(t, "🔉 36%", Volume(sysinfo.SinkState{Volume: 36}))
	assert.Equal(t, "🔉 70%", Volume(sysinfo.SinkState{Volume: 70}))
	assert.Equal(t, "🔊 120%", Volume(sysinfo.SinkState{Volume: 120}))
}

func TestBattery(t *testing.T) {
	b := sysinfo.BatteryInfo{Now: 30000, Full: 40000, Design: 50000}
	assert.Equal(t, "🔋 75% (20% wear)", Battery(b))

	b.Charging = true
	b.Now = 40000
	assert.Equal(t, "🔌100% (20% wear)", Battery(b))

	assert.Equal(t, "🔋  5% ( 0% wear)", Battery(sysinfo.BatteryInfo{Now: 5, Full: 100, Design: 100}))
}
