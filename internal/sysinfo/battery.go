package sysinfo

import (
	"fmt"

	"github.com/distatus/battery"
)

// BatteryInfo holds energy figures in mWh.
type BatteryInfo struct {
	Now      float64
	Full     float64
	Design   float64
	Charging bool
}

// Percent returns the charge relative to the last full charge, clamped to
// 0..100.
func (b BatteryInfo) Percent() float64 {
	if b.Full <= 0 {
		return 0
	}
	return clamp(b.Now/b.Full*100, 0, 100)
}

// Wear returns how much full capacity was lost relative to the design
// capacity, in percent.
func (b BatteryInfo) Wear() float64 {
	if b.Design <= 0 {
		return 0
	}
	return (1 - b.Full/b.Design) * 100
}

// Battery reports the first battery. The charger counts as connected when
// the battery is charging or full.
func Battery() (BatteryInfo, error) {
	bats, err := battery.GetAll()
	for _, b := range bats {
		if b != nil {
			return batteryInfoFrom(b), nil
		}
	}
	if err != nil {
		return BatteryInfo{}, fmt.Errorf("sysinfo: battery: %w", err)
	}
	return BatteryInfo{}, ErrNoBattery
}

func batteryInfoFrom(b *battery.Battery) BatteryInfo {
	return BatteryInfo{
		Now:      b.Current,
		Full:     b.Full,
		Design:   b.Design,
		Charging: b.State.Raw == battery.Charging || b.State.Raw == battery.Full,
	}
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
