// Package statusline renders status-bar segments and prints them only when
// they change.
package statusline

import (
	"fmt"
	"strings"

	"obutils/internal/leds"
)

// HighlightColor is the Pango foreground used for emphasized text.
const HighlightColor = "#ff9944"

// Highlight wraps s in a Pango span with the highlight color.
func Highlight(s string) string {
	return fmt.Sprintf("<span foreground='%s'>%s</span>", HighlightColor, s)
}

// Markers renders the lock LEDs that are on, Num Lock first.
func Markers(state leds.State) string {
	var b strings.Builder
	if state.NumLock {
		b.WriteString(Highlight("[Num]"))
	}
	if state.CapsLock {
		b.WriteString(Highlight("[Caps]"))
	}
	return b.String()
}

// Render builds the keyboard segment. Without an input method name the
// segment is hidden, whatever the LEDs say.
func Render(name string, state leds.State) string {
	if name == "" {
		return ""
	}
	return name + " " + Markers(state)
}

// Mode selects which half of the keyboard segment is shown.
type Mode int

const (
	ModeBoth Mode = iota
	ModeInputMethod
	ModeLEDs
)

// ParseMode parses the optional mode argument. An empty string selects both.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "":
		return ModeBoth, nil
	case "fcitx":
		return ModeInputMethod, nil
	case "led":
		return ModeLEDs, nil
	default:
		return ModeBoth, fmt.Errorf("unknown mode: %s", s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeInputMethod:
		return "fcitx"
	case ModeLEDs:
		return "led"
	default:
		return "both"
	}
}

// UsesInputMethod reports whether the mode needs the input method framework.
func (m Mode) UsesInputMethod() bool { return m != ModeLEDs }

// UsesLEDs reports whether the mode needs the LED reader.
func (m Mode) UsesLEDs() bool { return m != ModeInputMethod }

// Render builds the segment for the mode.
func (m Mode) Render(name string, state leds.State) string {
	switch m {
	case ModeInputMethod:
		return name
	case ModeLEDs:
		return Markers(state)
	default:
		return Render(name, state)
	}
}
