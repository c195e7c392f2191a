package fcitx

import (
	"context"
	"strings"
)

// KeyboardPrefix is prepended by Fcitx to the names of plain keyboard
// layouts. It carries no information on a status bar.
const KeyboardPrefix = "Keyboard - "

// Dialect identifies which Fcitx control interface a client speaks.
type Dialect int

const (
	// DialectLegacy is the Fcitx4 org.fcitx.Fcitx.InputMethod interface.
	DialectLegacy Dialect = iota + 1
	// DialectController is the Fcitx5 org.fcitx.Fcitx.Controller1 interface.
	DialectController
)

func (d Dialect) String() string {
	switch d {
	case DialectLegacy:
		return "fcitx4"
	case DialectController:
		return "fcitx5"
	default:
		return "unknown"
	}
}

// InputMethod is one entry of the input method list.
type InputMethod struct {
	// DisplayName is the name shown on the UI.
	DisplayName string
	// ID is the internal name, stable across calls.
	ID string
	// Lang is the language code. Informational only.
	Lang string
	// Loaded is true when the method can be switched to.
	Loaded bool
}

// Client is the dialect-independent view of an Fcitx peer.
type Client interface {
	// Dialect returns the protocol spoken by the client.
	Dialect() Dialect

	// CurrentInputMethod returns the id of the active input method, or an
	// empty string when none is active.
	CurrentInputMethod(ctx context.Context) (string, error)

	// InputMethods returns every registered input method with Loaded set
	// when it is currently switchable.
	InputMethods(ctx context.Context) ([]InputMethod, error)
}

// StripKeyboardPrefix removes a single leading KeyboardPrefix from name.
func StripKeyboardPrefix(name string) string {
	return strings.TrimPrefix(name, KeyboardPrefix)
}
