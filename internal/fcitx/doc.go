// Package fcitx talks to the Fcitx input method framework over the D-Bus
// session bus and resolves the active input method to a display name.
//
// # Dialects
//
// Two incompatible control interfaces exist:
//
//	┌────────────┬──────────────────────────┬────────────────────────────────┐
//	│ Dialect    │ Peer                     │ Enablement                     │
//	├────────────┼──────────────────────────┼────────────────────────────────┤
//	│ Legacy     │ org.fcitx.Fcitx-<N>      │ "loaded" flag in IMList        │
//	│ Controller │ org.fcitx.Fcitx5         │ membership in the active group │
//	└────────────┴──────────────────────────┴────────────────────────────────┘
//
// Both are hidden behind the Client interface. Probe picks the first dialect
// whose peer answers and builds a Catalog from it once; the Resolver then maps
// the id reported on every tick to a display name.
//
// The catalog is never rebuilt. If the user switches to another input method
// group after startup, ids from the new group are reported as
// ErrUnknownInputMethod.
package fcitx
