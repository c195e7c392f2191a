package fcitx

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the peer could not be reached: no session bus,
	// no owner for the bus name, or no reply.
	ErrUnavailable = errors.New("fcitx: peer unavailable")

	// ErrUnsupported indicates the peer answered but does not implement the
	// requested method, interface or property.
	ErrUnsupported = errors.New("fcitx: not supported by peer")

	// ErrMalformedReply indicates the peer answered with a value of an
	// unexpected shape.
	ErrMalformedReply = errors.New("fcitx: malformed reply")

	// ErrNoBackend indicates that no dialect could be reached at startup.
	ErrNoBackend = errors.New("Fcitx/Fcitx5 DBus interface not found")

	// ErrUnknownInputMethod indicates the peer reported an input method that
	// is not part of the catalog built at startup.
	ErrUnknownInputMethod = errors.New("fcitx: input method not in catalog")
)

// CallError describes a failed D-Bus exchange with an input method peer.
// Kind is one of ErrUnavailable, ErrUnsupported or ErrMalformedReply.
type CallError struct {
	Method string
	Kind   error
	Err    error
}

func (e *CallError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Method, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Method, e.Kind, e.Err)
}

func (e *CallError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// malformed builds a CallError for a reply that could not be decoded.
func malformed(method string, format string, args ...any) error {
	return &CallError{
		Method: method,
		Kind:   ErrMalformedReply,
		Err:    fmt.Errorf(format, args...),
	}
}

// fallbackAllowed reports whether err means the dialect is absent, as opposed
// to present but misbehaving.
func fallbackAllowed(err error) bool {
	return errors.Is(err, ErrUnavailable) || errors.Is(err, ErrUnsupported)
}
