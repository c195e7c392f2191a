package fcitx

import (
	"context"
	"errors"

	"github.com/godbus/dbus/v5"
)

const propertiesGet = "org.freedesktop.DBus.Properties.Get"

// Bus is the part of a D-Bus connection the clients use. Replies are returned
// as the generic values godbus decodes: structs become []interface{} and
// arrays of structs become [][]interface{}.
type Bus interface {
	// Call invokes a method and returns the reply body.
	Call(ctx context.Context, dest string, path dbus.ObjectPath, method string, args ...interface{}) ([]interface{}, error)

	// Property reads a property and returns the value held by the variant.
	Property(ctx context.Context, dest string, path dbus.ObjectPath, iface, name string) (interface{}, error)
}

// SessionBus is a Bus backed by a private connection to the session bus.
type SessionBus struct {
	conn *dbus.Conn
}

// ConnectSessionBus opens a new connection to the session bus.
func ConnectSessionBus() (*SessionBus, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, &CallError{Method: "ConnectSessionBus", Kind: ErrUnavailable, Err: err}
	}
	return &SessionBus{conn: conn}, nil
}

// NewSessionBus wraps an existing connection.
func NewSessionBus(conn *dbus.Conn) *SessionBus {
	return &SessionBus{conn: conn}
}

// Call implements Bus.
func (b *SessionBus) Call(ctx context.Context, dest string, path dbus.ObjectPath, method string, args ...interface{}) ([]interface{}, error) {
	call := b.conn.Object(dest, path).CallWithContext(ctx, method, 0, args...)
	if call.Err != nil {
		return nil, classify(method, call.Err)
	}
	return call.Body, nil
}

// Property implements Bus.
func (b *SessionBus) Property(ctx context.Context, dest string, path dbus.ObjectPath, iface, name string) (interface{}, error) {
	method := iface + "." + name
	body, err := b.Call(ctx, dest, path, propertiesGet, iface, name)
	if err != nil {
		var callErr *CallError
		if errors.As(err, &callErr) {
			callErr.Method = method
		}
		return nil, err
	}
	if len(body) != 1 {
		return nil, malformed(method, "expected 1 value, got %d", len(body))
	}
	v, ok := body[0].(dbus.Variant)
	if !ok {
		return nil, malformed(method, "expected variant, got %T", body[0])
	}
	return v.Value(), nil
}

// Close closes the underlying connection.
func (b *SessionBus) Close() error {
	return b.conn.Close()
}

// classify maps a godbus error onto the package error kinds.
func classify(method string, err error) error {
	name, ok := errorName(err)
	if !ok {
		// Not a D-Bus error reply: the connection itself failed or the
		// context expired.
		return &CallError{Method: method, Kind: ErrUnavailable, Err: err}
	}
	switch name {
	case "org.freedesktop.DBus.Error.UnknownMethod",
		"org.freedesktop.DBus.Error.UnknownInterface",
		"org.freedesktop.DBus.Error.UnknownObject",
		"org.freedesktop.DBus.Error.UnknownProperty",
		"org.freedesktop.DBus.Error.NotSupported":
		return &CallError{Method: method, Kind: ErrUnsupported, Err: err}
	case "org.freedesktop.DBus.Error.InvalidArgs",
		"org.freedesktop.DBus.Error.InvalidSignature":
		return &CallError{Method: method, Kind: ErrMalformedReply, Err: err}
	default:
		// ServiceUnknown, NameHasNoOwner, NoReply, Timeout, Disconnected and
		// anything else the bus daemon reports on behalf of a missing peer.
		return &CallError{Method: method, Kind: ErrUnavailable, Err: err}
	}
}

func errorName(err error) (string, bool) {
	var ptr *dbus.Error
	if errors.As(err, &ptr) && ptr != nil {
		return ptr.Name, true
	}
	var val dbus.Error
	if errors.As(err, &val) {
		return val.Name, true
	}
	return "", false
}

var _ Bus = (*SessionBus)(nil)

