package fcitx

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLegacyList(t *testing.T) {
	list, err := decodeLegacyList(legacyIMList())
	require.NoError(t, err)
	assert.Equal(t, []InputMethod{
		{DisplayName: "Keyboard - English (US)", ID: "fcitx-keyboard-us", Lang: "en", Loaded: true},
		{DisplayName: "Pinyin", ID: "pinyin", Lang: "zh_CN", Loaded: true},
		{DisplayName: "Anthy", ID: "anthy", Lang: "ja", Loaded: false},
	}, list)
}

func TestDecodeLegacyListInterfaceSlice(t *testing.T) {
	v := []interface{}{
		[]interface{}{"Pinyin", "pinyin", "zh_CN", true},
	}
	list, err := decodeLegacyList(v)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "pinyin", list[0].ID)
	assert.Equal(t, "Pinyin", list[0].DisplayName)
}

func TestDecodeControllerListReordersFields(t *testing.T) {
	list, err := decodeControllerList(controllerAvailable())
	require.NoError(t, err)
	require.Len(t, list, 3)

	// The id comes first on the wire, the display name second.
	assert.Equal(t, InputMethod{DisplayName: "Keyboard - English (US)", ID: "keyboard-us", Lang: "en"}, list[0])
	assert.Equal(t, InputMethod{DisplayName: "Pinyin", ID: "pinyin", Lang: "zh_CN"}, list[1])
	// The configurable flag must not leak into Loaded.
	assert.False(t, list[2].Loaded)
}

func TestDecodeGroupInfo(t *testing.T) {
	ids, err := decodeGroupInfo(controllerGroupInfo())
	require.NoError(t, err)
	assert.Equal(t, []string{"keyboard-us", "pinyin"}, ids)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name   string
		decode func() error
	}{
		{"legacy not an array", func() error {
			_, err := decodeLegacyList("pinyin")
			return err
		}},
		{"legacy short tuple", func() error {
			_, err := decodeLegacyList([][]interface{}{{"Pinyin", "pinyin", "zh_CN"}})
			return err
		}},
		{"legacy loaded not bool", func() error {
			_, err := decodeLegacyList([][]interface{}{{"Pinyin", "pinyin", "zh_CN", "yes"}})
			return err
		}},
		{"legacy entry not a struct", func() error {
			_, err := decodeLegacyList([]interface{}{"Pinyin"})
			return err
		}},
		{"controller legacy-shaped tuple", func() error {
			_, err := decodeControllerList([]interface{}{legacyIMList()})
			return err
		}},
		{"controller empty body", func() error {
			_, err := decodeControllerList(nil)
			return err
		}},
		{"controller id not string", func() error {
			_, err := decodeControllerList([]interface{}{[][]interface{}{{1, "a", "b", "c", "d", "e", true}}})
			return err
		}},
		{"group info missing members", func() error {
			_, err := decodeGroupInfo([]interface{}{"us"})
			return err
		}},
		{"group info member arity", func() error {
			_, err := decodeGroupInfo([]interface{}{"us", [][]interface{}{{"pinyin"}}})
			return err
		}},
		{"string body", func() error {
			_, err := decodeStringBody("m", []interface{}{uint32(1)})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedReply)
			assert.False(t, fallbackAllowed(err))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"service unknown", dbus.Error{Name: "org.freedesktop.DBus.Error.ServiceUnknown"}, ErrUnavailable},
		{"no owner", &dbus.Error{Name: "org.freedesktop.DBus.Error.NameHasNoOwner"}, ErrUnavailable},
		{"no reply", dbus.Error{Name: "org.freedesktop.DBus.Error.NoReply"}, ErrUnavailable},
		{"unknown method", &dbus.Error{Name: "org.freedesktop.DBus.Error.UnknownMethod"}, ErrUnsupported},
		{"unknown property", dbus.Error{Name: "org.freedesktop.DBus.Error.UnknownProperty"}, ErrUnsupported},
		{"invalid args", dbus.Error{Name: "org.freedesktop.DBus.Error.InvalidArgs"}, ErrMalformedReply},
		{"connection closed", errors.New("dbus: connection closed by user"), ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify("org.example.Method", tt.err)
			assert.ErrorIs(t, err, tt.kind)

			var callErr *CallError
			require.ErrorAs(t, err, &callErr)
			assert.Equal(t, "org.example.Method", callErr.Method)
			assert.Equal(t, tt.err, callErr.Err)
		})
	}
}
