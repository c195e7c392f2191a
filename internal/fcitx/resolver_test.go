package fcitx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripKeyboardPrefix(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Keyboard - English (US)", "English (US)"},
		{"English (US)", "English (US)"},
		{"Pinyin - Keyboard - ", "Pinyin - Keyboard - "},
		{"Keyboard - Keyboard - X", "Keyboard - X"},
		{"Keyboard -", "Keyboard -"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripKeyboardPrefix(tt.input))
		})
	}
}

func TestNewCatalog(t *testing.T) {
	c := NewCatalog([]InputMethod{
		{DisplayName: "Keyboard - English (US)", ID: "us", Loaded: true},
		{DisplayName: "Anthy", ID: "anthy", Loaded: false},
		{DisplayName: "Pinyin", ID: "pinyin", Loaded: true},
		{DisplayName: "Pinyin (again)", ID: "pinyin", Loaded: true},
	})

	require.Equal(t, 2, c.Len())
	assert.Equal(t, []InputMethod{
		{DisplayName: "English (US)", ID: "us", Loaded: true},
		{DisplayName: "Pinyin", ID: "pinyin", Loaded: true},
	}, c.Entries())

	_, ok := c.Lookup("anthy")
	assert.False(t, ok, "unloaded entries are dropped")

	im, ok := c.Lookup("pinyin")
	require.True(t, ok)
	assert.Equal(t, "Pinyin", im.DisplayName, "first occurrence wins")
}

func TestCatalogEntriesIsCopy(t *testing.T) {
	c := NewCatalog([]InputMethod{{DisplayName: "Pinyin", ID: "pinyin", Loaded: true}})
	entries := c.Entries()
	entries[0].DisplayName = "changed"

	im, _ := c.Lookup("pinyin")
	assert.Equal(t, "Pinyin", im.DisplayName)
}

func TestProbePrefersLegacy(t *testing.T) {
	ctx := context.Background()
	legacy := &fakeClient{dialect: DialectLegacy, list: []InputMethod{
		{DisplayName: "Keyboard - English (US)", ID: "us", Loaded: true},
	}}
	controller := &fakeClient{dialect: DialectController}

	r, err := Probe(ctx, nil, legacy, controller)
	require.NoError(t, err)
	assert.Equal(t, StateReady, r.State())
	assert.Equal(t, DialectLegacy, r.Dialect())
	assert.Zero(t, controller.listed, "controller must not be probed once legacy answers")
}

func TestProbeFallsBackOnUnavailable(t *testing.T) {
	ctx := context.Background()
	for _, kind := range []error{ErrUnavailable, ErrUnsupported} {
		t.Run(kind.Error(), func(t *testing.T) {
			legacy := &fakeClient{dialect: DialectLegacy, listErr: &CallError{Method: "IMList", Kind: kind}}
			controller := &fakeClient{dialect: DialectController, list: []InputMethod{
				{DisplayName: "Pinyin", ID: "pinyin", Loaded: true},
			}}

			r, err := Probe(ctx, nil, legacy, controller)
			require.NoError(t, err)
			assert.Equal(t, DialectController, r.Dialect())
			assert.Equal(t, 1, r.Catalog().Len())
		})
	}
}

func TestProbeMalformedIsFatal(t *testing.T) {
	legacy := &fakeClient{dialect: DialectLegacy, listErr: malformed("IMList", "bad")}
	controller := &fakeClient{dialect: DialectController}

	_, err := Probe(context.Background(), nil, legacy, controller)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedReply)
	assert.NotErrorIs(t, err, ErrNoBackend)
	assert.Zero(t, controller.listed)
}

func TestProbeNoBackend(t *testing.T) {
	bus := newFakeBus()
	_, err := Probe(context.Background(), nil, NewLegacyClient(bus, ":0"), NewControllerClient(bus))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoBackend)
	assert.Contains(t, err.Error(), "Fcitx/Fcitx5 DBus interface not found")
}

func TestProbeNoCandidates(t *testing.T) {
	_, err := Probe(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrNoBackend))
}

func TestProbeOverBus(t *testing.T) {
	ctx := context.Background()

	t.Run("fcitx4", func(t *testing.T) {
		bus := fcitx4Bus()
		r, err := Probe(ctx, nil, NewLegacyClient(bus, ":0"), NewControllerClient(bus))
		require.NoError(t, err)
		assert.Equal(t, DialectLegacy, r.Dialect())
		assert.Equal(t, []InputMethod{
			{DisplayName: "English (US)", ID: "fcitx-keyboard-us", Lang: "en", Loaded: true},
			{DisplayName: "Pinyin", ID: "pinyin", Lang: "zh_CN", Loaded: true},
		}, r.Catalog().Entries())

		name, err := r.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, "English (US)", name)
		assert.Zero(t, bus.called(controllerService))
	})

	t.Run("fcitx5", func(t *testing.T) {
		bus := fcitx5Bus()
		r, err := Probe(ctx, nil, NewLegacyClient(bus, ":0"), NewControllerClient(bus))
		require.NoError(t, err)
		assert.Equal(t, DialectController, r.Dialect())
		assert.Equal(t, []InputMethod{
			{DisplayName: "English (US)", ID: "keyboard-us", Lang: "en", Loaded: true},
			{DisplayName: "Pinyin", ID: "pinyin", Lang: "zh_CN", Loaded: true},
		}, r.Catalog().Entries())

		name, err := r.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Pinyin", name)
	})
}

func TestResolverDisplayName(t *testing.T) {
	client := &fakeClient{dialect: DialectController}
	r := NewResolver(client, NewCatalog([]InputMethod{
		{DisplayName: "Keyboard - English (US)", ID: "us", Loaded: true},
		{DisplayName: "Pinyin", ID: "pinyin", Loaded: true},
	}))

	for _, im := range r.Catalog().Entries() {
		name, err := r.DisplayName(im.ID)
		require.NoError(t, err)
		assert.Equal(t, im.DisplayName, name)
	}

	name, err := r.DisplayName("")
	require.NoError(t, err)
	assert.Empty(t, name)

	_, err = r.DisplayName("mozc")
	assert.ErrorIs(t, err, ErrUnknownInputMethod)
}

func TestResolverCurrentPropagatesErrors(t *testing.T) {
	boom := &CallError{Method: "CurrentInputMethod", Kind: ErrUnavailable}
	r := NewResolver(&fakeClient{dialect: DialectLegacy, curErr: boom}, NewCatalog(nil))

	_, err := r.Current(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
