package fcitx

import (
	"context"
	"strings"

	"github.com/godbus/dbus/v5"
)

type fakeReply struct {
	body  []interface{}
	value interface{}
	err   error
}

// fakeBus answers from canned replies keyed by "dest method". Anything not
// registered behaves like a bus name without an owner.
type fakeBus struct {
	replies map[string]fakeReply
	calls   []string
}

func newFakeBus() *fakeBus {
	return &fakeBus{replies: make(map[string]fakeReply)}
}

func (b *fakeBus) on(dest, method string, r fakeReply) *fakeBus {
	b.replies[dest+" "+method] = r
	return b
}

func (b *fakeBus) Call(ctx context.Context, dest string, path dbus.ObjectPath, method string, args ...interface{}) ([]interface{}, error) {
	key := dest + " " + method
	if len(args) > 0 {
		if s, ok := args[0].(string); ok {
			key += "(" + s + ")"
		}
	}
	b.calls = append(b.calls, key)
	r, ok := b.replies[key]
	if !ok {
		return nil, classify(method, dbus.Error{Name: "org.freedesktop.DBus.Error.ServiceUnknown"})
	}
	return r.body, r.err
}

func (b *fakeBus) Property(ctx context.Context, dest string, path dbus.ObjectPath, iface, name string) (interface{}, error) {
	key := dest + " " + iface + "." + name
	b.calls = append(b.calls, key)
	r, ok := b.replies[key]
	if !ok {
		return nil, classify(iface+"."+name, dbus.Error{Name: "org.freedesktop.DBus.Error.ServiceUnknown"})
	}
	return r.value, r.err
}

func (b *fakeBus) called(prefix string) int {
	n := 0
	for _, c := range b.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// fakeClient is a Client with fixed answers.
type fakeClient struct {
	dialect Dialect
	current []string
	list    []InputMethod
	listErr error
	curErr  error
	listed  int
}

func (c *fakeClient) Dialect() Dialect { return c.dialect }

func (c *fakeClient) CurrentInputMethod(ctx context.Context) (string, error) {
	if c.curErr != nil {
		return "", c.curErr
	}
	if len(c.current) == 0 {
		return "", nil
	}
	id := c.current[0]
	if len(c.current) > 1 {
		c.current = c.current[1:]
	}
	return id, nil
}

func (c *fakeClient) InputMethods(ctx context.Context) ([]InputMethod, error) {
	c.listed++
	return c.list, c.listErr
}

func legacyIMList() [][]interface{} {
	return [][]interface{}{
		{"Keyboard - English (US)", "fcitx-keyboard-us", "en", true},
		{"Pinyin", "pinyin", "zh_CN", true},
		{"Anthy", "anthy", "ja", false},
	}
}

func controllerAvailable() []interface{} {
	return []interface{}{[][]interface{}{
		{"keyboard-us", "Keyboard - English (US)", "English (US)", "input-keyboard", "us", "en", false},
		{"pinyin", "Pinyin", "拼音", "fcitx-pinyin", "拼", "zh_CN", true},
		{"mozc", "Mozc", "Mozc", "fcitx-mozc", "あ", "ja", true},
	}}
}

func controllerGroupInfo() []interface{} {
	return []interface{}{"us", [][]interface{}{
		{"keyboard-us", ""},
		{"pinyin", ""},
	}}
}

// fcitx5Bus is a bus with a running Fcitx5 and no Fcitx4.
func fcitx5Bus() *fakeBus {
	m := controllerInterface + "."
	return newFakeBus().
		on(controllerService, m+"CurrentInputMethodGroup", fakeReply{body: []interface{}{"Default"}}).
		on(controllerService, m+"InputMethodGroupInfo(Default)", fakeReply{body: controllerGroupInfo()}).
		on(controllerService, m+"AvailableInputMethods", fakeReply{body: controllerAvailable()}).
		on(controllerService, m+"CurrentInputMethod", fakeReply{body: []interface{}{"pinyin"}})
}

// fcitx4Bus is a bus with Fcitx4 on display :0 and no Fcitx5.
func fcitx4Bus() *fakeBus {
	dest := LegacyServiceName(":0")
	return newFakeBus().
		on(dest, legacyInterface+".IMList", fakeReply{value: legacyIMList()}).
		on(dest, legacyInterface+".CurrentIM", fakeReply{value: "fcitx-keyboard-us"})
}
