package fcitx

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// Fcitx5 D-Bus constants
const (
	controllerService   = "org.fcitx.Fcitx5"
	controllerPath      = dbus.ObjectPath("/controller")
	controllerInterface = "org.fcitx.Fcitx.Controller1"
)

// ControllerClient speaks the Fcitx5 controller interface. Its input method
// list does not say which methods are enabled, so InputMethods makes two
// more round trips to find the members of the current group.
type ControllerClient struct {
	bus Bus
}

// NewControllerClient returns a client for the Fcitx5 controller.
func NewControllerClient(bus Bus) *ControllerClient {
	return &ControllerClient{bus: bus}
}

// Dialect implements Client.
func (c *ControllerClient) Dialect() Dialect { return DialectController }

func (c *ControllerClient) call(ctx context.Context, name string, args ...interface{}) ([]interface{}, error) {
	return c.bus.Call(ctx, controllerService, controllerPath, controllerInterface+"."+name, args...)
}

// CurrentInputMethod implements Client.
func (c *ControllerClient) CurrentInputMethod(ctx context.Context) (string, error) {
	body, err := c.call(ctx, "CurrentInputMethod")
	if err != nil {
		return "", fmt.Errorf("read current input method: %w", err)
	}
	return decodeStringBody(controllerInterface+".CurrentInputMethod", body)
}

// CurrentGroup returns the name of the active input method group.
func (c *ControllerClient) CurrentGroup(ctx context.Context) (string, error) {
	body, err := c.call(ctx, "CurrentInputMethodGroup")
	if err != nil {
		return "", fmt.Errorf("read current group: %w", err)
	}
	return decodeStringBody(controllerInterface+".CurrentInputMethodGroup", body)
}

// GroupMembers returns the ids of the input methods in group, in group order.
func (c *ControllerClient) GroupMembers(ctx context.Context, group string) ([]string, error) {
	body, err := c.call(ctx, "InputMethodGroupInfo", group)
	if err != nil {
		return nil, fmt.Errorf("read group %q: %w", group, err)
	}
	return decodeGroupInfo(body)
}

// InputMethods implements Client. Loaded is set for members of the group
// active at the time of the call.
func (c *ControllerClient) InputMethods(ctx context.Context) ([]InputMethod, error) {
	group, err := c.CurrentGroup(ctx)
	if err != nil {
		return nil, err
	}
	members, err := c.GroupMembers(ctx, group)
	if err != nil {
		return nil, err
	}
	active := make(map[string]struct{}, len(members))
	for _, id := range members {
		active[id] = struct{}{}
	}

	body, err := c.call(ctx, "AvailableInputMethods")
	if err != nil {
		return nil, fmt.Errorf("read input method list: %w", err)
	}
	list, err := decodeControllerList(body)
	if err != nil {
		return nil, err
	}
	for i := range list {
		_, list[i].Loaded = active[list[i].ID]
	}
	return list, nil
}

var _ Client = (*ControllerClient)(nil)
