package fcitx

// Replies are decoded from the generic values godbus produces. A struct
// arrives as []interface{} with one element per field, an array of structs
// as [][]interface{}.

// tuples normalizes an array-of-structs value.
func tuples(method string, v interface{}) ([][]interface{}, error) {
	switch list := v.(type) {
	case [][]interface{}:
		return list, nil
	case []interface{}:
		out := make([][]interface{}, 0, len(list))
		for i, item := range list {
			t, ok := item.([]interface{})
			if !ok {
				return nil, malformed(method, "entry %d: expected struct, got %T", i, item)
			}
			out = append(out, t)
		}
		return out, nil
	default:
		return nil, malformed(method, "expected array of structs, got %T", v)
	}
}

func stringField(method string, t []interface{}, i int) (string, error) {
	s, ok := t[i].(string)
	if !ok {
		return "", malformed(method, "field %d: expected string, got %T", i, t[i])
	}
	return s, nil
}

func boolField(method string, t []interface{}, i int) (bool, error) {
	b, ok := t[i].(bool)
	if !ok {
		return false, malformed(method, "field %d: expected bool, got %T", i, t[i])
	}
	return b, nil
}

// decodeLegacyEntry decodes an IMList tuple (sssb):
// display name, id, language code, loaded.
func decodeLegacyEntry(method string, t []interface{}) (InputMethod, error) {
	if len(t) != 4 {
		return InputMethod{}, malformed(method, "expected 4 fields, got %d", len(t))
	}
	var (
		im  InputMethod
		err error
	)
	if im.DisplayName, err = stringField(method, t, 0); err != nil {
		return InputMethod{}, err
	}
	if im.ID, err = stringField(method, t, 1); err != nil {
		return InputMethod{}, err
	}
	if im.Lang, err = stringField(method, t, 2); err != nil {
		return InputMethod{}, err
	}
	if im.Loaded, err = boolField(method, t, 3); err != nil {
		return InputMethod{}, err
	}
	return im, nil
}

// decodeLegacyList decodes the IMList property value a(sssb).
func decodeLegacyList(v interface{}) ([]InputMethod, error) {
	const method = legacyInterface + ".IMList"
	list, err := tuples(method, v)
	if err != nil {
		return nil, err
	}
	out := make([]InputMethod, 0, len(list))
	for _, t := range list {
		im, err := decodeLegacyEntry(method, t)
		if err != nil {
			return nil, err
		}
		out = append(out, im)
	}
	return out, nil
}

// decodeControllerEntry decodes an AvailableInputMethods tuple (ssssssb):
// id, display name, native name, icon, label, language code, configurable.
// The configurable flag says nothing about enablement, so Loaded is left
// false for the caller to fill from group membership.
func decodeControllerEntry(method string, t []interface{}) (InputMethod, error) {
	if len(t) != 7 {
		return InputMethod{}, malformed(method, "expected 7 fields, got %d", len(t))
	}
	for i := 0; i < 6; i++ {
		if _, err := stringField(method, t, i); err != nil {
			return InputMethod{}, err
		}
	}
	if _, err := boolField(method, t, 6); err != nil {
		return InputMethod{}, err
	}
	return InputMethod{
		ID:          t[0].(string),
		DisplayName: t[1].(string),
		Lang:        t[5].(string),
	}, nil
}

// decodeControllerList decodes the AvailableInputMethods reply body.
func decodeControllerList(body []interface{}) ([]InputMethod, error) {
	const method = controllerInterface + ".AvailableInputMethods"
	if len(body) != 1 {
		return nil, malformed(method, "expected 1 value, got %d", len(body))
	}
	list, err := tuples(method, body[0])
	if err != nil {
		return nil, err
	}
	out := make([]InputMethod, 0, len(list))
	for _, t := range list {
		im, err := decodeControllerEntry(method, t)
		if err != nil {
			return nil, err
		}
		out = append(out, im)
	}
	return out, nil
}

// decodeGroupInfo decodes the InputMethodGroupInfo reply body (s, a(ss)):
// the default layout of the group and its (id, layout) members. Only the
// member ids are returned.
func decodeGroupInfo(body []interface{}) ([]string, error) {
	const method = controllerInterface + ".InputMethodGroupInfo"
	if len(body) != 2 {
		return nil, malformed(method, "expected 2 values, got %d", len(body))
	}
	if _, ok := body[0].(string); !ok {
		return nil, malformed(method, "layout: expected string, got %T", body[0])
	}
	list, err := tuples(method, body[1])
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(list))
	for _, t := range list {
		if len(t) != 2 {
			return nil, malformed(method, "expected 2 fields, got %d", len(t))
		}
		id, err := stringField(method, t, 0)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// decodeString decodes a reply or property holding a single string.
func decodeString(method string, v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", malformed(method, "expected string, got %T", v)
	}
	return s, nil
}

// decodeStringBody decodes a reply body holding a single string.
func decodeStringBody(method string, body []interface{}) (string, error) {
	if len(body) != 1 {
		return "", malformed(method, "expected 1 value, got %d", len(body))
	}
	return decodeString(method, body[0])
}
