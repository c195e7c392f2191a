package fcitx

// Catalog maps input method ids to display names for one dialect. It is
// built once and never modified.
type Catalog struct {
	entries []InputMethod
	index   map[string]int
}

// NewCatalog keeps the loaded entries of list in their original order,
// drops repeated ids (the first one wins) and strips KeyboardPrefix from the
// display names.
func NewCatalog(list []InputMethod) *Catalog {
	c := &Catalog{
		entries: make([]InputMethod, 0, len(list)),
		index:   make(map[string]int, len(list)),
	}
	for _, im := range list {
		if !im.Loaded {
			continue
		}
		if _, dup := c.index[im.ID]; dup {
			continue
		}
		im.DisplayName = StripKeyboardPrefix(im.DisplayName)
		c.index[im.ID] = len(c.entries)
		c.entries = append(c.entries, im)
	}
	return c
}

// Lookup returns the entry with the given id.
func (c *Catalog) Lookup(id string) (InputMethod, bool) {
	i, ok := c.index[id]
	if !ok {
		return InputMethod{}, false
	}
	return c.entries[i], true
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Entries returns a copy of the entries in catalog order.
func (c *Catalog) Entries() []InputMethod {
	out := make([]InputMethod, len(c.entries))
	copy(out, c.entries)
	return out
}
