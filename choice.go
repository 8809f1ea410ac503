package bindata

// Choice is the Node implementation for a tagged union: exactly one of
// several declared variant types is active at a time, selected by
// evaluating the `selection` parameter against the `choices` key->type
// map (spec §4.7). Like Array, "choice" is registered once as a single
// generic Class (registerChoiceClass in builtins.go); its variant
// prototypes are resolved per field declaration by the class's
// SanitizeHook.
type Choice struct {
	baseNode
	variants     map[interface{}]*SanitizedPrototype
	copyOnChange bool

	active    Node
	activeKey interface{}
	haveKey   bool
}

var _ Node = (*Choice)(nil)

func (c *Choice) Kind() NodeKind { return KindChoice }

func (c *Choice) Callable(name string) (func(Evaluator) (interface{}, error), bool) {
	if name == "selection" {
		return func(Evaluator) (interface{}, error) { return c.activeKey, nil }, true
	}
	return nil, false
}

func (c *Choice) offsetOfChild(child Node) (int64, error) { return 0, nil }

// ensureSelected resolves the `selection` parameter and, if it names a
// variant different from the one currently active, instantiates that
// variant. When copy_on_change is set, the previously active variant's
// snapshot is assigned into the new one on a best-effort basis: a
// snapshot shape incompatible with the new variant is silently dropped
// rather than failing the selection itself, since spec §4.7 only
// requires the migration "where the shapes agree".
func (c *Choice) ensureSelected() error {
	keyV, ok, err := evalParam(c, "selection", nil)
	if err != nil {
		return err
	}
	if !ok {
		return errWrapf(ErrMissingParameter, "choice requires selection")
	}
	if c.active != nil && c.haveKey && c.activeKey == keyV {
		return nil
	}
	proto, ok := c.variants[keyV]
	if !ok {
		return errWrapf(ErrUnknownChoice, "selection %v", keyV)
	}

	var prevSnapshot interface{}
	havePrev := false
	if c.copyOnChange && c.active != nil {
		if snap, err := c.active.Snapshot(); err == nil {
			prevSnapshot, havePrev = snap, true
		}
	}

	next, err := proto.New(c)
	if err != nil {
		return err
	}
	if havePrev {
		_ = next.Assign(prevSnapshot)
	}
	c.active = next
	c.activeKey = keyV
	c.haveKey = true
	return nil
}

func (c *Choice) Read(z *IO) error {
	include, err := evalOnlyIf(c)
	if err != nil {
		return err
	}
	if !include {
		c.Clear()
		return nil
	}
	return driverRead(c, z, func() error {
		if err := c.ensureSelected(); err != nil {
			return err
		}
		return c.active.Read(z)
	})
}

func (c *Choice) Write(z *IO) error {
	include, err := evalOnlyIf(c)
	if err != nil {
		return err
	}
	if !include {
		return nil
	}
	return driverWrite(c, z, func() error {
		if err := c.ensureSelected(); err != nil {
			return err
		}
		return c.active.Write(z)
	})
}

func (c *Choice) NumBits() (BitSize, error) {
	include, err := evalOnlyIf(c)
	if err != nil {
		return 0, err
	}
	if !include {
		return 0, nil
	}
	if err := c.ensureSelected(); err != nil {
		return 0, err
	}
	return c.active.NumBits()
}

func (c *Choice) Snapshot() (interface{}, error) {
	include, err := evalOnlyIf(c)
	if err != nil {
		return nil, err
	}
	if !include {
		return nil, nil
	}
	if err := c.ensureSelected(); err != nil {
		return nil, err
	}
	return c.active.Snapshot()
}

func (c *Choice) Assign(value interface{}) error {
	if err := c.ensureSelected(); err != nil {
		return err
	}
	return c.active.Assign(value)
}

func (c *Choice) Clear() {
	if c.active != nil {
		c.active.Clear()
	}
}

func (c *Choice) Cleared() bool {
	if c.active == nil {
		return true
	}
	return c.active.Cleared()
}

func (c *Choice) Inspect() string {
	if c.active == nil {
		return "<choice: unselected>"
	}
	return c.active.Inspect()
}
