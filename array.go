package bindata

// Array is the Node implementation for a homogeneous, ordered child
// sequence (spec §4.6). Unlike Struct, "array" is registered once as a
// single generic Class (see registerArrayClass in builtins.go): its
// element type is resolved per field declaration by the class's
// SanitizeHook, exactly matching spec §4.2 step 3's "used by arrays to
// resolve their element-type specification".
type Array struct {
	baseNode
	elementPrototype *SanitizedPrototype
	children         []Node
}

var _ Node = (*Array)(nil)

func (a *Array) Kind() NodeKind { return KindArray }

// childIndex reports the position of child within this array, used by
// the lazy evaluator's "index" resolver.
func (a *Array) childIndex(child Node) (int, bool) {
	for i, c := range a.children {
		if c == child {
			return i, true
		}
	}
	return 0, false
}

func (a *Array) Callable(name string) (func(Evaluator) (interface{}, error), bool) {
	switch name {
	case "length":
		return func(Evaluator) (interface{}, error) { return len(a.children), nil }, true
	}
	return nil, false
}

func (a *Array) offsetOfChild(child Node) (int64, error) {
	bits, err := sumChildBits(a.children, child)
	if err != nil {
		return 0, err
	}
	return bits.Bytes(), nil
}

// newElement instantiates one array element with this array as its
// parent. Array elements do not get their own wrapper node for "index"
// purposes; instead the index resolver walks up to the nearest ancestor
// whose childIndex reports a position (see arrayIndexer in node.go).
func (a *Array) newElement() (Node, error) {
	child, err := a.elementPrototype.New(a)
	if err != nil {
		return nil, err
	}
	return child, nil
}

func (a *Array) initialLength() (int, bool, error) {
	v, ok, err := evalParam(a, "initial_length", nil)
	if err != nil || !ok {
		return 0, ok, err
	}
	n, err := toInt(v)
	return n, true, err
}

func (a *Array) readUntil() (Value, bool) {
	v, ok := a.params.raw["read_until"]
	return v, ok
}

func (a *Array) Read(z *IO) error {
	include, err := evalOnlyIf(a)
	if err != nil {
		return err
	}
	if !include {
		a.Clear()
		return nil
	}
	return driverRead(a, z, func() error {
		a.children = nil

		if n, ok, err := a.initialLength(); err != nil {
			return err
		} else if ok {
			for i := 0; i < n; i++ {
				child, err := a.newElement()
				if err != nil {
					return err
				}
				if err := child.Read(z); err != nil {
					return errWrapf(err, "element %d", i)
				}
				a.children = append(a.children, child)
			}
			return nil
		}

		untilV, hasUntil := a.readUntil()
		if !hasUntil {
			return errWrapf(ErrMissingParameter, "array requires initial_length or read_until")
		}
		if _, eof := untilV.(readUntilEOFMarker); eof {
			for {
				atEOF, err := z.AtEOF()
				if err != nil {
					return err
				}
				if atEOF {
					return nil
				}
				child, err := a.newElement()
				if err != nil {
					return err
				}
				if err := child.Read(z); err != nil {
					return errWrapf(err, "element %d", len(a.children))
				}
				a.children = append(a.children, child)
			}
		}

		// General read_until predicate: sees index, element (the
		// just-read element's snapshot value), array.
		for {
			child, err := a.newElement()
			if err != nil {
				return err
			}
			if err := child.Read(z); err != nil {
				return errWrapf(err, "element %d", len(a.children))
			}
			a.children = append(a.children, child)

			elemValue, err := child.Snapshot()
			if err != nil {
				return err
			}
			overrides := map[string]interface{}{
				"index":   len(a.children) - 1,
				"element": elemValue,
				"array":   a.children,
			}
			done, err := Evaluate(a, untilV, overrides)
			if err != nil {
				return err
			}
			stop, ok := done.(bool)
			if !ok {
				return errWrapf(ErrValidityError, "read_until must evaluate to a bool, got %T", done)
			}
			if stop {
				return nil
			}
			atEOF, err := z.AtEOF()
			if err != nil {
				return err
			}
			if atEOF {
				return errWrapf(ErrEndOfStream, "read_until never satisfied before end of stream")
			}
		}
	})
}

func (a *Array) Write(z *IO) error {
	include, err := evalOnlyIf(a)
	if err != nil {
		return err
	}
	if !include {
		return nil
	}
	return driverWrite(a, z, func() error {
		for i, c := range a.children {
			if err := c.Write(z); err != nil {
				return errWrapf(err, "element %d", i)
			}
		}
		return nil
	})
}

// NumBits sums element bit sizes via sumChildBits (see struct.go's
// NumBits and node.go's sumChildBits): elements of a bit-packed element
// type chain together into shared bytes exactly like adjacent bit fields
// in a Struct do, since they share the same IO bit buffer.
func (a *Array) NumBits() (BitSize, error) {
	include, err := evalOnlyIf(a)
	if err != nil {
		return 0, err
	}
	if !include {
		return 0, nil
	}
	return sumChildBits(a.children, nil)
}

func (a *Array) Snapshot() (interface{}, error) {
	include, err := evalOnlyIf(a)
	if err != nil {
		return nil, err
	}
	if !include {
		return nil, nil
	}
	out := make([]interface{}, len(a.children))
	for i, c := range a.children {
		v, err := c.Snapshot()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Assign accepts a slice of snapshot-shaped values. Per spec §4.6,
// "indexed assignment with an index beyond current length extends with
// clear elements between" — Assign mirrors that by growing to len(values)
// and creating fresh (clear) elements for any new slots before assigning
// into them.
func (a *Array) Assign(value interface{}) error {
	values, ok := value.([]interface{})
	if !ok {
		return errWrapf(ErrValidityError, "array.Assign: expected []interface{}, got %T", value)
	}
	for len(a.children) < len(values) {
		child, err := a.newElement()
		if err != nil {
			return err
		}
		a.children = append(a.children, child)
	}
	for i, v := range values {
		if err := a.children[i].Assign(v); err != nil {
			return errWrapf(err, "element %d", i)
		}
	}
	return nil
}

// Set assigns a single element by index, growing the array with clear
// elements if index is beyond the current length (spec §4.6).
func (a *Array) Set(index int, value interface{}) error {
	for len(a.children) <= index {
		child, err := a.newElement()
		if err != nil {
			return err
		}
		a.children = append(a.children, child)
	}
	return a.children[index].Assign(value)
}

func (a *Array) Clear() {
	a.children = nil
}

func (a *Array) Cleared() bool { return len(a.children) == 0 }

func (a *Array) Inspect() string {
	out := "["
	for i, c := range a.children {
		if i > 0 {
			out += ", "
		}
		out += c.Inspect()
	}
	return out + "]"
}
