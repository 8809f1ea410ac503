package bindata

// Wrapper is a transparent single-child container (spec §4's "Wrapper"
// kind): it delegates every operation to one nested field, existing
// only to attach offset/onlyif parameters to a single type reference
// without declaring a whole Struct around it. It is registered once as
// a generic "wrapper" Class whose "type" parameter is resolved to the
// inner prototype the same way Array resolves its element type.
type Wrapper struct {
	baseNode
	innerPrototype *SanitizedPrototype
	inner          Node
}

var _ Node = (*Wrapper)(nil)

func (w *Wrapper) Kind() NodeKind { return KindWrapper }

func (w *Wrapper) offsetOfChild(Node) (int64, error) { return 0, nil }

func (w *Wrapper) Callable(name string) (func(Evaluator) (interface{}, error), bool) {
	if w.inner == nil {
		return nil, false
	}
	return w.inner.Callable(name)
}

func (w *Wrapper) ensureInner() error {
	if w.inner != nil {
		return nil
	}
	inner, err := w.innerPrototype.New(w)
	if err != nil {
		return err
	}
	w.inner = inner
	return nil
}

func (w *Wrapper) Read(z *IO) error {
	include, err := evalOnlyIf(w)
	if err != nil {
		return err
	}
	if !include {
		w.Clear()
		return nil
	}
	return driverRead(w, z, func() error {
		if err := w.ensureInner(); err != nil {
			return err
		}
		return w.inner.Read(z)
	})
}

func (w *Wrapper) Write(z *IO) error {
	include, err := evalOnlyIf(w)
	if err != nil {
		return err
	}
	if !include {
		return nil
	}
	return driverWrite(w, z, func() error {
		if err := w.ensureInner(); err != nil {
			return err
		}
		return w.inner.Write(z)
	})
}

func (w *Wrapper) NumBits() (BitSize, error) {
	include, err := evalOnlyIf(w)
	if err != nil {
		return 0, err
	}
	if !include {
		return 0, nil
	}
	if err := w.ensureInner(); err != nil {
		return 0, err
	}
	return w.inner.NumBits()
}

func (w *Wrapper) Snapshot() (interface{}, error) {
	include, err := evalOnlyIf(w)
	if err != nil {
		return nil, err
	}
	if !include {
		return nil, nil
	}
	if err := w.ensureInner(); err != nil {
		return nil, err
	}
	return w.inner.Snapshot()
}

func (w *Wrapper) Assign(value interface{}) error {
	if err := w.ensureInner(); err != nil {
		return err
	}
	return w.inner.Assign(value)
}

func (w *Wrapper) Clear() {
	if w.inner != nil {
		w.inner.Clear()
	}
}

func (w *Wrapper) Cleared() bool {
	if w.inner == nil {
		return true
	}
	return w.inner.Cleared()
}

func (w *Wrapper) Inspect() string {
	if w.inner == nil {
		return "<wrapper: empty>"
	}
	return w.inner.Inspect()
}
