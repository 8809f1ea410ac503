package bindata

// Rest is the Node implementation that consumes every remaining byte of
// the stream as an opaque blob (spec §4's "Rest" kind): the trailer
// field a schema declares last when it does not know or care how long
// the remainder is. It is registered once as a generic "rest" Class.
type Rest struct {
	baseNode
	data []byte
}

var _ Node = (*Rest)(nil)

func (r *Rest) Kind() NodeKind { return KindRest }

func (r *Rest) offsetOfChild(Node) (int64, error) { return 0, nil }

func (r *Rest) Read(z *IO) error {
	include, err := evalOnlyIf(r)
	if err != nil {
		return err
	}
	if !include {
		r.Clear()
		return nil
	}
	return driverRead(r, z, func() error {
		data, err := z.ReadAll()
		if err != nil {
			return err
		}
		r.data = data
		return nil
	})
}

func (r *Rest) Write(z *IO) error {
	include, err := evalOnlyIf(r)
	if err != nil {
		return err
	}
	if !include {
		return nil
	}
	return driverWrite(r, z, func() error {
		return z.WriteBytes(r.data)
	})
}

func (r *Rest) NumBits() (BitSize, error) {
	include, err := evalOnlyIf(r)
	if err != nil {
		return 0, err
	}
	if !include {
		return 0, nil
	}
	return BitSize(len(r.data) * 8), nil
}

func (r *Rest) Snapshot() (interface{}, error) {
	include, err := evalOnlyIf(r)
	if err != nil {
		return nil, err
	}
	if !include {
		return nil, nil
	}
	out := make([]byte, len(r.data))
	copy(out, r.data)
	return out, nil
}

func (r *Rest) Assign(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errWrapf(ErrValidityError, "rest.Assign: expected []byte, got %T", value)
	}
	r.data = b
	return nil
}

func (r *Rest) Clear() { r.data = nil }

func (r *Rest) Cleared() bool { return len(r.data) == 0 }

func (r *Rest) Inspect() string {
	return fmtSprint(r.data)
}
