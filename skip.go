package bindata

// Skip is the Node implementation for a fixed number of bytes that are
// consumed or produced without being decoded into a value (spec §4's
// "Skip" kind): padding, reserved regions, and the like. It is
// registered once as a generic "skip" Class (see builtins.go).
type Skip struct {
	baseNode
	n int64
}

var _ Node = (*Skip)(nil)

func (s *Skip) Kind() NodeKind { return KindSkip }

func (s *Skip) offsetOfChild(Node) (int64, error) { return 0, nil }

func (s *Skip) resolvedLength() (int64, error) {
	v, ok, err := evalParam(s, "length", nil)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errWrapf(ErrMissingParameter, "skip requires length")
	}
	return asInt64(v)
}

func (s *Skip) Read(z *IO) error {
	include, err := evalOnlyIf(s)
	if err != nil {
		return err
	}
	if !include {
		s.Clear()
		return nil
	}
	return driverRead(s, z, func() error {
		n, err := s.resolvedLength()
		if err != nil {
			return err
		}
		if n < 0 {
			return errWrapf(ErrValidityError, "skip length must be >= 0")
		}
		_, err = z.ReadBytes(int(n))
		if err != nil {
			return err
		}
		s.n = n
		return nil
	})
}

func (s *Skip) Write(z *IO) error {
	include, err := evalOnlyIf(s)
	if err != nil {
		return err
	}
	if !include {
		return nil
	}
	return driverWrite(s, z, func() error {
		n, err := s.resolvedLength()
		if err != nil {
			return err
		}
		s.n = n
		return z.WriteBytes(make([]byte, n))
	})
}

func (s *Skip) NumBits() (BitSize, error) {
	include, err := evalOnlyIf(s)
	if err != nil {
		return 0, err
	}
	if !include {
		return 0, nil
	}
	n, err := s.resolvedLength()
	if err != nil {
		return 0, err
	}
	return BitSize(n * 8), nil
}

func (s *Skip) Snapshot() (interface{}, error) { return nil, nil }

func (s *Skip) Assign(interface{}) error { return nil }

func (s *Skip) Clear() { s.n = 0 }

func (s *Skip) Cleared() bool { return s.n == 0 }

func (s *Skip) Inspect() string { return "<skip>" }
