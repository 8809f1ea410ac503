package bindata

// This file is the read/write driver of spec §4.9: the sequencing shared
// by every node kind's Read/Write method. It is intentionally a thin,
// strictly-serial sequencer — the single-threaded cooperative model of
// spec §5 — adapted from the job-sequencing shape of dig's
// internal/scheduler (see internal/graph for the same-struct symbol
// cycle check that plays the analogous "validate before you run" role at
// schema-declaration time instead of at resolve time).

// driverRead wraps a kind-specific decode closure with the common Read
// steps of spec §4.9: mark/inherit the origin, check or adjust offset,
// clear the node, then run decode. It returns whatever decode returns.
func driverRead(n Node, io *IO, decode func() error) error {
	restore := io.markOrigin()
	defer restore()

	if err := applyOffsetParams(n, io); err != nil {
		return err
	}
	n.Clear()
	return decode()
}

// driverWrite mirrors driverRead but does not enforce offset parameters
// (spec §4.9: "write mirrors, except offset parameters are not
// enforced"). The outermost call additionally flushes any bit field left
// buffered at the very end of the tree (spec §4.8): a byte-aligned sibling
// flushes automatically, but a schema that *ends* on a bit field has no
// such sibling to trigger it.
func driverWrite(n Node, io *IO, encode func() error) error {
	outermost := !io.haveOrigin
	restore := io.markOrigin()
	defer restore()
	if err := encode(); err != nil {
		return err
	}
	if outermost {
		return io.flushBits()
	}
	return nil
}

// applyOffsetParams implements step 1 of spec §4.9's read sequence:
// check_offset and adjust_offset are mutually exclusive (already enforced
// at sanitize time by the class's AcceptedParameters, but re-checked here
// defensively since this function runs for every node kind); a present
// check_offset must match the current IO position relative to the read's
// origin, and a present adjust_offset seeks there first, failing
// ErrOffsetMismatch if that would require seeking before the origin.
func applyOffsetParams(n Node, io *IO) error {
	params := n.Params()
	if params == nil {
		return nil
	}

	if checkV, ok := params.raw["check_offset"]; ok {
		want, err := Evaluate(n, checkV, nil)
		if err != nil {
			return err
		}
		wantInt, err := asInt64(want)
		if err != nil {
			return err
		}
		got := io.Pos() - io.Origin()
		if got != wantInt {
			return errWrapf(ErrOffsetMismatch, "check_offset: want %d, got %d", wantInt, got)
		}
		return nil
	}

	if adjustV, ok := params.raw["adjust_offset"]; ok {
		want, err := Evaluate(n, adjustV, nil)
		if err != nil {
			return err
		}
		wantInt, err := asInt64(want)
		if err != nil {
			return err
		}
		target := io.Origin() + wantInt
		if target < io.Origin() {
			return errWrapf(ErrOffsetMismatch, "adjust_offset: %d is before the read origin", wantInt)
		}
		return io.Seek(target)
	}

	return nil
}

func asInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case int32:
		return int64(n), nil
	default:
		return 0, errWrapf(ErrValidityError, "expected an integer offset, got %T", v)
	}
}
