package bindata

import (
	"io"

	"github.com/justfalter/bindata/codecs"
)

// commonPrimitiveParams declares the parameter surface every primitive
// shares (spec §4.4/§6): initial_value, value, check_value, onlyif,
// check_offset, adjust_offset, with check_offset/adjust_offset mutually
// exclusive.
func commonPrimitiveParams() *AcceptedParameters {
	return NewAcceptedParameters().
		Optional("initial_value", "value", "check_value", "onlyif", "check_offset", "adjust_offset").
		MutuallyExclusive("check_offset", "adjust_offset")
}

// BasePrimitive is the leaf Node kind: it owns one scalar value and wraps
// a codecs.Codec or codecs.BitCodec contract (spec §4.4). Concrete
// primitives (byte integers, bit integers, floats, fixed/zero-terminated
// strings) are simply different (codec, AcceptedParameters, length
// resolution) combinations registered through newPrimitiveClass /
// newBitPrimitiveClass in builtins.go.
type BasePrimitive struct {
	baseNode

	codec    codecs.Codec
	bitCodec codecs.BitCodec
	endian   Endian

	// dynamicString marks a fixed-width string primitive whose pad_char/
	// trim_padding are per-field parameters rather than baked into the
	// codec at registration time; currentCodec rebuilds the codec from
	// those resolved parameters on every use.
	dynamicString bool

	value   interface{}
	cleared bool
}

var _ Node = (*BasePrimitive)(nil)

func (p *BasePrimitive) Kind() NodeKind { return KindPrimitive }

// currentCodec returns the codec to use for this call, rebuilding a
// fixed-string codec from its (possibly per-instance) pad_char/
// trim_padding parameters when dynamicString is set.
func (p *BasePrimitive) currentCodec() (codecs.Codec, error) {
	if !p.dynamicString {
		return p.codec, nil
	}
	padChar := byte(' ')
	if v, ok, err := evalParam(p, "pad_char", nil); err != nil {
		return nil, err
	} else if ok {
		switch pc := v.(type) {
		case byte:
			padChar = pc
		case int:
			padChar = byte(pc)
		case string:
			if len(pc) > 0 {
				padChar = pc[0]
			}
		}
	}
	trim := true
	if v, ok, err := evalParam(p, "trim_padding", nil); err != nil {
		return nil, err
	} else if ok {
		if b, ok := v.(bool); ok {
			trim = b
		}
	}
	return codecs.NewFixedString(padChar, trim), nil
}

// resolvedLength evaluates this primitive's length-ish parameter, used by
// Read, Write and NumBits alike. It consults read_length first, then
// length, then max_length (fixed strings and zero-terminated strings
// both funnel through it) and returns the first one present; read_length
// and length are not a declared mutually-exclusive pair, and read_length
// is not restricted to reads.
func (p *BasePrimitive) resolvedLength() (int, error) {
	if v, ok, err := evalParam(p, "read_length", nil); err != nil {
		return 0, err
	} else if ok {
		return toInt(v)
	}
	if v, ok, err := evalParam(p, "length", nil); err != nil {
		return 0, err
	} else if ok {
		return toInt(v)
	}
	if v, ok, err := evalParam(p, "max_length", nil); err != nil {
		return 0, err
	} else if ok {
		n, err := toInt(v)
		if err != nil {
			return 0, err
		}
		if n < 1 {
			return 0, errWrapf(ErrValidityError, "max_length must be >= 1")
		}
		return n, nil
	}
	return 0, nil
}

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	default:
		return 0, errWrapf(ErrValidityError, "expected an integer, got %T", v)
	}
}

// boundValue resolves the `value` parameter if present, returning
// (value, true, nil) when bound.
func (p *BasePrimitive) boundValue() (interface{}, bool, error) {
	return evalParam(p, "value", nil)
}

func (p *BasePrimitive) initialValue() (interface{}, error) {
	if v, ok, err := evalParam(p, "initial_value", nil); err != nil {
		return nil, err
	} else if ok {
		return v, nil
	}
	if p.bitCodec != nil {
		return p.bitCodec.Default(), nil
	}
	length, err := p.resolvedLength()
	if err != nil {
		return nil, err
	}
	codec, err := p.currentCodec()
	if err != nil {
		return nil, err
	}
	return codec.Default(length), nil
}

// Read implements spec §4.9/§4.4: skip entirely if onlyif is false;
// otherwise decode via the codec, then overwrite with the bound `value`
// if present (open question #1 resolved in SPEC_FULL.md §9: assign may
// still mutate the stored value, but a read always recomputes and
// overwrites it), then validate check_value.
func (p *BasePrimitive) Read(z *IO) error {
	include, err := evalOnlyIf(p)
	if err != nil {
		return err
	}
	if !include {
		p.Clear()
		return nil
	}

	return driverRead(p, z, func() error {
		if p.bitCodec != nil {
			bits, err := z.ReadBits(p.bitCodec.Width(), p.endian)
			if err != nil {
				return err
			}
			p.value = p.bitCodec.Decode(bits)
		} else {
			length, err := p.resolvedLength()
			if err != nil {
				return err
			}
			codec, err := p.currentCodec()
			if err != nil {
				return err
			}
			v, _, err := codec.Decode(&ioByteReader{z: z}, length)
			if err != nil {
				return errWrapf(ErrEndOfStream, "%v", err)
			}
			p.value = v
		}
		p.cleared = false

		if bound, ok, err := p.boundValue(); err != nil {
			return err
		} else if ok {
			p.value = bound
		}

		if checkV, ok, err := evalParam(p, "check_value", nil); err != nil {
			return err
		} else if ok {
			if !valuesEqual(p.value, checkV) {
				return errWrapf(ErrValidityError, "check_value: want %v, got %v", checkV, p.value)
			}
		}
		return nil
	})
}

// Write implements spec §4.9: skip entirely if onlyif is false;
// otherwise a bound `value` always takes precedence over whatever was
// assigned.
func (p *BasePrimitive) Write(z *IO) error {
	include, err := evalOnlyIf(p)
	if err != nil {
		return err
	}
	if !include {
		return nil
	}

	return driverWrite(p, z, func() error {
		v, err := p.snapshotValue()
		if err != nil {
			return err
		}
		if p.bitCodec != nil {
			return z.WriteBits(p.bitCodec.Encode(v), p.bitCodec.Width(), p.endian)
		}
		length, err := p.resolvedLength()
		if err != nil {
			return err
		}
		codec, err := p.currentCodec()
		if err != nil {
			return err
		}
		buf, err := codec.Encode(v, length)
		if err != nil {
			return err
		}
		return z.WriteBytes(buf)
	})
}

// snapshotValue is the value Write/Snapshot/NumBits use: the bound
// `value` if present, else the current (possibly clear) stored value.
func (p *BasePrimitive) snapshotValue() (interface{}, error) {
	if bound, ok, err := p.boundValue(); err != nil {
		return nil, err
	} else if ok {
		return bound, nil
	}
	if p.cleared {
		return p.initialValue()
	}
	return p.value, nil
}

func (p *BasePrimitive) Snapshot() (interface{}, error) {
	include, err := evalOnlyIf(p)
	if err != nil {
		return nil, err
	}
	if !include {
		return nil, nil
	}
	return p.snapshotValue()
}

func (p *BasePrimitive) Assign(value interface{}) error {
	p.value = value
	p.cleared = false
	return nil
}

func (p *BasePrimitive) Clear() {
	p.value = nil
	p.cleared = true
}

func (p *BasePrimitive) Cleared() bool { return p.cleared }

func (p *BasePrimitive) NumBits() (BitSize, error) {
	include, err := evalOnlyIf(p)
	if err != nil {
		return 0, err
	}
	if !include {
		return 0, nil
	}
	if p.bitCodec != nil {
		return BitSize(p.bitCodec.Width()), nil
	}
	v, err := p.snapshotValue()
	if err != nil {
		return 0, err
	}
	length, err := p.resolvedLength()
	if err != nil {
		return 0, err
	}
	codec, err := p.currentCodec()
	if err != nil {
		return 0, err
	}
	buf, err := codec.Encode(v, length)
	if err != nil {
		return 0, err
	}
	return BitSize(len(buf) * 8), nil
}

func (p *BasePrimitive) Inspect() string {
	v, err := p.Snapshot()
	if err != nil {
		return "<primitive: " + err.Error() + ">"
	}
	return toInspectString(v)
}

func toInspectString(v interface{}) string {
	if v == nil {
		return "nil"
	}
	switch t := v.(type) {
	case string:
		return "\"" + t + "\""
	default:
		return fmtSprint(t)
	}
}

func valuesEqual(a, b interface{}) bool {
	return fmtSprint(a) == fmtSprint(b)
}

// ioByteReader adapts bindata's IO into the minimal io.Reader the codecs
// package needs, one byte-aligned read at a time, so codec.Decode can be
// written in terms of plain io.Reader semantics without depending on
// bindata.
type ioByteReader struct{ z *IO }

func (r *ioByteReader) Read(p []byte) (int, error) {
	buf, err := r.z.ReadBytes(len(p))
	if err != nil {
		return 0, toStdIOErr(err)
	}
	copy(p, buf)
	return len(buf), nil
}

// toStdIOErr maps any error from bindata's IO (ErrEndOfStream) to
// io.ErrUnexpectedEOF so codecs.Codec.Decode's io.ReadFull-based
// implementations behave the way the standard library expects; the
// caller (BasePrimitive.Read) re-wraps whatever codecs returns into
// ErrEndOfStream again.
func toStdIOErr(err error) error {
	return io.ErrUnexpectedEOF
}
