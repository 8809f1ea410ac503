// Package codecs implements the pluggable wire-codec leaves spec.md treats
// as external collaborators to the bindata engine: concrete encode/decode/
// default logic for byte integers, bit integers, floats, fixed strings, and
// zero-terminated strings. None of this package knows about the field
// tree, parameter sanitization, or lazy evaluation — it only ever sees
// resolved scalar values and a byte reader/writer, the same separation of
// concerns spec §1 draws between "the hard core" and "concrete wire
// codecs ... pluggable leaves".
package codecs

import (
	"encoding/binary"
	"io"
	"math"
)

// ByteOrder selects how a codec's multi-byte values are laid out on the
// wire, mirroring the Endian type in the root package without importing
// it (codecs must not depend on bindata).
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) binary() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Codec is the three-method contract every byte-aligned primitive leaf
// implements (spec §4.4). length is a resolved, non-lazy constraint some
// codecs need (a fixed string's width, a zero-terminated string's
// max_length); codecs that have a fixed wire width (integers, floats)
// ignore it.
type Codec interface {
	// Encode renders value as wire bytes.
	Encode(value interface{}, length int) ([]byte, error)
	// Decode reads one value from r, returning it and the number of bytes
	// consumed. A short read returns io.ErrUnexpectedEOF or io.EOF; the
	// caller (BasePrimitive) is responsible for turning that into
	// ErrEndOfStream.
	Decode(r io.Reader, length int) (value interface{}, consumed int, err error)
	// Default returns the zero value used for the clear state.
	Default(length int) interface{}
}

// BitCodec is the sub-byte analogue of Codec: it never touches a byte
// stream directly, since a bit field typically shares bytes with its
// neighbors. BasePrimitive pulls/pushes the raw bits via the IO wrapper's
// bit-packed buffer (see io.go) and only asks the codec to interpret them.
type BitCodec interface {
	// Width is the field's width in bits (1..64).
	Width() uint8
	// Encode converts value into its raw bit pattern.
	Encode(value interface{}) uint64
	// Decode converts a raw bit pattern into the field's value.
	Decode(bits uint64) interface{}
	// Default returns the zero value used for the clear state.
	Default() interface{}
}

func readExact(r io.Reader, n int) ([]byte, int, error) {
	buf := make([]byte, n)
	read, err := io.ReadFull(r, buf)
	return buf, read, err
}

// --- unsigned/signed byte integers ---------------------------------------

type uintCodec struct {
	width int // bytes: 1, 2, 4, 8
	order ByteOrder
}

// NewUint builds an unsigned integer codec of the given byte width (1, 2,
// 4, or 8) and byte order.
func NewUint(widthBytes int, order ByteOrder) Codec {
	return uintCodec{width: widthBytes, order: order}
}

func (c uintCodec) Default(int) interface{} { return uint64(0) }

func (c uintCodec) Encode(value interface{}, int) ([]byte, error) {
	v, err := toUint64(value)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, c.width)
	switch c.width {
	case 1:
		buf[0] = byte(v)
	case 2:
		c.order.binary().PutUint16(buf, uint16(v))
	case 4:
		c.order.binary().PutUint32(buf, uint32(v))
	case 8:
		c.order.binary().PutUint64(buf, v)
	}
	return buf, nil
}

func (c uintCodec) Decode(r io.Reader, int) (interface{}, int, error) {
	buf, n, err := readExact(r, c.width)
	if err != nil {
		return nil, n, err
	}
	switch c.width {
	case 1:
		return uint64(buf[0]), n, nil
	case 2:
		return uint64(c.order.binary().Uint16(buf)), n, nil
	case 4:
		return uint64(c.order.binary().Uint32(buf)), n, nil
	case 8:
		return c.order.binary().Uint64(buf), n, nil
	}
	return nil, n, nil
}

type intCodec struct {
	width int
	order ByteOrder
}

// NewInt builds a signed integer codec of the given byte width.
func NewInt(widthBytes int, order ByteOrder) Codec {
	return intCodec{width: widthBytes, order: order}
}

func (c intCodec) Default(int) interface{} { return int64(0) }

func (c intCodec) Encode(value interface{}, int) ([]byte, error) {
	v, err := toInt64(value)
	if err != nil {
		return nil, err
	}
	return uintCodec{width: c.width, order: c.order}.Encode(uint64(v), 0)
}

func (c intCodec) Decode(r io.Reader, int) (interface{}, int, error) {
	raw, n, err := uintCodec{width: c.width, order: c.order}.Decode(r, 0)
	if err != nil {
		return nil, n, err
	}
	u := raw.(uint64)
	switch c.width {
	case 1:
		return int64(int8(u)), n, nil
	case 2:
		return int64(int16(u)), n, nil
	case 4:
		return int64(int32(u)), n, nil
	case 8:
		return int64(u), n, nil
	}
	return nil, n, nil
}

// --- floats ----------------------------------------------------------------

type float32Codec struct{ order ByteOrder }

// NewFloat32 builds an IEEE-754 single precision codec.
func NewFloat32(order ByteOrder) Codec { return float32Codec{order: order} }

func (c float32Codec) Default(int) interface{} { return float32(0) }

func (c float32Codec) Encode(value interface{}, int) ([]byte, error) {
	f, err := toFloat64(value)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 4)
	c.order.binary().PutUint32(buf, math.Float32bits(float32(f)))
	return buf, nil
}

func (c float32Codec) Decode(r io.Reader, int) (interface{}, int, error) {
	buf, n, err := readExact(r, 4)
	if err != nil {
		return nil, n, err
	}
	return math.Float32frombits(c.order.binary().Uint32(buf)), n, nil
}

type float64Codec struct{ order ByteOrder }

// NewFloat64 builds an IEEE-754 double precision codec.
func NewFloat64(order ByteOrder) Codec { return float64Codec{order: order} }

func (c float64Codec) Default(int) interface{} { return float64(0) }

func (c float64Codec) Encode(value interface{}, int) ([]byte, error) {
	f, err := toFloat64(value)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 8)
	c.order.binary().PutUint64(buf, math.Float64bits(f))
	return buf, nil
}

func (c float64Codec) Decode(r io.Reader, int) (interface{}, int, error) {
	buf, n, err := readExact(r, 8)
	if err != nil {
		return nil, n, err
	}
	return math.Float64frombits(c.order.binary().Uint64(buf)), n, nil
}

// --- fixed-width strings -----------------------------------------------

type fixedStringCodec struct {
	padChar     byte
	trimPadding bool
}

// NewFixedString builds a codec for a fixed-width byte string, right-padded
// with padChar on encode; trimPadding controls whether Decode strips
// trailing padChar bytes from the decoded value.
func NewFixedString(padChar byte, trimPadding bool) Codec {
	return fixedStringCodec{padChar: padChar, trimPadding: trimPadding}
}

func (c fixedStringCodec) Default(length int) interface{} { return "" }

func (c fixedStringCodec) Encode(value interface{}, length int) ([]byte, error) {
	s, _ := value.(string)
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = c.padChar
	}
	copy(buf, s)
	if len(s) > length {
		buf = []byte(s[:length])
	}
	return buf, nil
}

func (c fixedStringCodec) Decode(r io.Reader, length int) (interface{}, int, error) {
	buf, n, err := readExact(r, length)
	if err != nil {
		return nil, n, err
	}
	if c.trimPadding {
		end := len(buf)
		for end > 0 && buf[end-1] == c.padChar {
			end--
		}
		buf = buf[:end]
	}
	return string(buf), n, nil
}

// --- zero-terminated strings ---------------------------------------------

type zeroTermStringCodec struct{}

// NewZeroTermString builds a codec for a NUL-terminated byte string. The
// decoded value excludes the terminator; the encoded form always ends
// with exactly one zero byte. length, when > 0, is the caller-resolved
// max_length (spec §6): the total including the terminator, forcing
// truncation to at most length-1 content bytes followed by the zero.
func NewZeroTermString() Codec { return zeroTermStringCodec{} }

func (c zeroTermStringCodec) Default(int) interface{} { return "" }

func (c zeroTermStringCodec) Encode(value interface{}, length int) ([]byte, error) {
	s, _ := value.(string)
	content := []byte(s)
	if length > 0 && len(content) > length-1 {
		content = content[:length-1]
	}
	return append(content, 0), nil
}

func (c zeroTermStringCodec) Decode(r io.Reader, length int) (interface{}, int, error) {
	var out []byte
	buf := make([]byte, 1)
	consumed := 0
	for {
		if length > 0 && consumed >= length {
			return string(out), consumed, nil
		}
		n, err := io.ReadFull(r, buf)
		consumed += n
		if err != nil {
			return nil, consumed, err
		}
		if buf[0] == 0 {
			return string(out), consumed, nil
		}
		out = append(out, buf[0])
	}
}

// --- bit-packed integers --------------------------------------------------

type bitIntCodec struct {
	width  uint8
	signed bool
}

// NewBitInt builds a BitCodec for a sub-byte (or multi-byte but non-byte-
// aligned) integer of the given width in bits.
func NewBitInt(width uint8, signed bool) BitCodec {
	return bitIntCodec{width: width, signed: signed}
}

func (c bitIntCodec) Width() uint8 { return c.width }

func (c bitIntCodec) Default() interface{} {
	if c.signed {
		return int64(0)
	}
	return uint64(0)
}

func (c bitIntCodec) Encode(value interface{}) uint64 {
	if c.signed {
		v, _ := toInt64(value)
		mask := uint64(1)<<c.width - 1
		return uint64(v) & mask
	}
	v, _ := toUint64(value)
	return v
}

func (c bitIntCodec) Decode(bits uint64) interface{} {
	if !c.signed {
		return bits
	}
	signBit := uint64(1) << (c.width - 1)
	if bits&signBit != 0 {
		return int64(bits) - int64(1<<c.width)
	}
	return int64(bits)
}

// --- numeric coercions -----------------------------------------------------

func toUint64(v interface{}) (uint64, error) {
	switch n := v.(type) {
	case uint64:
		return n, nil
	case uint32:
		return uint64(n), nil
	case uint16:
		return uint64(n), nil
	case uint8:
		return uint64(n), nil
	case uint:
		return uint64(n), nil
	case int:
		return uint64(n), nil
	case int64:
		return uint64(n), nil
	case int32:
		return uint64(n), nil
	default:
		return 0, errNotNumeric(v)
	}
}

func toInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case uint:
		return int64(n), nil
	default:
		return 0, errNotNumeric(v)
	}
}

func toFloat64(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, errNotNumeric(v)
	}
}
