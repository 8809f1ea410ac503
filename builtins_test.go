package bindata_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justfalter/bindata"
	"github.com/justfalter/bindata/internal/digtest"
)

func TestZeroTermStringWithoutMaxLength(t *testing.T) {
	h := bindata.NewStructClass("builtins_test_ZString",
		bindata.FieldDecl("name", "zstring"),
		bindata.FieldDecl("trailer", "uint8"),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)

	data := []byte{'h', 'i', 0x00, 0x09}
	dt := digtest.New(t)
	dt.RequireRoundTrip(n, data)

	snap, err := bindata.Snapshot(n)
	require.NoError(t, err)
	m := snap.(map[string]interface{})
	assert.Equal(t, "hi", m["name"])
	assert.Equal(t, uint64(9), m["trailer"])
}

func TestZStringMaxLengthFour(t *testing.T) {
	h := bindata.NewStructClass("builtins_test_ZStringMax",
		bindata.FieldDecl("name", "zstring", bindata.MaxLength(4)),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)

	data := []byte{'h', 'i', 0x00, 0x00} // decoding stops at the first terminator; the last byte is not consumed
	dt := digtest.New(t)
	dt.RequireRead(n, data)

	snap, err := bindata.Snapshot(n)
	require.NoError(t, err)
	m := snap.(map[string]interface{})
	assert.Equal(t, "hi", m["name"])

	require.NoError(t, bindata.Assign(n, map[string]interface{}{"name": "longer than four"}))
	out, err := bindata.ToBinaryS(n)
	require.NoError(t, err)
	assert.Equal(t, []byte{'l', 'o', 'n', 0x00}, out, "encode truncates to max_length-1 content bytes plus the terminator")
}

func TestPascalStyleString(t *testing.T) {
	h := bindata.NewStructClass("builtins_test_Pascal",
		bindata.FieldDecl("length", "uint8"),
		bindata.FieldDecl("text", "string", bindata.ReadLength(bindata.Sibling("length"))),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)

	data := []byte{0x05, 'h', 'e', 'l', 'l', 'o'}
	dt := digtest.New(t)
	dt.RequireRoundTrip(n, data)

	snap, err := bindata.Snapshot(n)
	require.NoError(t, err)
	m := snap.(map[string]interface{})
	assert.Equal(t, "hello", m["text"])
}

func TestBitPackedFields(t *testing.T) {
	h := bindata.NewStructClass("builtins_test_BitPacked",
		bindata.FieldDecl("low", "bit4"),
		bindata.FieldDecl("mid", "uint8"),
		bindata.FieldDecl("high", "bit4"),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)

	// low=1, mid=0x42, high=2. Bit fields default to big-endian (MSB-first)
	// packing, so each interrupted nibble lands in the *high* nibble of its
	// own padded byte: low -> 0x10, high -> 0x20. mid's byte-aligned
	// read/write flushes the shared bit buffer between them, so the three
	// fields still cost three bytes on the wire.
	data := []byte{0x10, 0x42, 0x20}
	dt := digtest.New(t)
	dt.RequireRoundTrip(n, data)

	snap, err := bindata.Snapshot(n)
	require.NoError(t, err)
	m := snap.(map[string]interface{})
	assert.Equal(t, uint64(1), m["low"])
	assert.Equal(t, uint64(0x42), m["mid"])
	assert.Equal(t, uint64(2), m["high"])

	out, err := bindata.ToBinaryS(n)
	require.NoError(t, err)
	assert.Equal(t, data, out, "the written wire form must match what was read")
}

func TestContiguousBitFieldsPackIntoSharedBytes(t *testing.T) {
	h := bindata.NewStructClass("builtins_test_BitShared",
		bindata.FieldDecl("a", "bit4"),
		bindata.FieldDecl("b", "bit4"),
		bindata.FieldDecl("c", "bit8"),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)

	// a and b share one byte (no byte-aligned sibling interrupts them),
	// packed MSB-first: a occupies the high nibble, b the low. c then
	// occupies the second byte whole. 16 bits fill exactly 2 bytes.
	data := []byte{0x12, 0x03}
	dt := digtest.New(t)
	dt.RequireRoundTrip(n, data)

	snap, err := bindata.Snapshot(n)
	require.NoError(t, err)
	m := snap.(map[string]interface{})
	assert.Equal(t, uint64(1), m["a"])
	assert.Equal(t, uint64(2), m["b"])
	assert.Equal(t, uint64(0x03), m["c"])

	nb, err := bindata.NumBytes(n)
	require.NoError(t, err)
	assert.Equal(t, int64(2), nb)
}

func TestCheckOffsetMismatchFails(t *testing.T) {
	h := bindata.NewStructClass("builtins_test_CheckOffset",
		bindata.FieldDecl("a", "uint8"),
		bindata.FieldDecl("b", "uint8", bindata.CheckOffset(5)),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)

	err = bindata.Read(n, bytes.NewReader([]byte{0x01, 0x02}))
	assert.ErrorIs(t, err, bindata.ErrOffsetMismatch)
}

func TestLazySymbolResolutionViaOnlyIf(t *testing.T) {
	h := bindata.NewStructClass("builtins_test_LazyOnlyIf",
		bindata.FieldDecl("has_extra", "uint8"),
		bindata.FieldDecl("extra", "uint8", bindata.OnlyIf(bindata.Sibling("has_extra"))),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)

	err = bindata.Read(n, bytes.NewReader([]byte{0x00}))
	require.Error(t, err, "onlyif must evaluate to a bool, not bindata's raw uint64 decode")
}
