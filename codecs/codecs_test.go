package codecs_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justfalter/bindata/codecs"
)

func TestUintRoundTrip(t *testing.T) {
	c := codecs.NewUint(4, codecs.BigEndian)
	buf, err := c.Encode(uint64(0x01020304), 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)

	v, n, err := c.Decode(bytes.NewReader(buf), 0)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, uint64(0x01020304), v)
}

func TestIntSignExtension(t *testing.T) {
	c := codecs.NewInt(1, codecs.LittleEndian)
	v, _, err := c.Decode(bytes.NewReader([]byte{0xFF}), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), v)
}

func TestZeroTermStringNoMax(t *testing.T) {
	c := codecs.NewZeroTermString()
	v, n, err := c.Decode(bytes.NewReader([]byte{0x61, 0x62, 0x63, 0x64, 0x00, 0x65, 0x66, 0x67, 0x68}), 0)
	require.NoError(t, err)
	assert.Equal(t, "abcd", v)
	assert.Equal(t, 5, n)
}

func TestZeroTermStringMaxLengthTruncates(t *testing.T) {
	c := codecs.NewZeroTermString()
	buf, err := c.Encode("abcdef", 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x61, 0x62, 0x63, 0x00}, buf)
}

func TestFixedStringTrimPadding(t *testing.T) {
	c := codecs.NewFixedString(' ', true)
	v, n, err := c.Decode(bytes.NewReader([]byte("hi   ")), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hi", v)
}

func TestBitIntSignedDecode(t *testing.T) {
	c := codecs.NewBitInt(4, true)
	assert.Equal(t, int64(-1), c.Decode(0xF))
	assert.Equal(t, int64(2), c.Decode(0x2))
}

func TestFloat32RoundTrip(t *testing.T) {
	c := codecs.NewFloat32(codecs.LittleEndian)
	buf, err := c.Encode(float32(3.5), 0)
	require.NoError(t, err)
	v, _, err := c.Decode(bytes.NewReader(buf), 0)
	require.NoError(t, err)
	assert.Equal(t, float32(3.5), v)
}
