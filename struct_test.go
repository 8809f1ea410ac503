package bindata_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justfalter/bindata"
	"github.com/justfalter/bindata/internal/digtest"
)

func TestStructRoundTripAndOffsets(t *testing.T) {
	h := bindata.NewStructClass("struct_test_Header",
		bindata.Endian_(bindata.LittleEndian),
		bindata.FieldDecl("magic", "uint32", bindata.CheckValue(uint64(0xCAFEBABE))),
		bindata.FieldDecl("length", "uint16"),
		bindata.FieldDecl("payload", "string", bindata.ReadLength(bindata.Sibling("length"))),
		bindata.Hide("reserved"),
		bindata.FieldDecl("reserved", "uint8"),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)

	data := []byte{
		0xBE, 0xBA, 0xFE, 0xCA, // magic, little-endian
		0x03, 0x00, // length = 3
		'h', 'i', '!', // payload
		0x09, // reserved
	}

	dt := digtest.New(t)
	dt.RequireRoundTrip(n, data)

	snap, err := bindata.Snapshot(n)
	require.NoError(t, err)
	m, ok := snap.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "hi!", m["payload"])
	_, hiddenPresent := m["reserved"]
	assert.False(t, hiddenPresent, "hidden field must not appear in snapshot")

	s, ok := n.(*bindata.Struct)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"magic", "length", "payload"}, s.FieldNames())

	payload, ok := s.Field("payload")
	require.True(t, ok)
	off, err := bindata.Offset(payload)
	require.NoError(t, err)
	assert.Equal(t, int64(6), off, "payload starts after a 4-byte magic and a 2-byte length")
}

func TestDuplicateFieldPanics(t *testing.T) {
	assert.Panics(t, func() {
		bindata.NewStructClass("struct_test_Dup",
			bindata.FieldDecl("a", "uint8"),
			bindata.FieldDecl("a", "uint8"),
		)
	})
}

func TestReservedFieldNamePanics(t *testing.T) {
	assert.Panics(t, func() {
		bindata.NewStructClass("struct_test_Reserved",
			bindata.FieldDecl("index", "uint8"),
		)
	})
}

func TestSameStructSymbolCyclePanics(t *testing.T) {
	assert.Panics(t, func() {
		bindata.NewStructClass("struct_test_Cycle",
			bindata.FieldDecl("a", "uint8", bindata.CheckValue(bindata.Sibling("b"))),
			bindata.FieldDecl("b", "uint8", bindata.CheckValue(bindata.Sibling("a"))),
		)
	})
}

func TestOnlyIfSkipsField(t *testing.T) {
	h := bindata.NewStructClass("struct_test_OnlyIf",
		bindata.FieldDecl("flag", "uint8"),
		bindata.FieldDecl("extra", "uint16",
			bindata.OnlyIf(bindata.DeferExpr(func(ev bindata.Evaluator) (interface{}, error) {
				v, err := ev.Get("flag")
				if err != nil {
					return nil, err
				}
				return v.(uint64) != 0, nil
			}))),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)
	require.NoError(t, bindata.Read(n, bytes.NewReader([]byte{0x00})))

	nb, err := bindata.NumBytes(n)
	require.NoError(t, err)
	assert.Equal(t, int64(1), nb, "extra must be skipped entirely when flag is zero")

	snap, err := bindata.Snapshot(n)
	require.NoError(t, err)
	m := snap.(map[string]interface{})
	_, present := m["extra"]
	assert.False(t, present)
}
