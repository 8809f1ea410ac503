package bindata_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justfalter/bindata"
	"github.com/justfalter/bindata/internal/digtest"
)

func TestChoiceSelectsVariantByKind(t *testing.T) {
	h := bindata.NewStructClass("choice_test_Packet",
		bindata.FieldDecl("kind", "uint8"),
		bindata.FieldDecl("body", "choice",
			bindata.Selection(bindata.Sibling("kind")),
			bindata.Choices(map[interface{}]string{
				uint64(0): "uint16",
				uint64(1): "zstring",
			})),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)

	dt := digtest.New(t)
	numeric := []byte{0x00, 0x2A, 0x00} // kind=0 -> uint16 body, little-endian 42
	dt.RequireRoundTrip(n, numeric)
	snap, err := bindata.Snapshot(n)
	require.NoError(t, err)
	m := snap.(map[string]interface{})
	assert.Equal(t, uint64(42), m["body"])

	n2, err := bindata.New(h)
	require.NoError(t, err)
	text := []byte{0x01, 'h', 'i', 0x00} // kind=1 -> zstring body
	dt.RequireRoundTrip(n2, text)
	snap2, err := bindata.Snapshot(n2)
	require.NoError(t, err)
	m2 := snap2.(map[string]interface{})
	assert.Equal(t, "hi", m2["body"])
}

func TestChoiceUnknownSelectionFails(t *testing.T) {
	h := bindata.NewStructClass("choice_test_Unknown",
		bindata.FieldDecl("kind", "uint8"),
		bindata.FieldDecl("body", "choice",
			bindata.Selection(bindata.Sibling("kind")),
			bindata.Choices(map[interface{}]string{
				uint64(0): "uint16",
			})),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)
	err = bindata.Read(n, bytes.NewReader([]byte{0x09, 0x00, 0x00}))
	assert.ErrorIs(t, err, bindata.ErrUnknownChoice)
}
