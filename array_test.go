package bindata_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justfalter/bindata"
	"github.com/justfalter/bindata/internal/digtest"
)

func TestArrayInitialLengthRoundTrip(t *testing.T) {
	h := bindata.NewStructClass("array_test_Fixed",
		bindata.FieldDecl("count", "uint8"),
		bindata.FieldDecl("values", "array",
			bindata.ElementType("uint16"),
			bindata.InitialLength(bindata.Sibling("count"))),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)

	data := []byte{0x02, 0x01, 0x00, 0x02, 0x00} // count=2, values=[1,2] (little-endian uint16, the default)
	dt := digtest.New(t)
	dt.RequireRoundTrip(n, data)

	snap, err := bindata.Snapshot(n)
	require.NoError(t, err)
	m := snap.(map[string]interface{})
	assert.Equal(t, []interface{}{uint64(1), uint64(2)}, m["values"])
}

func TestArrayReadUntilEOF(t *testing.T) {
	h := bindata.NewStructClass("array_test_UntilEOF",
		bindata.FieldDecl("values", "array",
			bindata.ElementType("uint8"),
			bindata.ReadUntilEOF),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)

	data := []byte{0x01, 0x02, 0x03}
	require.NoError(t, bindata.Read(n, bytes.NewReader(data)))

	snap, err := bindata.Snapshot(n)
	require.NoError(t, err)
	m := snap.(map[string]interface{})
	assert.Equal(t, []interface{}{uint64(1), uint64(2), uint64(3)}, m["values"])

	out, err := bindata.ToBinaryS(n)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestArrayReadUntilPredicate(t *testing.T) {
	h := bindata.NewStructClass("array_test_UntilPredicate",
		bindata.FieldDecl("values", "array",
			bindata.ElementType("uint8"),
			bindata.ReadUntilExpr(func(ev bindata.Evaluator) (interface{}, error) {
				v, err := ev.Get("element")
				if err != nil {
					return nil, err
				}
				return v.(uint64) == 0, nil
			})),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)

	// Stops once it reads the terminating zero; trailing bytes are untouched.
	data := []byte{0x05, 0x06, 0x00, 0x09, 0x09}
	require.NoError(t, bindata.Read(n, bytes.NewReader(data)))

	snap, err := bindata.Snapshot(n)
	require.NoError(t, err)
	m := snap.(map[string]interface{})
	assert.Equal(t, []interface{}{uint64(5), uint64(6), uint64(0)}, m["values"])
}

func TestArraySetGrowsWithClearElements(t *testing.T) {
	h := bindata.NewStructClass("array_test_Set",
		bindata.FieldDecl("values", "array",
			bindata.ElementType("uint8"),
			bindata.InitialLength(0)),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)

	s, ok := n.(*bindata.Struct)
	require.True(t, ok)
	values, ok := s.Field("values")
	require.True(t, ok)
	arr, ok := values.(*bindata.Array)
	require.True(t, ok)

	require.NoError(t, arr.Set(2, uint64(7)))

	snap, err := arr.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{uint64(0), uint64(0), uint64(7)}, snap)
}
