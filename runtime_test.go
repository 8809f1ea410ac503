package bindata_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justfalter/bindata"
	"github.com/justfalter/bindata/internal/digtest"
)

var runtimeTestInner = bindata.NewStructClass("runtime_test_Inner",
	bindata.FieldDecl("a", "uint8"),
	bindata.FieldDecl("b", "uint8"),
)

func TestNestedStructOffsetsAndRelOffset(t *testing.T) {
	h := bindata.NewStructClass("runtime_test_Outer",
		bindata.FieldDecl("lead", "uint16"),
		bindata.FieldDecl("inner", "runtime_test_Inner"),
		bindata.FieldDecl("trail", "uint8"),
	)
	_ = runtimeTestInner

	n, err := bindata.New(h)
	require.NoError(t, err)

	data := []byte{0x00, 0x00, 0x11, 0x22, 0x33}
	dt := digtest.New(t)
	dt.RequireRoundTrip(n, data)

	s, ok := n.(*bindata.Struct)
	require.True(t, ok)
	inner, ok := s.Field("inner")
	require.True(t, ok)

	off, err := bindata.Offset(inner)
	require.NoError(t, err)
	assert.Equal(t, int64(2), off, "inner starts after the 2-byte lead field")

	innerStruct, ok := inner.(*bindata.Struct)
	require.True(t, ok)
	b, ok := innerStruct.Field("b")
	require.True(t, ok)

	bOff, err := bindata.Offset(b)
	require.NoError(t, err)
	assert.Equal(t, int64(3), bOff, "b sits one byte into inner, which itself starts at 2")

	rel, err := bindata.RelOffset(b, s)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rel, "relative to outer, b sits after the 2-byte lead and 1 byte into inner")

	relSelf, err := bindata.RelOffset(b, innerStruct)
	require.NoError(t, err)
	assert.Equal(t, int64(1), relSelf)
}

func TestVisualizeRendersFieldTree(t *testing.T) {
	h := bindata.NewStructClass("runtime_test_Vis",
		bindata.FieldDecl("count", "uint8"),
		bindata.FieldDecl("values", "array",
			bindata.ElementType("uint8"),
			bindata.InitialLength(bindata.Sibling("count"))),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)
	require.NoError(t, bindata.Assign(n, map[string]interface{}{
		"count":  uint64(0),
		"values": []interface{}{},
	}))

	var buf strings.Builder
	require.NoError(t, bindata.Visualize(&buf, n))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph bindata {"))
	assert.Contains(t, out, "struct")
	assert.Contains(t, out, "runtime_test_Vis")
	assert.Contains(t, out, "array")
}
