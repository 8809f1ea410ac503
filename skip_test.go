package bindata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justfalter/bindata"
	"github.com/justfalter/bindata/internal/digtest"
)

func TestSkipConsumesLengthBytesAsPadding(t *testing.T) {
	h := bindata.NewStructClass("skip_test_Padded",
		bindata.FieldDecl("marker", "uint8"),
		bindata.FieldDecl("pad", "skip", bindata.Length(3)),
		bindata.FieldDecl("trailer", "uint8"),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)

	data := []byte{0xAA, 0x00, 0x00, 0x00, 0xBB}
	dt := digtest.New(t)
	dt.RequireRoundTrip(n, data)

	snap, err := bindata.Snapshot(n)
	require.NoError(t, err)
	m := snap.(map[string]interface{})
	assert.Nil(t, m["pad"], "skip contributes no decoded value")
	assert.Equal(t, uint64(0xAA), m["marker"])
	assert.Equal(t, uint64(0xBB), m["trailer"])
}
