package bindata_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justfalter/bindata"
	"github.com/justfalter/bindata/internal/digtest"
)

func TestWrapperDelegatesToInnerType(t *testing.T) {
	h := bindata.NewStructClass("wrapper_test_Checked",
		bindata.FieldDecl("value", "wrapper",
			bindata.ElementType("uint32", bindata.CheckValue(uint64(0xCAFEBABE))),
			bindata.CheckOffset(0)),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)

	data := []byte{0xBE, 0xBA, 0xFE, 0xCA}
	dt := digtest.New(t)
	dt.RequireRoundTrip(n, data)

	snap, err := bindata.Snapshot(n)
	require.NoError(t, err)
	m := snap.(map[string]interface{})
	assert.Equal(t, uint64(0xCAFEBABE), m["value"])
}

func TestWrapperCheckValueFailurePropagates(t *testing.T) {
	h := bindata.NewStructClass("wrapper_test_Mismatch",
		bindata.FieldDecl("value", "wrapper",
			bindata.ElementType("uint32", bindata.CheckValue(uint64(0xCAFEBABE)))),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)

	err = bindata.Read(n, bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x00}))
	assert.ErrorIs(t, err, bindata.ErrValidityError)
}
