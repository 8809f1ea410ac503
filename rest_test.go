package bindata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justfalter/bindata"
	"github.com/justfalter/bindata/internal/digtest"
)

func TestRestConsumesRemainingBytes(t *testing.T) {
	h := bindata.NewStructClass("rest_test_Trailer",
		bindata.FieldDecl("kind", "uint8"),
		bindata.FieldDecl("trailing", "rest"),
	)

	n, err := bindata.New(h)
	require.NoError(t, err)

	data := []byte{0x01, 0xDE, 0xAD, 0xBE, 0xEF}
	dt := digtest.New(t)
	dt.RequireRoundTrip(n, data)

	snap, err := bindata.Snapshot(n)
	require.NoError(t, err)
	m := snap.(map[string]interface{})
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, m["trailing"])
}
