package dot_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justfalter/bindata/internal/dot"
)

func TestGraphRendersNodesAndEdges(t *testing.T) {
	g := dot.New()
	g.AddNode("root", "Header", "struct")
	g.AddNode("root.magic", "magic", "primitive")
	g.AddEdge("root", "root.magic")

	var buf strings.Builder
	require.NoError(t, g.WriteTo(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "digraph bindata {"))
	assert.Contains(t, out, `"root" [label="Header",shape=box,tooltip="struct"];`)
	assert.Contains(t, out, `"root.magic" [label="magic",shape=box,tooltip="primitive"];`)
	assert.Contains(t, out, `"root" -> "root.magic";`)
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), "}"))
}

func TestEmptyGraph(t *testing.T) {
	g := dot.New()
	var buf strings.Builder
	require.NoError(t, g.WriteTo(&buf))
	assert.Equal(t, "digraph bindata {\n}\n", buf.String())
}
