package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcyclic(t *testing.T) {
	g := New()
	g.AddEdge("b", "a")
	g.AddEdge("c", "b")
	err := g.Validate()
	require.NoError(t, err)
}

func TestDirectCycle(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")
	err := g.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCycle)
}

func TestSelfCycle(t *testing.T) {
	g := New()
	g.AddEdge("a", "a")
	_, found := g.DetectCycle()
	assert.True(t, found)
}

func TestNoEdges(t *testing.T) {
	g := New()
	_, found := g.DetectCycle()
	assert.False(t, found)
}
