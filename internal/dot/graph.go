// Copyright (c) 2018 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package dot renders a schema's field tree as a DOT graph, the same
// diagnostic role dig's internal/dot plays for a Container's
// constructor graph -- except the nodes here are schema fields (struct/
// array/choice/primitive/...), not reflect.Type-keyed constructors, so
// the shape is a plain tree walk rather than a dependency DAG.
package dot

import (
	"fmt"
	"io"
)

// Node is one schema field rendered in the graph.
type Node struct {
	ID    string
	Label string
	Kind  string
}

// Edge connects a container field to one of its children.
type Edge struct {
	From string
	To   string
}

// Graph is the DOT-format rendering of a schema's field tree.
type Graph struct {
	Nodes []*Node
	Edges []*Edge
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{}
}

// AddNode registers a node, returning it for chaining into AddEdge.
func (g *Graph) AddNode(id, label, kind string) *Node {
	n := &Node{ID: id, Label: label, Kind: kind}
	g.Nodes = append(g.Nodes, n)
	return n
}

// AddEdge records a parent -> child relationship.
func (g *Graph) AddEdge(from, to string) {
	g.Edges = append(g.Edges, &Edge{From: from, To: to})
}

// WriteTo renders the graph in DOT format.
func (g *Graph) WriteTo(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph bindata {"); err != nil {
		return err
	}
	for _, n := range g.Nodes {
		if _, err := fmt.Fprintf(w, "\t%q [label=%q,shape=box,tooltip=%q];\n", n.ID, n.Label, n.Kind); err != nil {
			return err
		}
	}
	for _, e := range g.Edges {
		if _, err := fmt.Fprintf(w, "\t%q -> %q;\n", e.From, e.To); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
