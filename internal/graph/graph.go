// Copyright (c) 2017 Uber Technologies, Inc.
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

// Package graph validates that a struct's bare-Symbol field references
// form a DAG. A schema's lazy Symbol/Expr values are free to reach any
// ancestor at evaluation time, but a *bare* Symbol naming another field
// declared on the very same struct is resolvable statically, and two
// such fields naming each other (check_value: Sibling("b") on a, and
// check_value: Sibling("a") on b) each only ever see the other's current
// snapshot, so the pair can never be a meaningful validation. The root
// package rejects such a cycle at schema-declaration time with this
// graph; Evaluate itself does not loop on it.
//
// This is a direct, string-keyed adaptation of the reflect.Type-keyed
// dependency graph dig's own container uses to reject cyclic
// constructors before Provide returns: same recursive DFS with a path
// trail, same "wrap the cycle into one readable error" shape, applied
// to field names instead of types.
package graph

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// ErrCycle is the sentinel every detected cycle wraps.
var ErrCycle = errors.New("graph: cycle detected")

// Graph is an adjacency-list directed graph of field names.
type Graph struct {
	edges map[string][]string
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{edges: make(map[string][]string)}
}

// AddEdge records that `from` references `to`.
func (g *Graph) AddEdge(from, to string) {
	g.edges[from] = append(g.edges[from], to)
}

// DetectCycle runs a DFS from every node, returning the first cycle
// found as a human-readable path ("a -> b -> a"), or ok=false if the
// graph is acyclic.
func (g *Graph) DetectCycle() (path string, ok bool) {
	for start := range g.edges {
		if cyc := g.recursiveDetectCycle(start, nil); cyc != "" {
			return cyc, true
		}
	}
	return "", false
}

func (g *Graph) recursiveDetectCycle(node string, trail []string) string {
	for _, seen := range trail {
		if seen == node {
			b := &bytes.Buffer{}
			for _, n := range trail {
				fmt.Fprint(b, n, " -> ")
			}
			fmt.Fprint(b, node)
			return b.String()
		}
	}
	trail = append(trail, node)
	for _, dep := range g.edges[node] {
		if cyc := g.recursiveDetectCycle(dep, trail); cyc != "" {
			return cyc
		}
	}
	return ""
}

// Validate returns an ErrCycle-wrapped error describing the first cycle
// found, or nil if the graph is acyclic.
func (g *Graph) Validate() error {
	if path, found := g.DetectCycle(); found {
		return errors.Wrapf(ErrCycle, "%s", path)
	}
	return nil
}
