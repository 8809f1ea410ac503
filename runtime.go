package bindata

import (
	"bytes"
	"fmt"
	"io"

	"github.com/justfalter/bindata/internal/dot"
)

// This file is the package-level convenience surface of spec §6: thin
// wrappers over the Node interface so a caller need not import the
// interface's method set just to read/write/inspect a schema instance.

// New instantiates a root-level (parentless) instance of class, ready
// for Read or Assign.
func New(class *StructClass) (Node, error) {
	return class.New()
}

// Read decodes r into n.
func Read(n Node, r io.Reader) error {
	return n.Read(NewReaderIO(r))
}

// Write encodes n to w.
func Write(n Node, w io.Writer) error {
	return n.Write(NewWriterIO(w))
}

// Assign overwrites n's mutated state with value.
func Assign(n Node, value interface{}) error {
	return n.Assign(value)
}

// Clear returns n to its initial state.
func Clear(n Node) {
	n.Clear()
}

// Cleared reports whether n is in its initial state.
func Cleared(n Node) bool {
	return n.Cleared()
}

// Snapshot returns n's plain-value projection.
func Snapshot(n Node) (interface{}, error) {
	return n.Snapshot()
}

// ToBinaryS encodes n to a byte slice.
func ToBinaryS(n Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(n, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NumBytes returns n's current encoded size in bytes, rounded up from
// its bit size (spec §4.9's "rounded up at byte boundaries").
func NumBytes(n Node) (int64, error) {
	bits, err := n.NumBits()
	if err != nil {
		return 0, err
	}
	return bits.Bytes(), nil
}

// Offset returns n's absolute byte offset from the root of its tree.
func Offset(n Node) (int64, error) {
	return nodeOffset(n)
}

// RelOffset returns n's byte offset relative to ancestor, which must be
// a strict ancestor of n (spec §4.5's offset_of generalized to an
// arbitrary, not-necessarily-immediate, ancestor).
func RelOffset(n Node, ancestor Node) (int64, error) {
	if n == ancestor {
		return 0, nil
	}
	var total int64
	cur := n
	for {
		parent := cur.Parent()
		if parent == nil {
			return 0, errWrapf(ErrUnresolvedSymbol, "RelOffset: not an ancestor of the given node")
		}
		rel, err := parent.offsetOfChild(cur)
		if err != nil {
			return 0, err
		}
		total += rel
		if parent == ancestor {
			return total, nil
		}
		cur = parent
	}
}

// Inspect renders a debug string for n.
func Inspect(n Node) string {
	return n.Inspect()
}

// Visualize renders n's field tree as a DOT graph to w, the schema
// analogue of dig's Visualize(container) diagnostic.
func Visualize(w io.Writer, n Node) error {
	g := dot.New()
	visualizeNode(g, n, "")
	return g.WriteTo(w)
}

func visualizeNode(g *dot.Graph, n Node, parentID string) {
	id := fmt.Sprintf("%p", n)
	label := n.Kind().String()
	if s, ok := n.(*Struct); ok {
		label = s.class.Name
	}
	g.AddNode(id, label, n.Kind().String())
	if parentID != "" {
		g.AddEdge(parentID, id)
	}

	switch t := n.(type) {
	case *Struct:
		for _, child := range t.children {
			visualizeNode(g, child, id)
		}
	case *Array:
		for _, child := range t.children {
			visualizeNode(g, child, id)
		}
	case *Choice:
		if t.active != nil {
			visualizeNode(g, t.active, id)
		}
	case *Wrapper:
		if t.inner != nil {
			visualizeNode(g, t.inner, id)
		}
	}
}
