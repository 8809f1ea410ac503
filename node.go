package bindata

// NodeKind tags the polymorphic variant a Node implements, matching spec
// §3's "Primitive, Struct, Array, Choice, Skip, Rest, Wrapper" kind list
// and the "tagged variant" design note in spec §9.
type NodeKind int

const (
	KindPrimitive NodeKind = iota
	KindStruct
	KindArray
	KindChoice
	KindSkip
	KindRest
	KindWrapper
)

func (k NodeKind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindStruct:
		return "struct"
	case KindArray:
		return "array"
	case KindChoice:
		return "choice"
	case KindSkip:
		return "skip"
	case KindRest:
		return "rest"
	case KindWrapper:
		return "wrapper"
	default:
		return "unknown"
	}
}

// BitSize is a bit count, used instead of a plain byte count so containers
// can sum fractional-byte bit-field widths exactly (spec §4.9, "Fractional
// bit sizes ... summed as rationals ... rounded up at byte boundaries")
// rather than rounding each bit field individually.
type BitSize int64

// Bytes rounds up to the next whole byte.
func (b BitSize) Bytes() int64 {
	return (int64(b) + 7) / 8
}

// isBitPacked reports whether n is a sub-byte primitive (a bitN/sbitN
// field) whose bits share IO's buffer with its neighbors instead of
// forcing a byte boundary.
func isBitPacked(n Node) bool {
	p, ok := n.(*BasePrimitive)
	return ok && p.bitCodec != nil
}

// sumChildBits totals children's NumBits in declaration order the way
// IO's shared bit buffer actually accumulates them (spec §4.8): a run of
// bit-packed children shares one pending fragment, and any other active
// child flushes that fragment to a whole byte first, since the byte-level
// IO it performs would flush IO's bit buffer exactly the same way. If stop
// is non-nil, accumulation ends (after flushing any pending fragment) at
// the child equal to stop, without adding stop's own bits -- this is
// offsetOfChild's "bits strictly before child" query; pass a nil stop to
// total every child.
func sumChildBits(children []Node, stop Node) (BitSize, error) {
	var total, pending BitSize
	flush := func() {
		total += pending.Bytes() * 8
		pending = 0
	}
	for _, c := range children {
		if stop != nil && c == stop {
			break
		}
		active, err := evalOnlyIf(c)
		if err != nil {
			return 0, err
		}
		if !active {
			continue
		}
		bits, err := c.NumBits()
		if err != nil {
			return 0, err
		}
		if isBitPacked(c) {
			pending += bits
			continue
		}
		flush()
		total += bits
	}
	flush()
	return total, nil
}

// Node is the shared capability set of every field in a schema, matching
// the tagged-variant design note of spec §9: read/write/num_bytes/
// snapshot/assign/clear/clear? common to every kind, plus the
// parent-chain and lookup plumbing the lazy evaluator and offset
// accounting need.
type Node interface {
	// Kind reports which variant this node implements.
	Kind() NodeKind

	// Parent returns the non-owning back-reference to this node's
	// container, or nil at the root (spec §3's "Parent uniqueness").
	Parent() Node

	// Params returns this node's sanitized parameter bundle.
	Params() *SanitizedParameters

	// Callable resolves a zero-argument computed attribute by name (the
	// Go rendition of spec §4.3's "callable attribute" fallback); ok is
	// false if this node exposes no such attribute.
	Callable(name string) (func(Evaluator) (interface{}, error), bool)

	// offsetOfChild sums the NumBytes of this container's previously
	// declared, visible, onlyif-passing children up to (not including)
	// child, matching spec §4.5's offset_of and the Offset law of §8.
	offsetOfChild(child Node) (int64, error)

	// Read performs a full read cycle per spec §4.9: offset check/adjust,
	// clear, kind-specific decode, then check_value validation.
	Read(io *IO) error

	// Write mirrors Read, except offset parameters are not enforced and
	// a bound `value` parameter always takes precedence.
	Write(io *IO) error

	// NumBits returns this node's current encoded size in bits.
	NumBits() (BitSize, error)

	// Snapshot returns the plain-value projection of this node (spec
	// §6's Snapshot): a scalar for a primitive, an ordered list for an
	// array, a name->value map for a struct, or the active variant's
	// snapshot for a choice.
	Snapshot() (interface{}, error)

	// Assign accepts a snapshot-shaped value (or, for containers, a
	// compatible Node) and overwrites this node's mutated state.
	Assign(value interface{}) error

	// Clear returns this node to its initial ("clear") state.
	Clear()

	// Cleared reports whether this node is in its initial state.
	Cleared() bool

	// Inspect renders a debug string for this node.
	Inspect() string

	// setParent installs the (non-owning) parent back-reference; only
	// called by a container when it takes ownership of a child (spec
	// §3's "Parent uniqueness": inserting a node transfers parenthood
	// exclusively).
	setParent(Node)
}

// baseNode is embedded by every concrete node kind to share the parent
// back-reference and sanitized-parameter bundle, plus the default
// (no-op) implementation of Callable that only containers override.
type baseNode struct {
	parent Node
	params *SanitizedParameters
}

func (b *baseNode) Parent() Node                 { return b.parent }
func (b *baseNode) Params() *SanitizedParameters { return b.params }
func (b *baseNode) setParent(p Node)             { b.parent = p }
func (b *baseNode) Callable(string) (func(Evaluator) (interface{}, error), bool) {
	return nil, false
}

// arrayIndexer is implemented by container kinds whose children can be
// positionally indexed (only Array, today). The lazy evaluator's "index"
// resolver (spec §4.3) walks a node's ancestor chain looking for the
// first ancestor that reports a position for the child directly beneath
// it, rather than asking each node whether it "is" an array element —
// this keeps ordinary primitives and structs free of array-specific
// plumbing.
type arrayIndexer interface {
	childIndex(child Node) (int, bool)
}

// evalParam is a convenience used by every concrete kind: evaluate a named
// sanitized parameter in this node's own context. A name that is absent
// from the sanitized parameters is reported as ok=false with a nil error,
// distinct from an evaluation failure (ok=true with a non-nil error);
// callers decide whether absence is an error.
func evalParam(n Node, name string, overrides map[string]interface{}) (interface{}, bool, error) {
	params := n.Params()
	if params == nil {
		return nil, false, nil
	}
	v, ok := params.raw[name]
	if !ok {
		return nil, false, nil
	}
	resolved, err := Evaluate(n, v, overrides)
	if err != nil {
		return nil, true, err
	}
	return resolved, true, nil
}

// evalOnlyIf evaluates the onlyif parameter (present on every node kind
// per spec §6's "Recognized parameters across all types"), defaulting to
// true when absent.
func evalOnlyIf(n Node) (bool, error) {
	v, ok, err := evalParam(n, "onlyif", nil)
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, errWrapf(ErrValidityError, "onlyif must evaluate to a bool, got %T", v)
	}
	return b, nil
}
