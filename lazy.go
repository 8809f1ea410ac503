package bindata

// Value is the type of anything that can appear as a parameter: a literal
// Go value, a Symbol referencing a sibling/ancestor binding, or a *Expr
// deferred expression. nil is never a valid Value (spec §3's parameter
// closure invariant) — Sanitizer rejects it before it reaches a node.
type Value interface{}

// Symbol is a named reference resolved against a node's parent chain, the
// Go rendition of spec §4.3's "v is a symbol s" case. Sibling and Ancestor
// are the two constructors exposed to schema authors; both produce the
// same Symbol shape, since resolution always starts at the referencing
// node's immediate parent and, like any other lazy value, will keep
// recursing upward if what it finds is itself a Symbol or Expr.
type Symbol struct {
	Name string
}

// Sibling builds a Symbol naming a previously-declared field in the same
// struct (or, if not found there, an ancestor's binding — resolution does
// not distinguish the two syntactically, only the parent chain does).
func Sibling(name string) Symbol { return Symbol{Name: name} }

// Ancestor is an alias for Sibling provided for readability at call sites
// that reach further up the tree; resolution semantics are identical.
func Ancestor(name string) Symbol { return Symbol{Name: name} }

// Evaluator is exposed to a deferred Expr's function body, giving it the
// symbol-lookup, index, parent, and offset resolvers spec §4.3 describes.
type Evaluator interface {
	// Get resolves name using the same rules as a bare Symbol: overrides
	// first, then as a parameter name on the bound node's parent, then as
	// a callable attribute of that parent.
	Get(name string) (interface{}, error)
	// Index returns the position of the nearest containing array element.
	Index() (int, error)
	// Parent returns the evaluator bound to the current node's parent, or
	// an error if there is none.
	Parent() (Evaluator, error)
	// Offset returns the byte offset from the root at the current field.
	Offset() (int64, error)
}

// ExprFunc is the body of a deferred expression: a function evaluated in
// the context of the node it is bound to, via an Evaluator.
type ExprFunc func(ev Evaluator) (interface{}, error)

// Expr is a deferred expression (spec §4.3's "v is a deferred expression
// (closure)"), the Go-host rendition of the "expression builder" design
// note calls for in statically-typed hosts that cannot capture bare
// sibling names lexically.
type Expr struct {
	fn ExprFunc
}

// DeferExpr builds an Expr from a function. Using bindata.DeferExpr(...) as a
// parameter value defers evaluation until the node actually needs it.
func DeferExpr(fn ExprFunc) *Expr { return &Expr{fn: fn} }

// nodeEvaluator adapts a live Node into an Evaluator, threading the
// override map supplied to the enclosing Evaluate call down through
// Get/Parent/Index/Offset lookups exactly as spec §4.3 specifies: overrides
// are consulted first and never recurse further once found there.
type nodeEvaluator struct {
	n         Node
	overrides map[string]interface{}
}

func (e *nodeEvaluator) Get(name string) (interface{}, error) {
	return Evaluate(e.n, Symbol{Name: name}, e.overrides)
}

func (e *nodeEvaluator) Index() (int, error) {
	if e.overrides != nil {
		if v, ok := e.overrides["index"]; ok {
			if i, ok := v.(int); ok {
				return i, nil
			}
		}
	}
	var prev Node
	for cur := e.n; cur != nil; cur = cur.Parent() {
		if ai, ok := cur.(arrayIndexer); ok && prev != nil {
			if idx, ok := ai.childIndex(prev); ok {
				return idx, nil
			}
		}
		prev = cur
	}
	return 0, errWrapf(ErrUnresolvedSymbol, "index: no containing array")
}

func (e *nodeEvaluator) Parent() (Evaluator, error) {
	p := e.n.Parent()
	if p == nil {
		return nil, errWrapf(ErrUnresolvedSymbol, "parent: node has no parent")
	}
	return &nodeEvaluator{n: p}, nil
}

func (e *nodeEvaluator) Offset() (int64, error) {
	return nodeOffset(e.n)
}

// Evaluate resolves a Value in the context of node n with an optional
// overrides map, following spec §4.3's recursion rules exactly:
//
//   - literal     -> returned as-is.
//   - Symbol      -> checked against overrides first (no recursion on hit);
//     otherwise looked up on n.Parent() as a parameter name, then as a
//     callable attribute; the result recurses in the PARENT's context.
//   - *Expr       -> invoked with an Evaluator bound to n; the result
//     recurses in n's own context (not the parent's — the expression has
//     already "arrived" at its value's context).
//
// Evaluate has no separate recursion-depth counter: termination is
// guaranteed because a Symbol hop always ascends one level in the tree and
// the tree has finite depth (see spec §4.3, "Termination").
func Evaluate(n Node, v Value, overrides map[string]interface{}) (interface{}, error) {
	switch val := v.(type) {
	case nil:
		return nil, errWrapf(ErrUnresolvedSymbol, "nil value is not resolvable")
	case Symbol:
		if overrides != nil {
			if ov, ok := overrides[val.Name]; ok {
				return ov, nil
			}
		}
		parent := n.Parent()
		if parent == nil {
			return nil, errWrapf(ErrUnresolvedSymbol, "symbol %q: %v has no parent", val.Name, n)
		}
		next, err := lookupOnNode(parent, val.Name)
		if err != nil {
			return nil, err
		}
		return Evaluate(parent, next, nil)
	case *Expr:
		result, err := val.fn(&nodeEvaluator{n: n, overrides: overrides})
		if err != nil {
			return nil, err
		}
		return Evaluate(n, result, overrides)
	default:
		return v, nil
	}
}

// lookupOnNode resolves name on a node: first as a sanitized parameter,
// then as a callable attribute (a zero-argument method registered via
// Node's Callable hook, e.g. a struct's computed "include?"-style
// predicate). Neither hit wraps in Evaluate again; the caller recurses.
func lookupOnNode(n Node, name string) (Value, error) {
	if params := n.Params(); params != nil {
		if v, ok := params.raw[name]; ok {
			return v, nil
		}
	}
	if fn, ok := n.Callable(name); ok {
		result, err := fn(&nodeEvaluator{n: n})
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	return nil, errWrapf(ErrUnresolvedSymbol, "symbol %q not found on %v", name, n)
}

// nodeOffset walks from n up to the root accumulating each parent's
// offsetOfChild, used by both Evaluator.Offset and the package-level
// Offset (see runtime.go).
func nodeOffset(n Node) (int64, error) {
	if n.Parent() == nil {
		return 0, nil
	}
	rel, err := n.Parent().offsetOfChild(n)
	if err != nil {
		return 0, err
	}
	parentOffset, err := nodeOffset(n.Parent())
	if err != nil {
		return 0, err
	}
	return parentOffset + rel, nil
}
