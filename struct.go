package bindata

import (
	"github.com/justfalter/bindata/internal/digreflect"
	"github.com/justfalter/bindata/internal/graph"
)

// StructClass is the class-level, immutable-after-declaration descriptor
// for a named-field record (spec §3's "Lifecycle": schemas are declared
// once at class level). It is built by NewStructClass and registered so
// it can also be referenced as a nested field type by name.
type StructClass struct {
	Name     string
	Endian   Endian
	Hidden   map[string]bool
	Accepted *AcceptedParameters

	fields []structFieldBinding
	ctor   Constructor
}

type structFieldBinding struct {
	name      string
	prototype *SanitizedPrototype
}

// StructOption configures a StructClass at declaration time, the
// functional-options rendition of spec §6's schema-declaration DSL,
// grounded on dig's Option/ProvideOption interface shape in options.go:
// a private apply method plus constructor functions (Endian_, Hide,
// FieldDecl) returning concrete implementations.
type StructOption interface {
	apply(*structBuild)
}

type structBuild struct {
	class      *StructClass
	sanitizer  *Sanitizer
	err        error
	symbolRefs *graph.Graph
}

type structOptionFunc func(*structBuild)

func (f structOptionFunc) apply(b *structBuild) { f(b) }

// endianOption is distinguished from a plain structOptionFunc so
// NewStructClass can apply it in an earlier pass, before any FieldDecl
// resolves a nested type against the sanitizer's endian context (spec
// §4.2's scoped with_endian).
type endianOption Endian

func (e endianOption) apply(b *structBuild) { b.class.Endian = Endian(e) }

// Endian_ declares the struct's endian. Trailing underscore avoids
// shadowing the Endian type exported alongside it.
func Endian_(e Endian) StructOption { return endianOption(e) }

// FieldDecl declares one ordered field: `<type> <name>[, params]` in
// spec §6's DSL surface, taking the field name first and the type name
// second. Params are built with the ParamOption constructors in dsl.go
// (InitialValue, Bind, CheckValue, OnlyIf, Length, ...).
func FieldDecl(fieldName, typeName string, opts ...ParamOption) StructOption {
	return structOptionFunc(func(b *structBuild) {
		if b.err != nil {
			return
		}
		fieldName = normalizeName(fieldName)
		for _, existing := range b.class.fields {
			if existing.name == fieldName {
				b.err = errWrapf(ErrDuplicateField, "%s.%s", b.class.Name, fieldName)
				return
			}
		}
		if reservedEvaluatorNames[fieldName] {
			b.err = errWrapf(ErrReservedName, "%s.%s", b.class.Name, fieldName)
			return
		}

		raw := make(map[string]Value)
		for _, opt := range opts {
			opt(raw)
		}

		for _, v := range raw {
			if sym, ok := v.(Symbol); ok {
				b.symbolRefs.AddEdge(fieldName, sym.Name)
			}
		}

		proto, err := b.sanitizer.ResolveType(typeName, raw)
		if err != nil {
			b.err = errWrapf(err, "field %s.%s", b.class.Name, fieldName)
			return
		}
		b.class.fields = append(b.class.fields, structFieldBinding{name: fieldName, prototype: proto})
	})
}

// Hide marks fields as present but omitted from FieldNames/Snapshot
// (spec §4.5's "Hidden fields").
func Hide(names ...string) StructOption {
	return structOptionFunc(func(b *structBuild) {
		for _, n := range names {
			b.class.Hidden[normalizeName(n)] = true
		}
	})
}

// NewStructClass builds and registers a StructClass. Field declarations
// are sanitized eagerly, once, here — matching spec §3's "schemas are
// declared once at class level (immutable after declaration)" and the
// "sanitized-parameters caching" design note: this *is* the memoized
// sanitize pass, just performed once up front rather than lazily cached
// on first use. NewStructClass panics on a declaration-time error
// (duplicate/reserved field name, unknown nested type, bad endian) the
// same way dig's MustRegister panics on a malformed constructor — these
// are programmer errors in the schema, not runtime data errors.
func NewStructClass(name string, opts ...StructOption) *StructClass {
	class := &StructClass{
		Name:   name,
		Hidden: make(map[string]bool),
		Accepted: NewAcceptedParameters().
			Optional("onlyif", "check_offset", "adjust_offset").
			MutuallyExclusive("check_offset", "adjust_offset"),
	}
	b := &structBuild{class: class, sanitizer: DefaultSanitizer, symbolRefs: graph.New()}

	var rest []StructOption
	for _, opt := range opts {
		if eo, ok := opt.(endianOption); ok {
			eo.apply(b)
		} else {
			rest = append(rest, opt)
		}
	}

	applyRest := func() error {
		for _, opt := range rest {
			opt.apply(b)
			if b.err != nil {
				return b.err
			}
		}
		return nil
	}

	var err error
	if class.Endian != endianUnset {
		err = b.sanitizer.WithEndian(class.Endian, applyRest)
	} else {
		err = applyRest()
	}
	if err != nil {
		panic(errWrapf(err, "declared at %s", digreflect.CallerFrame()))
	}
	if b.err != nil {
		panic(errWrapf(b.err, "declared at %s", digreflect.CallerFrame()))
	}

	localFields := make(map[string]bool, len(class.fields))
	for _, fb := range class.fields {
		localFields[fb.name] = true
	}
	if path, found := b.symbolRefs.DetectCycle(); found {
		// Only a cycle among this struct's own fields is a genuine
		// declaration error; a bare Symbol naming something outside this
		// struct resolves up the parent chain instead and is validated
		// there, not here.
		cycleIsLocal := true
		for _, name := range splitCyclePath(path) {
			if !localFields[name] {
				cycleIsLocal = false
				break
			}
		}
		if cycleIsLocal {
			panic(errWrapf(ErrSymbolCycle, "%s: %s (declared at %s)", name, path, digreflect.CallerFrame()))
		}
	}

	class.ctor = func(params *SanitizedParameters, parent Node) (Node, error) {
		s := &Struct{baseNode: baseNode{params: params}, class: class}
		s.children = make([]Node, len(class.fields))
		s.names = make([]string, len(class.fields))
		for i, fb := range class.fields {
			child, err := fb.prototype.New(s)
			if err != nil {
				return nil, errWrapf(err, "%s.%s", class.Name, fb.name)
			}
			s.children[i] = child
			s.names[i] = fb.name
		}
		return s, nil
	}

	RegisterType(name, endianUnset, &Class{Name: name, Kind: KindStruct, Accepted: class.Accepted, New: class.ctor})
	return class
}

// New instantiates a root-level (parentless) instance of this class,
// the entry point every call into the package-level Read/Write/Assign
// helpers starts from.
func (c *StructClass) New() (Node, error) {
	proto, err := DefaultSanitizer.ResolveType(c.Name, nil)
	if err != nil {
		return nil, err
	}
	return proto.New(nil)
}

// Struct is the Node implementation for a StructClass instance: an
// ordered collection of named child nodes (spec §4.5).
type Struct struct {
	baseNode
	class    *StructClass
	children []Node
	names    []string
}

var _ Node = (*Struct)(nil)

func (s *Struct) Kind() NodeKind { return KindStruct }

// FieldNames returns declared, non-hidden field names in declaration
// order.
func (s *Struct) FieldNames() []string {
	var out []string
	for _, n := range s.names {
		if !s.class.Hidden[n] {
			out = append(out, n)
		}
	}
	return out
}

// Field looks up a child by name (string or symbolic spelling), including
// hidden fields (spec §4.5: "still read, written, and reachable by name").
func (s *Struct) Field(name string) (Node, bool) {
	name = normalizeName(name)
	for i, n := range s.names {
		if n == name {
			return s.children[i], true
		}
	}
	return nil, false
}

func (s *Struct) Callable(name string) (func(Evaluator) (interface{}, error), bool) {
	if child, ok := s.Field(name); ok {
		return func(Evaluator) (interface{}, error) {
			return child.Snapshot()
		}, true
	}
	return nil, false
}

// offsetOfChild sums NumBits of preceding visible, onlyif-passing
// children (spec §4.5's offset_of), padding interrupted bit-field runs to
// a byte boundary the same way sumChildBits does for NumBits below.
func (s *Struct) offsetOfChild(child Node) (int64, error) {
	bits, err := sumChildBits(s.children, child)
	if err != nil {
		return 0, err
	}
	return bits.Bytes(), nil
}

func (s *Struct) Read(z *IO) error {
	include, err := evalOnlyIf(s)
	if err != nil {
		return err
	}
	if !include {
		s.Clear()
		return nil
	}
	return driverRead(s, z, func() error {
		for _, c := range s.children {
			if err := c.Read(z); err != nil {
				return errWrapf(err, "%s", s.class.Name)
			}
		}
		return nil
	})
}

func (s *Struct) Write(z *IO) error {
	include, err := evalOnlyIf(s)
	if err != nil {
		return err
	}
	if !include {
		return nil
	}
	return driverWrite(s, z, func() error {
		for _, c := range s.children {
			if err := c.Write(z); err != nil {
				return errWrapf(err, "%s", s.class.Name)
			}
		}
		return nil
	})
}

// NumBits sums children's bit sizes the way IO's shared bit buffer
// actually accumulates them (spec §4.8/§4.9): a byte-aligned sibling pads
// any preceding run of bit-packed children to a full byte rather than
// sharing it, so the sum stays in lockstep with what Read/Write actually
// consume on the wire (see sumChildBits in node.go).
func (s *Struct) NumBits() (BitSize, error) {
	include, err := evalOnlyIf(s)
	if err != nil {
		return 0, err
	}
	if !include {
		return 0, nil
	}
	return sumChildBits(s.children, nil)
}

func (s *Struct) Snapshot() (interface{}, error) {
	include, err := evalOnlyIf(s)
	if err != nil {
		return nil, err
	}
	if !include {
		return nil, nil
	}
	out := make(map[string]interface{}, len(s.children))
	for i, c := range s.children {
		if s.class.Hidden[s.names[i]] {
			continue
		}
		active, err := evalOnlyIf(c)
		if err != nil {
			return nil, err
		}
		if !active {
			continue
		}
		v, err := c.Snapshot()
		if err != nil {
			return nil, err
		}
		out[s.names[i]] = v
	}
	return out, nil
}

func (s *Struct) Assign(value interface{}) error {
	m, ok := value.(map[string]interface{})
	if !ok {
		return errWrapf(ErrValidityError, "%s.Assign: expected map[string]interface{}, got %T", s.class.Name, value)
	}
	for i, name := range s.names {
		if v, ok := m[name]; ok {
			if err := s.children[i].Assign(v); err != nil {
				return errWrapf(err, "%s.%s", s.class.Name, name)
			}
		}
	}
	return nil
}

func (s *Struct) Clear() {
	for _, c := range s.children {
		c.Clear()
	}
}

func (s *Struct) Cleared() bool {
	for _, c := range s.children {
		if !c.Cleared() {
			return false
		}
	}
	return true
}

func (s *Struct) Inspect() string {
	out := "{"
	for i, n := range s.names {
		if i > 0 {
			out += ", "
		}
		out += n + ": " + s.children[i].Inspect()
	}
	return out + "}"
}
