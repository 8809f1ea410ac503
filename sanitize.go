package bindata

// SanitizedParameters is the closed, validated parameter bundle produced
// by Sanitizer.Sanitize (spec §4.2): every mandatory name is present, every
// mutually-exclusive pair has at most one member present, and any
// class-specific derived entries (a struct's :fields, an array's resolved
// element prototype, a choice's variant map) have been installed by the
// class's SanitizeHook.
type SanitizedParameters struct {
	class        *Class
	raw          map[string]Value
	allSanitized bool
}

// Get returns the raw (possibly still-lazy) value bound to name, and
// whether it was present after sanitization (including defaults).
func (p *SanitizedParameters) Get(name string) (Value, bool) {
	v, ok := p.raw[name]
	return v, ok
}

// AllSanitized reports whether this bundle completed the full sanitize
// pipeline (always true for anything Sanitizer.Sanitize returns without
// error; exposed for assertions in tests).
func (p *SanitizedParameters) AllSanitized() bool { return p.allSanitized }

// SanitizedPrototype is a frozen (class, sanitized-params) pair that can be
// repeatedly instantiated with different parents (spec §4.2), the
// mechanism nested type specifications resolve to: an array's element
// type, a choice's per-key variant type, and a struct field's declared
// type are each sanitized once, eagerly, at schema-declaration time, then
// stamped out per read/instantiation.
type SanitizedPrototype struct {
	class  *Class
	params *SanitizedParameters
}

// New instantiates this prototype with the given parent (nil at the
// root), invoking the class's Constructor. The result always starts in
// the Cleared state (spec §3's "a freshly instantiated node is clear"),
// even for kinds whose Constructor leaves zero-valued fields that would
// not otherwise mean "clear" (a primitive's nil value, notably).
func (p *SanitizedPrototype) New(parent Node) (Node, error) {
	n, err := p.class.New(p.params, parent)
	if err != nil {
		return nil, errWrapf(err, "instantiate %s", p.class.Name)
	}
	n.setParent(parent)
	n.Clear()
	return n, nil
}

// Sanitizer drives the sanitize pipeline of spec §4.2 against a Registry,
// threading a current endian context through nested type resolutions
// (scoped push/run/restore, grounded on dig's Scope nesting in
// scope.go — see WithEndian).
type Sanitizer struct {
	registry    *Registry
	endianStack []Endian
}

// NewSanitizer builds a Sanitizer bound to registry, with an initial
// endian context of LittleEndian (overridden by the first Endian_(...)
// declaration a schema makes).
func NewSanitizer(registry *Registry) *Sanitizer {
	return &Sanitizer{registry: registry, endianStack: []Endian{LittleEndian}}
}

// DefaultSanitizer is the process-wide Sanitizer bound to DefaultRegistry.
var DefaultSanitizer = NewSanitizer(DefaultRegistry)

// CurrentEndian returns the endian context presently in effect.
func (s *Sanitizer) CurrentEndian() Endian {
	return s.endianStack[len(s.endianStack)-1]
}

// EndianExplicit reports whether some enclosing declaration pushed an
// endian context via WithEndian, as opposed to CurrentEndian() only
// reflecting the Sanitizer's own implicit base. Bit-type fields consult
// this to tell "no endian declared anywhere" (spec §6's MSB-first
// default) apart from "little was declared", which CurrentEndian() alone
// cannot distinguish since the base context is itself LittleEndian.
func (s *Sanitizer) EndianExplicit() bool {
	return len(s.endianStack) > 1
}

// WithEndian pushes a new endian context, runs fn, and restores the
// previous context on every exit path (including a panic unwinding
// through fn), matching spec §4.2's "restores on every exit path". An
// endian other than Little/BigEndian fails ErrUnknownEndian.
func (s *Sanitizer) WithEndian(e Endian, fn func() error) error {
	if e != LittleEndian && e != BigEndian {
		return errWrapf(ErrUnknownEndian, "endian %v", e)
	}
	s.endianStack = append(s.endianStack, e)
	defer func() {
		s.endianStack = s.endianStack[:len(s.endianStack)-1]
	}()
	return fn()
}

// Sanitize runs the five-step pipeline of spec §4.2 against rawParams for
// class, returning a closed SanitizedParameters bundle.
func (s *Sanitizer) Sanitize(class *Class, rawParams map[string]Value) (*SanitizedParameters, error) {
	// Step 1: reject nil-valued entries.
	for k, v := range rawParams {
		if v == nil {
			return nil, errWrapf(ErrNilParameter, "parameter %q", k)
		}
	}

	merged := make(map[string]Value, len(rawParams))
	for k, v := range rawParams {
		merged[k] = v
	}

	// Step 2: merge defaults for missing names.
	for name, def := range class.Accepted.defaults {
		if _, present := merged[name]; !present {
			merged[name] = def
		}
	}

	// Step 3: delegate to the class's custom sanitize hook.
	if class.Sanitize != nil {
		var err error
		merged, err = class.Sanitize(s, merged)
		if err != nil {
			return nil, err
		}
	}

	// Step 4: verify every mandatory name present.
	for name := range class.Accepted.mandatory {
		if _, present := merged[name]; !present {
			return nil, errWrapf(ErrMissingParameter, "%s requires %q", class.Name, name)
		}
	}

	// Step 5: verify no mutually-exclusive pair co-present.
	for _, pair := range class.Accepted.exclusive {
		_, aPresent := merged[pair[0]]
		_, bPresent := merged[pair[1]]
		if aPresent && bPresent {
			return nil, errWrapf(ErrMutualExclusionViolation, "%s: %q and %q", class.Name, pair[0], pair[1])
		}
	}

	return &SanitizedParameters{class: class, raw: merged, allSanitized: true}, nil
}

// ResolveType looks up typeName under the sanitizer's current endian
// context and sanitizes userParams against it, producing a
// SanitizedPrototype ready for repeated instantiation. This is how a
// field's `type:`/element-type/variant-type specification becomes a
// prototype eagerly, at schema-declaration time (spec §4.2).
func (s *Sanitizer) ResolveType(typeName string, userParams map[string]Value) (*SanitizedPrototype, error) {
	class, err := s.registry.Lookup(typeName, s.CurrentEndian())
	if err != nil {
		return nil, err
	}
	params, err := s.Sanitize(class, userParams)
	if err != nil {
		return nil, errWrapf(err, "sanitizing %s", typeName)
	}
	return &SanitizedPrototype{class: class, params: params}, nil
}
