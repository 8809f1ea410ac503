package bindata

import "sync"

// Endian identifies the byte and bit order a primitive or nested type should
// use when none is declared explicitly on the field; it is inherited down
// the struct tree unless a nested Endian_(...) option overrides it.
type Endian int

const (
	// endianUnset is the zero value: "no endian declared yet", distinct
	// from either concrete endian so inheritance can detect it.
	endianUnset Endian = iota
	LittleEndian
	BigEndian
)

func (e Endian) String() string {
	switch e {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return "unset"
	}
}

// typeKey uniquely identifies a registered class: a symbolic type name plus
// an optional endian suffix. Types that are endian-agnostic (structs,
// arrays, choices) register under endianUnset and match any requested
// endian; primitives typically register once per endian.
type typeKey struct {
	name   string
	endian Endian
}

// Constructor builds a node instance from sanitized parameters and an
// optional parent. It is a Class's payload, invoked once sanitization has
// produced a closed parameter bundle.
type Constructor func(params *SanitizedParameters, parent Node) (Node, error)

// SanitizeHook is a class's custom sanitization step (spec §4.2 step 3):
// structs install a :fields parameter and cascade endian/hide, arrays
// resolve their element-type specification, choices resolve the variant-
// type map. It receives the in-progress raw parameter map (already merged
// with defaults) and the Sanitizer driving the pass (for nested type
// resolution and endian-context access) and returns the map with any
// additional derived entries installed.
type SanitizeHook func(s *Sanitizer, raw map[string]Value) (map[string]Value, error)

// Class is a registered type: its accepted-parameter declaration, its
// custom sanitize hook, and the constructor that turns sanitized
// parameters into a live Node. This is the registry's payload, populated
// once at class-definition time (see RegisterType), the same shape as
// dig's Container mapping a reflect.Type to a constructor-bearing node in
// container.go.
type Class struct {
	Name     string
	Kind     NodeKind
	Accepted *AcceptedParameters
	Sanitize SanitizeHook
	New      Constructor
}

// Registry is a process-wide mapping from (type-name, endian?) to Class,
// mirroring dig's Container.nodes map keyed by nodeKey in
// container.go/key.go. Registration is only valid during schema
// declaration; once schemas are in use concurrently no further writes are
// expected, matching the single-writer-before-readers contract of §5.
type Registry struct {
	mu      sync.RWMutex
	classes map[typeKey]*Class
}

// NewRegistry returns an empty Registry. Most callers use the process-wide
// DefaultRegistry instead of constructing their own, but an isolated
// Registry is useful for tests that register scratch types.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[typeKey]*Class)}
}

// DefaultRegistry is the process-wide registry that package-level
// RegisterType/Lookup operate on, matching the "process-wide mapping"
// invariant of spec §3.
var DefaultRegistry = NewRegistry()

// Register installs a class for name at the given endian. Passing
// endianUnset registers an endian-agnostic type (structs, arrays, choices,
// skip/rest/wrapper); such registrations match a lookup at any endian.
func (r *Registry) Register(name string, endian Endian, class *Class) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes[typeKey{name: name, endian: endian}] = class
}

// Lookup resolves a type name under the given endian context. It first
// tries an exact (name, endian) match, then falls back to the
// endian-agnostic registration so container kinds need not be registered
// per-endian.
func (r *Registry) Lookup(name string, endian Endian) (*Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if class, ok := r.classes[typeKey{name: name, endian: endian}]; ok {
		return class, nil
	}
	if class, ok := r.classes[typeKey{name: name, endian: endianUnset}]; ok {
		return class, nil
	}
	return nil, errWrapf(ErrUnknownType, "type %q (endian %v)", name, endian)
}

// RegisterType is the package-level convenience wrapping
// DefaultRegistry.Register, matching dig's package-level MustRegister
// naming convention.
func RegisterType(name string, endian Endian, class *Class) {
	DefaultRegistry.Register(name, endian, class)
}
