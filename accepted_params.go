package bindata

import "sort"

// reservedEvaluatorNames are the method names exposed by the lazy evaluator
// (see lazy.go's Evaluator interface) plus the universally-available
// runtime functions every node exposes. A user parameter name that collides
// with one of these is ambiguous at lookup time ("is `index` the parameter,
// or the evaluator's index() resolver?") and is rejected at declaration time
// per spec §4.1. "type" is special-cased as always permitted, matching the
// single documented exception in spec §4.1.
var reservedEvaluatorNames = map[string]bool{
	"index":    true,
	"parent":   true,
	"offset":   true,
	"snapshot": true,
	"clear":    true,
	"read":     true,
	"write":    true,
	"assign":   true,
	"numbytes": true,
}

// AcceptedParameters is a per-class declaration of the four disjoint
// parameter sets a node class recognizes, matching spec §4.1. It is built
// once at class-definition time (see NewAcceptedParameters / Extend) and is
// immutable thereafter; Sanitizer consults it for every instantiation.
type AcceptedParameters struct {
	mandatory map[string]bool
	optional  map[string]bool
	defaults  map[string]Value
	exclusive [][2]string
}

// NewAcceptedParameters builds an empty declaration, the root of an
// inheritance chain (see Extend).
func NewAcceptedParameters() *AcceptedParameters {
	return &AcceptedParameters{
		mandatory: make(map[string]bool),
		optional:  make(map[string]bool),
		defaults:  make(map[string]Value),
	}
}

// Extend copies this declaration's four sets into a new one, the way a
// subclass in spec §4.1 begins with its parent's sets and accumulates
// additions. Duplicates added to the same set after Extend are deduplicated
// by virtue of being backed by maps (mandatory/optional/defaults) or a
// dedup pass over mutually-exclusive pairs (see MutuallyExclusive).
func (a *AcceptedParameters) Extend() *AcceptedParameters {
	n := NewAcceptedParameters()
	for k := range a.mandatory {
		n.mandatory[k] = true
	}
	for k := range a.optional {
		n.optional[k] = true
	}
	for k, v := range a.defaults {
		n.defaults[k] = v
	}
	n.exclusive = append(n.exclusive, a.exclusive...)
	return n
}

// Mandatory declares names that must appear in user params or construction
// fails with ErrMissingParameter.
func (a *AcceptedParameters) Mandatory(names ...string) *AcceptedParameters {
	for _, name := range names {
		a.checkName(name)
		a.mandatory[name] = true
	}
	return a
}

// Optional declares names permitted but not required.
func (a *AcceptedParameters) Optional(names ...string) *AcceptedParameters {
	for _, name := range names {
		a.checkName(name)
		a.optional[name] = true
	}
	return a
}

// Default declares a literal or deferred value applied when the user omits
// name. A name with a default is implicitly optional.
func (a *AcceptedParameters) Default(name string, value Value) *AcceptedParameters {
	a.checkName(name)
	a.optional[name] = true
	a.defaults[name] = value
	return a
}

// MutuallyExclusive declares an unordered pair; construction fails with
// ErrMutualExclusionViolation if both are present. Pairs are deduplicated
// (unordered) so repeated declarations across Extend chains are harmless.
func (a *AcceptedParameters) MutuallyExclusive(x, y string) *AcceptedParameters {
	for _, pair := range a.exclusive {
		if (pair[0] == x && pair[1] == y) || (pair[0] == y && pair[1] == x) {
			return a
		}
	}
	a.exclusive = append(a.exclusive, [2]string{x, y})
	return a
}

// checkName panics with InvalidName-wrapped detail if name shadows a
// reserved evaluator method or runtime function. "type" is the one
// documented exception. Declaring an invalid name is a programming error
// caught at class-definition time, not a runtime failure path, so it
// panics the way dig's registerConstructor rejects malformed constructor
// shapes immediately rather than deferring the check to Resolve.
func (a *AcceptedParameters) checkName(name string) {
	if name == "type" {
		return
	}
	if reservedEvaluatorNames[name] {
		panic(errWrapf(ErrInvalidName, "parameter name %q", name))
	}
}

// names returns the mandatory ∪ optional set, sorted, for diagnostics.
func (a *AcceptedParameters) names() []string {
	seen := make(map[string]bool)
	var out []string
	for k := range a.mandatory {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	for k := range a.optional {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
