package bindata

import "github.com/justfalter/bindata/codecs"

// This file populates DefaultRegistry with every built-in type spec §6
// names: the byte-aligned numeric and string primitives (registered per
// endian where the wire layout is endian-sensitive), the bit-packed
// integers (endian-agnostic registration name, endian fixed when the
// field is declared -- see newBitPrimitiveClass), and the generic
// container kinds --
// array, choice, wrapper, skip, rest -- each registered once under
// endianUnset the same way StructClass registers itself in struct.go.
func init() {
	registerByteInts()
	registerFloats()
	registerBitInts()
	registerStrings()
	registerArrayClass()
	registerChoiceClass()
	registerWrapperClass()
	registerSkipClass()
	registerRestClass()
}

func toCodecsOrder(e Endian) codecs.ByteOrder {
	if e == BigEndian {
		return codecs.BigEndian
	}
	return codecs.LittleEndian
}

func newPrimitiveClass(name string, endian Endian, codec codecs.Codec, dynamicString bool, accepted *AcceptedParameters) *Class {
	return &Class{
		Name:     name,
		Kind:     KindPrimitive,
		Accepted: accepted,
		New: func(params *SanitizedParameters, parent Node) (Node, error) {
			return &BasePrimitive{
				baseNode:      baseNode{params: params},
				codec:         codec,
				endian:        endian,
				dynamicString: dynamicString,
			}, nil
		},
	}
}

// newBitPrimitiveClass's SanitizeHook stashes the sanitizer's current
// endian context (spec §4.2's scoped with_endian) at the moment the bit
// field is declared, but only when some enclosing declaration actually
// pushed one -- bit types register endian-agnostically and so have no
// per-endian Class the way byte-aligned integers do, and unlike those,
// their undeclared default is big (MSB-first, spec §6), not the
// Sanitizer's own little-endian base context. The Constructor below reads
// the stashed value back out, defaulting to BigEndian when absent.
func newBitPrimitiveClass(name string, bitCodec codecs.BitCodec) *Class {
	accepted := commonPrimitiveParams()
	return &Class{
		Name:     name,
		Kind:     KindPrimitive,
		Accepted: accepted,
		Sanitize: func(s *Sanitizer, raw map[string]Value) (map[string]Value, error) {
			if s.EndianExplicit() {
				raw["__bit_endian"] = s.CurrentEndian()
			}
			return raw, nil
		},
		New: func(params *SanitizedParameters, parent Node) (Node, error) {
			endian, ok := params.raw["__bit_endian"].(Endian)
			if !ok {
				endian = BigEndian
			}
			return &BasePrimitive{
				baseNode: baseNode{params: params},
				bitCodec: bitCodec,
				endian:   endian,
			}, nil
		},
	}
}

// registerByteInts registers uint8/16/32/64 and int8/16/32/64, each
// under both endians (width-1 types register endian-agnostically since
// byte order is meaningless for a single byte).
func registerByteInts() {
	widths := []int{1, 2, 4, 8}
	names := map[int]string{1: "8", 2: "16", 4: "32", 8: "64"}
	for _, endian := range []Endian{LittleEndian, BigEndian} {
		order := toCodecsOrder(endian)
		for _, w := range widths {
			suffix := names[w]
			uAccepted := commonPrimitiveParams()
			uClass := newPrimitiveClass("uint"+suffix, endian, codecs.NewUint(w, order), false, uAccepted)
			iAccepted := commonPrimitiveParams()
			iClass := newPrimitiveClass("int"+suffix, endian, codecs.NewInt(w, order), false, iAccepted)
			if w == 1 {
				RegisterType("uint"+suffix, endianUnset, uClass)
				RegisterType("int"+suffix, endianUnset, iClass)
			} else {
				RegisterType("uint"+suffix, endian, uClass)
				RegisterType("int"+suffix, endian, iClass)
			}
		}
	}
}

func registerFloats() {
	for _, endian := range []Endian{LittleEndian, BigEndian} {
		order := toCodecsOrder(endian)
		RegisterType("float32", endian, newPrimitiveClass("float32", endian, codecs.NewFloat32(order), false, commonPrimitiveParams()))
		RegisterType("float64", endian, newPrimitiveClass("float64", endian, codecs.NewFloat64(order), false, commonPrimitiveParams()))
	}
}

// registerBitInts registers bit1..bit64 (unsigned) and sbit1..sbit64
// (signed), each endian-agnostic: a bit field's endian determines the
// MSB/LSB drain order within IO's shared bit buffer (spec §4.8), which
// BasePrimitive reads off p.endian at the point of use -- set here from
// the containing schema's endian context at the moment the field is
// declared, since bit fields don't register per-endian the way
// byte-aligned integers do.
func registerBitInts() {
	for width := uint8(1); width <= 64; width++ {
		w := width
		RegisterType(bitTypeName(w, false), endianUnset, newBitPrimitiveClass(bitTypeName(w, false), codecs.NewBitInt(w, false)))
		RegisterType(bitTypeName(w, true), endianUnset, newBitPrimitiveClass(bitTypeName(w, true), codecs.NewBitInt(w, true)))
	}
}

func bitTypeName(width uint8, signed bool) string {
	n := "bit"
	if signed {
		n = "sbit"
	}
	return n + itoa(int(width))
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// registerStrings registers "string" (fixed-width, pad_char/
// trim_padding/length-or-read_length aware, dynamicString so those
// per-field parameters are honored) and "zstring" (NUL-terminated,
// optional max_length), both endian-agnostic since neither has a
// multi-byte wire layout.
func registerStrings() {
	stringAccepted := commonPrimitiveParams().Extend().
		Optional("length", "read_length", "pad_char", "trim_padding").
		Default("pad_char", byte(' ')).
		Default("trim_padding", true)
	RegisterType("string", endianUnset, newPrimitiveClass("string", endianUnset, codecs.NewFixedString(' ', true), true, stringAccepted))

	zstringAccepted := commonPrimitiveParams().Extend().
		Optional("max_length")
	RegisterType("zstring", endianUnset, newPrimitiveClass("zstring", endianUnset, codecs.NewZeroTermString(), false, zstringAccepted))
}

// registerArrayClass installs the single generic "array" Class (spec
// §4.6). Its SanitizeHook resolves the `type` parameter -- built by
// ElementType(...) into an arrayElementSpec -- into a SanitizedPrototype
// exactly the way FieldDecl resolves a nested struct field's type,
// except the resolution happens inside the class's own sanitize hook
// (which runs when FieldDecl sanitizes the array field), since "array"
// has no per-declaration Go-level type the way each StructClass does.
func registerArrayClass() {
	accepted := NewAcceptedParameters().
		Mandatory("type").
		Optional("initial_length", "read_until", "onlyif", "check_offset", "adjust_offset").
		MutuallyExclusive("initial_length", "read_until").
		MutuallyExclusive("check_offset", "adjust_offset")

	hook := func(s *Sanitizer, raw map[string]Value) (map[string]Value, error) {
		specV, ok := raw["type"]
		if !ok {
			return raw, nil
		}
		spec, ok := specV.(arrayElementSpec)
		if !ok {
			return nil, errWrapf(ErrValidityError, "array type must be built with ElementType(...)")
		}
		proto, err := s.ResolveType(spec.typeName, spec.params)
		if err != nil {
			return nil, errWrapf(err, "array element type %q", spec.typeName)
		}
		raw["__element_prototype"] = proto
		return raw, nil
	}

	RegisterType("array", endianUnset, &Class{
		Name:     "array",
		Kind:     KindArray,
		Accepted: accepted,
		Sanitize: hook,
		New: func(params *SanitizedParameters, parent Node) (Node, error) {
			proto, _ := params.raw["__element_prototype"].(*SanitizedPrototype)
			if proto == nil {
				return nil, errWrapf(ErrMissingParameter, "array requires type")
			}
			return &Array{baseNode: baseNode{params: params}, elementPrototype: proto}, nil
		},
	})
}

// registerChoiceClass installs the single generic "choice" Class (spec
// §4.7). Its SanitizeHook resolves the `choices` key->type-name map
// (built by Choices(...)) into a key->SanitizedPrototype map, one
// ResolveType call per declared variant.
func registerChoiceClass() {
	accepted := NewAcceptedParameters().
		Mandatory("choices").
		Default("copy_on_change", false).
		Optional("selection", "onlyif", "check_offset", "adjust_offset").
		MutuallyExclusive("check_offset", "adjust_offset")

	hook := func(s *Sanitizer, raw map[string]Value) (map[string]Value, error) {
		specV, ok := raw["choices"]
		if !ok {
			return raw, nil
		}
		spec, ok := specV.(choiceSpec)
		if !ok {
			return nil, errWrapf(ErrValidityError, "choices must be built with Choices(...)")
		}
		variants := make(map[interface{}]*SanitizedPrototype, len(spec.variants))
		for key, typeName := range spec.variants {
			proto, err := s.ResolveType(typeName, nil)
			if err != nil {
				return nil, errWrapf(err, "choice variant %v (%s)", key, typeName)
			}
			variants[key] = proto
		}
		raw["__variants"] = variants
		return raw, nil
	}

	RegisterType("choice", endianUnset, &Class{
		Name:     "choice",
		Kind:     KindChoice,
		Accepted: accepted,
		Sanitize: hook,
		New: func(params *SanitizedParameters, parent Node) (Node, error) {
			variants, _ := params.raw["__variants"].(map[interface{}]*SanitizedPrototype)
			copyOnChange, _ := params.raw["copy_on_change"].(bool)
			return &Choice{
				baseNode:     baseNode{params: params},
				variants:     variants,
				copyOnChange: copyOnChange,
			}, nil
		},
	})
}

// registerWrapperClass installs the single generic "wrapper" Class,
// resolving its mandatory `type` the same way array resolves an element
// type, but for exactly one child.
func registerWrapperClass() {
	accepted := NewAcceptedParameters().
		Mandatory("type").
		Optional("onlyif", "check_offset", "adjust_offset").
		MutuallyExclusive("check_offset", "adjust_offset")

	hook := func(s *Sanitizer, raw map[string]Value) (map[string]Value, error) {
		specV, ok := raw["type"]
		if !ok {
			return raw, nil
		}
		spec, ok := specV.(arrayElementSpec)
		if !ok {
			return nil, errWrapf(ErrValidityError, "wrapper type must be built with ElementType(...)")
		}
		proto, err := s.ResolveType(spec.typeName, spec.params)
		if err != nil {
			return nil, errWrapf(err, "wrapper inner type %q", spec.typeName)
		}
		raw["__inner_prototype"] = proto
		return raw, nil
	}

	RegisterType("wrapper", endianUnset, &Class{
		Name:     "wrapper",
		Kind:     KindWrapper,
		Accepted: accepted,
		Sanitize: hook,
		New: func(params *SanitizedParameters, parent Node) (Node, error) {
			proto, _ := params.raw["__inner_prototype"].(*SanitizedPrototype)
			if proto == nil {
				return nil, errWrapf(ErrMissingParameter, "wrapper requires type")
			}
			return &Wrapper{baseNode: baseNode{params: params}, innerPrototype: proto}, nil
		},
	})
}

func registerSkipClass() {
	accepted := NewAcceptedParameters().
		Mandatory("length").
		Optional("onlyif", "check_offset", "adjust_offset").
		MutuallyExclusive("check_offset", "adjust_offset")

	RegisterType("skip", endianUnset, &Class{
		Name:     "skip",
		Kind:     KindSkip,
		Accepted: accepted,
		New: func(params *SanitizedParameters, parent Node) (Node, error) {
			return &Skip{baseNode: baseNode{params: params}}, nil
		},
	})
}

func registerRestClass() {
	accepted := NewAcceptedParameters().
		Optional("onlyif", "check_offset", "adjust_offset").
		MutuallyExclusive("check_offset", "adjust_offset")

	RegisterType("rest", endianUnset, &Class{
		Name:     "rest",
		Kind:     KindRest,
		Accepted: accepted,
		New: func(params *SanitizedParameters, parent Node) (Node, error) {
			return &Rest{baseNode: baseNode{params: params}}, nil
		},
	})
}
