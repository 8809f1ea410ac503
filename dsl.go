package bindata

// ParamOption sets one entry in a field's raw parameter map, the
// per-field half of spec §6's schema-declaration DSL (StructOption
// configures the declaration itself; ParamOption configures one field's
// parameters within it).
type ParamOption func(map[string]Value)

func param(name string, v Value) ParamOption {
	return func(m map[string]Value) { m[name] = v }
}

// InitialValue sets the value used when a primitive is in the clear
// state.
func InitialValue(v Value) ParamOption { return param("initial_value", v) }

// Bind sets a computed `value`: assignment is allowed but reads always
// overwrite with this computed result (spec §4.4, open question #1).
func Bind(v Value) ParamOption { return param("value", v) }

// CheckValue requires the decoded value to equal (or match, if deferred)
// v after a read, failing ErrValidityError on mismatch.
func CheckValue(v Value) ParamOption { return param("check_value", v) }

// OnlyIf skips this field entirely (zero bytes, absent from snapshot)
// when v evaluates to false.
func OnlyIf(v Value) ParamOption { return param("onlyif", v) }

// CheckOffset requires the IO position (relative to the read's origin)
// to equal v when this field is about to be read.
func CheckOffset(v Value) ParamOption { return param("check_offset", v) }

// AdjustOffset seeks to v (relative to the read's origin) before this
// field is read.
func AdjustOffset(v Value) ParamOption { return param("adjust_offset", v) }

// Length sets a string's or skip's fixed length (arrays use
// InitialLength).
func Length(v Value) ParamOption { return param("length", v) }

// ReadLength sets a string's length (spec §8 scenario 3's Pascal-style
// string). When present it takes precedence over Length for reads,
// writes and size computation alike; it is not limited to reads.
func ReadLength(v Value) ParamOption { return param("read_length", v) }

// PadChar sets the padding byte a fixed string encodes with.
func PadChar(v Value) ParamOption { return param("pad_char", v) }

// TrimPadding controls whether a fixed string's decode strips trailing
// pad bytes.
func TrimPadding(v Value) ParamOption { return param("trim_padding", v) }

// MaxLength bounds a zero-terminated string's total wire length
// (including the terminator).
func MaxLength(v Value) ParamOption { return param("max_length", v) }

// InitialLength sets an array's fixed element count.
func InitialLength(v Value) ParamOption { return param("initial_length", v) }

// ReadUntilExpr sets an array's termination predicate, evaluated after
// each element is read; the special value ReadUntilEOF means "read while
// the stream has more".
func ReadUntilExpr(fn ExprFunc) ParamOption { return param("read_until", DeferExpr(fn)) }

// readUntilEOFMarker is the literal value read_until may hold instead of
// a predicate expression, meaning "consume until end of stream" (spec
// §4.6).
type readUntilEOFMarker struct{}

// ReadUntilEOF is the "until end-of-stream" special read_until value.
var ReadUntilEOF = ParamOption(param("read_until", readUntilEOFMarker{}))

// ElementType sets an array's homogeneous element type by name, with the
// per-element parameters every element will share.
func ElementType(typeName string, elemOpts ...ParamOption) ParamOption {
	raw := make(map[string]Value)
	for _, o := range elemOpts {
		o(raw)
	}
	return param("type", arrayElementSpec{typeName: typeName, params: raw})
}

type arrayElementSpec struct {
	typeName string
	params   map[string]Value
}

// Selection sets a choice's selector expression.
func Selection(v Value) ParamOption { return param("selection", v) }

// CopyOnChange sets whether a choice migrates the previous active
// variant's snapshot into the newly selected one.
func CopyOnChange(v bool) ParamOption { return param("copy_on_change", v) }

// Choices declares a choice's selector-key -> type-name variant map.
func Choices(variants map[interface{}]string) ParamOption {
	return param("choices", choiceSpec{variants: variants})
}

type choiceSpec struct {
	variants map[interface{}]string
}
