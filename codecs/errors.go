package codecs

import "fmt"

// errNotNumeric reports a value that cannot be coerced to the numeric type
// a codec needs to encode. This is the only error this package raises
// that is specific to it; everything else (short reads) bubbles up the
// underlying io.Reader's own error (io.EOF / io.ErrUnexpectedEOF), which
// BasePrimitive in the root package translates to ErrEndOfStream.
func errNotNumeric(v interface{}) error {
	return fmt.Errorf("codecs: value %v (%T) is not numeric", v, v)
}
