// Copyright (c) 2017 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package bindata

import (
	stderrors "errors"
	"fmt"
)

// Sentinel errors for the taxonomy in the bindata error model. Failures the
// engine raises itself unwrap (via errors.Is/errors.Unwrap) to exactly one
// of these; an error returned by a codec's Encode, or a non-EOF error from
// the underlying stream during AtEOF, is passed through unwrapped.
var (
	ErrUnknownType              = stderrors.New("bindata: unknown type")
	ErrUnknownEndian            = stderrors.New("bindata: unknown endian")
	ErrInvalidName              = stderrors.New("bindata: invalid parameter name")
	ErrDuplicateField           = stderrors.New("bindata: duplicate field name")
	ErrReservedName             = stderrors.New("bindata: reserved field name")
	ErrNilParameter             = stderrors.New("bindata: nil parameter value")
	ErrMissingParameter         = stderrors.New("bindata: missing mandatory parameter")
	ErrMutualExclusionViolation = stderrors.New("bindata: mutually exclusive parameters both present")
	ErrValidityError            = stderrors.New("bindata: validity check failed")
	ErrOffsetMismatch           = stderrors.New("bindata: offset mismatch")
	ErrEndOfStream              = stderrors.New("bindata: unexpected end of stream")
	ErrUnresolvedSymbol         = stderrors.New("bindata: unresolved symbol")
	ErrUnknownChoice            = stderrors.New("bindata: unknown choice selection")
	ErrSymbolCycle              = stderrors.New("bindata: cyclic symbol reference")
)

// wrappedError is a wrapper around error that tracks the root cause of the
// error, the same shape as dig's error.go: Error() renders the accumulated
// context, Unwrap exposes the sentinel for errors.Is.
type wrappedError struct {
	rootCause error
	err       error
}

func (e *wrappedError) Error() string { return e.err.Error() }

func (e *wrappedError) Unwrap() error { return e.rootCause }

// errWrapf wraps an existing error with more contextual information.
//
// The message for the returned error is the provided message prepended to
// the provided error's message, separated by ": ". The given error is
// treated as the root cause of the returned error, retrievable with
// errors.Is/errors.As/errors.Unwrap. If the provided error already knew its
// root cause (it is itself a *wrappedError), that root cause is retained:
//
//	errors.Is(errWrapf(errWrapf(sentinel, ...), ...), sentinel) == true
func errWrapf(err error, msg string, args ...interface{}) error {
	if err == nil {
		return nil
	}

	rootCause := err
	if we, ok := err.(*wrappedError); ok {
		rootCause = we.rootCause
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	return &wrappedError{
		rootCause: rootCause,
		err:       fmt.Errorf("%s: %w", msg, err),
	}
}
