// Copyright (c) 2022 Uber Technologies, Inc.
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

// Package digtest provides require.NoError-wrapping helpers for
// round-trip testing a schema Node, the same "halt the test on the
// first unexpected failure" ergonomics dig's own internal/digtest gives
// container.Provide/Invoke/Decorate, applied here to Read/Write instead.
package digtest

import (
	"bytes"
	"testing"

	"github.com/justfalter/bindata"
	"github.com/stretchr/testify/require"
)

// Harness wraps a *testing.T (or B) to provide RequireRead/RequireWrite
// helpers for exercising a schema Node without repeating t.Helper() and
// require.NoError boilerplate at every call site.
type Harness struct {
	t testing.TB
}

// New returns a Harness bound to t.
func New(t testing.TB) *Harness {
	return &Harness{t: t}
}

// RequireRead decodes data into n, halting the test if Read fails.
func (h *Harness) RequireRead(n bindata.Node, data []byte) {
	h.t.Helper()
	io := bindata.NewReaderIO(bytes.NewReader(data))
	require.NoError(h.t, n.Read(io), "failed to read")
}

// RequireWrite encodes n, halting the test if Write fails, and returns
// the produced bytes.
func (h *Harness) RequireWrite(n bindata.Node) []byte {
	h.t.Helper()
	var buf bytes.Buffer
	io := bindata.NewWriterIO(&buf)
	require.NoError(h.t, n.Write(io), "failed to write")
	return buf.Bytes()
}

// RequireRoundTrip reads data into n, re-encodes it, and asserts the
// re-encoded bytes equal data -- the canonical "decode(encode(x)) == x"
// check most schema tests want.
func (h *Harness) RequireRoundTrip(n bindata.Node, data []byte) {
	h.t.Helper()
	h.RequireRead(n, data)
	got := h.RequireWrite(n)
	require.Equal(h.t, data, got, "round-trip mismatch")
}
