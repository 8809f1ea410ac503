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

// Package digreflect locates the caller frame outside bindata itself, so
// a schema-declaration panic (duplicate field, unknown type, symbol
// cycle) can be annotated with the function:line of the NewStructClass call
// that triggered it rather than the frame inside struct.go where the
// panic actually happens.
package digreflect

import (
	"fmt"
	"runtime"
	"strings"
)

// CallerFrame returns a formatted "function:line" for the nearest stack
// frame outside the bindata package itself.
func CallerFrame() string {
	pcs := make([]uintptr, 16)
	// Skip runtime.Callers itself (1) and this function (2).
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return "n/a"
	}
	frames := runtime.CallersFrames(pcs[:n])
	for f, more := frames.Next(); more; f, more = frames.Next() {
		if isBindataFrame(f) {
			continue
		}
		return fmt.Sprintf("%s:%d", f.Function, f.Line)
	}
	return "n/a"
}

func isBindataFrame(f runtime.Frame) bool {
	if strings.Contains(f.File, "_test.go") {
		return false
	}
	return strings.Contains(f.Function, "github.com/justfalter/bindata.") ||
		strings.Contains(f.File, "github.com/justfalter/bindata/")
}
