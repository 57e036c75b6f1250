// Copyright 2017-2018 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package parse

import "fmt"

// Kind classifies a fatal parse failure.
type Kind int

const (
	// LexError is an illegal byte or a word-buffer overflow from the lexer.
	LexError Kind = iota
	// SyntaxError is a state receiving a current/next token kind outside its accept set.
	SyntaxError
	// StructureError is a mismatched end tag, an empty node stack where one
	// was required, or an incomplete document (node stack depth != 1 at EOF).
	StructureError
	// CapacityError is a bounded queue or stack at capacity.
	CapacityError
	// IoError is a failure to open, read, or close the input.
	IoError
)

func (k Kind) String() string {
	switch k {
	case LexError:
		return "LexError"
	case SyntaxError:
		return "SyntaxError"
	case StructureError:
		return "StructureError"
	case CapacityError:
		return "CapacityError"
	case IoError:
		return "IoError"
	default:
		return "UnknownError"
	}
}

// Error is the single error type the parser reports. It names the failing
// state and kind, per spec: "diagnostics name the failing state/operation
// and the kind."
type Error struct {
	Kind   Kind
	State  string
	Reason string
	Err    error // wrapped cause, if any (e.g. a *lexer.Error or io error)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s(): %s: %s: %v", e.State, e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s(): %s: %s", e.State, e.Kind, e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

func newErr(state string, kind Kind, reason string) *Error {
	return &Error{State: state, Kind: kind, Reason: reason}
}

func wrapErr(state string, kind Kind, reason string, err error) *Error {
	return &Error{State: state, Kind: kind, Reason: reason, Err: err}
}

// WrapIoError wraps err as an IoError, for use by callers driving the
// parser over an external reader (see markup.ParseFile).
func WrapIoError(op string, err error) *Error {
	return wrapErr(op, IoError, "i/o failure", err)
}
