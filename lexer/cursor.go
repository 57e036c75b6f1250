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

// Package lexer classifies a single line of input bytes into a token.Queue.
// It is a pure function of its Cursor: no state survives a call other than
// the cursor's own position, so a long document can be lexed one line at a
// time with the cursor resuming exactly where the previous call left off.
package lexer

// Cursor tracks a read position within a single line of input. The lexer
// never looks past the end of Line; newlines are delimiters handled by the
// caller (the driver), never tokens.
type Cursor struct {
	Line []byte
	Pos  int
}

// NewCursor returns a Cursor positioned at the start of line.
func NewCursor(line []byte) *Cursor {
	return &Cursor{Line: line}
}

// Done reports whether the cursor has consumed the whole line.
func (c *Cursor) Done() bool { return c.Pos >= len(c.Line) }

// Offset returns the cursor's current byte offset within its line.
func (c *Cursor) Offset() int { return c.Pos }
