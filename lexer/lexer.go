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

package lexer

import (
	"github.com/dbern/markup/token"
)

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isWordByte reports whether b continues a Word run: an ASCII letter, or
// any byte of a UTF-8 encoded rune (lead or continuation byte, always
// >= 0x80). The classifier itself stays byte-oriented and does not decode
// runes; non-ASCII bytes are carried through a Word token's Data verbatim
// so that a later, optional pass (dom.FoldWidth, gated behind
// Options.NormalizeWidth) can normalize them without the lexer itself
// becoming Unicode-aware.
func isWordByte(b byte) bool {
	return isAlpha(b) || b >= 0x80
}

// Lex classifies bytes from c into q, starting at c's current position,
// until one of: the line is exhausted, q has no free slot, or an illegal
// byte is found. It never blocks and never looks past a line boundary.
//
// On CapacityError (q full) Lex returns nil: the caller is expected to drain
// q and call Lex again to resume from the cursor's new position. On an
// illegal byte or a Word/Number run longer than token.MaxWordLen, Lex
// returns a non-nil *Error. The cursor is left at the illegal byte, or at
// the first byte of the oversized run; Error.Offset names the offending byte.
func Lex(c *Cursor, q *token.Queue) error {
	for !c.Done() && !q.Full() {
		b := c.Line[c.Pos]

		if k, ok := token.SingleByteKind(b); ok {
			slot := q.Current()
			slot.Kind = k
			slot.Data = nil
			if err := q.Advance(); err != nil {
				return nil
			}
			c.Pos++
			continue
		}

		if isWordByte(b) {
			start := c.Pos
			end := start
			for end < len(c.Line) && isWordByte(c.Line[end]) {
				end++
			}
			if end-start > token.MaxWordLen {
				return &Error{Offset: start + token.MaxWordLen, Byte: c.Line[start+token.MaxWordLen], Reason: "word buffer overflow"}
			}
			slot := q.Current()
			slot.Kind = token.Word
			slot.Data = append([]byte(nil), c.Line[start:end]...)
			if err := q.Advance(); err != nil {
				return nil
			}
			c.Pos = end
			continue
		}

		if isDigit(b) {
			start := c.Pos
			end := start
			for end < len(c.Line) && isDigit(c.Line[end]) {
				end++
			}
			if end-start > token.MaxWordLen {
				return &Error{Offset: start + token.MaxWordLen, Byte: c.Line[start+token.MaxWordLen], Reason: "word buffer overflow"}
			}
			slot := q.Current()
			slot.Kind = token.Number
			slot.Data = append([]byte(nil), c.Line[start:end]...)
			if err := q.Advance(); err != nil {
				return nil
			}
			c.Pos = end
			continue
		}

		return &Error{Offset: c.Pos, Byte: b, Reason: "illegal character"}
	}
	return nil
}
