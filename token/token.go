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

// Package token defines the classified lexemes the lexer produces and the
// bounded queue the parser drains them from.
package token

import "fmt"

// Kind identifies the class of a Token. The set is closed: the lexer never
// produces a Kind outside this list.
type Kind int

const (
	Space Kind = iota
	LtCaret
	RtCaret
	FwdSlash
	Equals
	DblQuot
	SngQuot
	Excl
	Dash
	Period
	Comma
	Colon
	SemiColon
	OpenParen
	CloseParen
	OpenSquare
	CloseSquare
	Underscore
	Amp
	Vbar
	Caret
	Plus
	QMark
	LtCurly
	RtCurly
	Word
	Number
)

var kindNames = [...]string{
	Space:      "Space",
	LtCaret:    "LtCaret",
	RtCaret:    "RtCaret",
	FwdSlash:   "FwdSlash",
	Equals:     "Equals",
	DblQuot:    "DblQuot",
	SngQuot:    "SngQuot",
	Excl:       "Excl",
	Dash:       "Dash",
	Period:     "Period",
	Comma:      "Comma",
	Colon:      "Colon",
	SemiColon:  "SemiColon",
	OpenParen:  "OpenParen",
	CloseParen: "CloseParen",
	OpenSquare: "OpenSquare",
	CloseSquare: "CloseSquare",
	Underscore: "Underscore",
	Amp:        "Amp",
	Vbar:       "Vbar",
	Caret:      "Caret",
	Plus:       "Plus",
	QMark:      "QMark",
	LtCurly:    "LtCurly",
	RtCurly:    "RtCurly",
	Word:       "Word",
	Number:     "Number",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MaxWordLen bounds the number of bytes a Word (or Number) token may carry,
// mirroring the fixed word buffer of the source implementation.
const MaxWordLen = 63

// Token is a classified lexeme. Only Word and Number carry a byte payload;
// for every other Kind, Data is empty.
type Token struct {
	Kind Kind
	Data []byte
}

// Byte returns the single byte this token's Kind represents, for Kinds that
// correspond to exactly one ASCII punctuation byte. It panics for Word,
// Number, and any Kind with no fixed byte representation.
func (t Token) Byte() byte {
	b, ok := kindBytes[t.Kind]
	if !ok {
		panic(fmt.Sprintf("token: %s has no fixed byte representation", t.Kind))
	}
	return b
}

var kindBytes = map[Kind]byte{
	Space:       ' ',
	LtCaret:     '<',
	RtCaret:     '>',
	FwdSlash:    '/',
	Equals:      '=',
	DblQuot:     '"',
	SngQuot:     '\'',
	Excl:        '!',
	Dash:        '-',
	Period:      '.',
	Comma:       ',',
	Colon:       ':',
	SemiColon:   ';',
	OpenParen:   '(',
	CloseParen:  ')',
	OpenSquare:  '[',
	CloseSquare: ']',
	Underscore:  '_',
	Amp:         '&',
	Vbar:        '|',
	Caret:       '^',
	Plus:        '+',
	QMark:       '?',
	LtCurly:     '{',
	RtCurly:     '}',
}

// SingleByteKind returns the Kind for a single-byte punctuation token and
// true, or the zero Kind and false if b does not map to one.
func SingleByteKind(b byte) (Kind, bool) {
	k, ok := byteKinds[b]
	return k, ok
}

var byteKinds = func() map[byte]Kind {
	m := make(map[byte]Kind, len(kindBytes))
	for k, b := range kindBytes {
		m[b] = k
	}
	return m
}()
