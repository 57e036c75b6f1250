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

import "github.com/dbern/markup/token"

// isBodyContent reports whether k is a token kind elm_body appends
// verbatim to the current node's body: Word, Number, or any single-byte
// punctuation kind other than LtCaret (which instead starts a child tag or
// an end tag).
func isBodyContent(k token.Kind) bool {
	switch k {
	case token.Word, token.Number:
		return true
	case token.LtCaret:
		return false
	default:
		return bodyPunctuation[k]
	}
}

var bodyPunctuation = func() map[token.Kind]bool {
	all := []token.Kind{
		token.Space, token.RtCaret, token.FwdSlash, token.Equals, token.DblQuot,
		token.SngQuot, token.Excl, token.Dash, token.Period, token.Comma,
		token.Colon, token.SemiColon, token.OpenParen, token.CloseParen,
		token.OpenSquare, token.CloseSquare, token.Underscore, token.Amp,
		token.Vbar, token.Caret, token.Plus, token.QMark, token.LtCurly,
		token.RtCurly,
	}
	m := make(map[token.Kind]bool, len(all))
	for _, k := range all {
		m[k] = true
	}
	return m
}()

// bodyByte returns the literal byte elm_body appends for a punctuation
// token kind.
func bodyByte(k token.Kind) byte {
	return token.Token{Kind: k}.Byte()
}

// elm_body appends text content to the stack-top node's body until a
// LtCaret reintroduces tag_open.
func elmBody(p *Parser) (Status, error) {
	node, ok := p.Nodes.Peek()
	if !ok {
		return Done, newErr("elm_body", StructureError, "node stack empty")
	}

	cur, ok := p.Tokens.Dequeue()
	if !ok {
		return Done, newErr("elm_body", SyntaxError, "expected current token")
	}

	switch {
	case cur.Kind == token.Word || cur.Kind == token.Number:
		node.AppendBody(p.normalize(cur.Data))
	case cur.Kind == token.LtCaret:
		node.AppendBody([]byte{'<'})
	case isBodyContent(cur.Kind):
		node.AppendBody([]byte{bodyByte(cur.Kind)})
	default:
		return Done, newErr("elm_body", SyntaxError, "unexpected current token")
	}

	next, ok := p.Tokens.Peek()
	if !ok {
		if err := p.States.EnqueueFront(resumeElmBody); err != nil {
			return Done, wrapErr("elm_body", CapacityError, "state queue full", err)
		}
		return Suspend, nil
	}
	return elmBodyRoute(p, next)
}

func resumeElmBody(p *Parser) (Status, error) {
	next, ok := p.Tokens.Peek()
	if !ok {
		if err := p.States.EnqueueFront(resumeElmBody); err != nil {
			return Done, wrapErr("elm_body", CapacityError, "state queue full", err)
		}
		return Suspend, nil
	}
	return elmBodyRoute(p, next)
}

func elmBodyRoute(p *Parser, next token.Token) (Status, error) {
	if next.Kind == token.LtCaret {
		return enqueue(p, "elm_body", tagOpen)
	}
	if isBodyContent(next.Kind) {
		return enqueue(p, "elm_body", elmBody)
	}
	return Done, newErr("elm_body", SyntaxError, "unexpected token in body")
}
