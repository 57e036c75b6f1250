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

// doctype is entered right after tag_open sees the '!' of "<!DOCTYPE ...>".
// It has no component in the original source pack; its accumulation rule
// (space-joined Words, Excl silently consumed) follows tag_name's own
// append pattern, generalized to a dedicated byte-slice target
// (p.Tree.Doctype) instead of a node's name.
func doctype(p *Parser) (Status, error) {
	cur, ok := p.Tokens.Dequeue()
	if !ok {
		return Done, newErr("doctype", SyntaxError, "expected current token")
	}

	switch cur.Kind {
	case token.Word:
		p.Tree.Doctype = append(p.Tree.Doctype, cur.Data...)
	case token.Space:
		p.Tree.Doctype = append(p.Tree.Doctype, ' ')
	case token.Excl:
		// silently consumed
	default:
		return Done, newErr("doctype", SyntaxError, "unexpected current token")
	}

	next, ok := p.Tokens.Peek()
	if !ok {
		if err := p.States.EnqueueFront(resumeDoctype); err != nil {
			return Done, wrapErr("doctype", CapacityError, "state queue full", err)
		}
		return Suspend, nil
	}
	return doctypeRoute(p, next)
}

func resumeDoctype(p *Parser) (Status, error) {
	next, ok := p.Tokens.Peek()
	if !ok {
		if err := p.States.EnqueueFront(resumeDoctype); err != nil {
			return Done, wrapErr("doctype", CapacityError, "state queue full", err)
		}
		return Suspend, nil
	}
	return doctypeRoute(p, next)
}

func doctypeRoute(p *Parser, next token.Token) (Status, error) {
	switch next.Kind {
	case token.Word, token.Space:
		return enqueue(p, "doctype", doctype)
	case token.RtCaret:
		return enqueue(p, "doctype", tagClose)
	default:
		return Done, newErr("doctype", SyntaxError, "unexpected token in doctype")
	}
}
